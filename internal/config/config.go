package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Addr           string `mapstructure:"COURSEDASH_ADDR"`
	DBPath         string `mapstructure:"COURSEDASH_DB_PATH"`
	JWTSecret      string `mapstructure:"COURSEDASH_JWT_SECRET"`
	TokenTTLMin    int    `mapstructure:"COURSEDASH_TOKEN_TTL_MINUTES"`
	AllowedOrigins string `mapstructure:"COURSEDASH_ALLOWED_ORIGINS"`

	// Client CLI
	ServiceBaseURL string `mapstructure:"COURSEDASH_SERVICE_URL"`
}

// Load reads configuration from the environment, with an optional
// `app.env` file next to the binary. Missing file is fine: env wins anyway.
func Load() (Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("COURSEDASH_ADDR", ":8000")
	v.SetDefault("COURSEDASH_DB_PATH", "db.json")
	v.SetDefault("COURSEDASH_JWT_SECRET", "dev-only-secret-change-me")
	v.SetDefault("COURSEDASH_TOKEN_TTL_MINUTES", 30)
	v.SetDefault("COURSEDASH_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("COURSEDASH_SERVICE_URL", "")

	v.AutomaticEnv()
	for _, key := range []string{
		"COURSEDASH_ADDR",
		"COURSEDASH_DB_PATH",
		"COURSEDASH_JWT_SECRET",
		"COURSEDASH_TOKEN_TTL_MINUTES",
		"COURSEDASH_ALLOWED_ORIGINS",
		"COURSEDASH_SERVICE_URL",
	} {
		v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Origins splits the configured CORS origin list.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
