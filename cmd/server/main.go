package main

import (
	"log"
	"time"

	"course-dash/internal/auth"
	"course-dash/internal/config"
	"course-dash/internal/server"
	"course-dash/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	st := store.Open(cfg.DBPath)

	// Fail fast on a broken database file; enrollment references outside
	// the catalog are a data bug worth surfacing at startup.
	db, err := st.Load()
	if err != nil {
		log.Fatalf("db error: %v (run cmd/seeddb to create one)", err)
	}
	if err := db.Validate(); err != nil {
		log.Printf("WARNING: %v", err)
	}
	log.Printf("db loaded: %d users, %d courses", len(db.Users), len(db.Courses))

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)
	router := server.New(st, tokens).Router(cfg.Origins())

	log.Printf("course service listening on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
