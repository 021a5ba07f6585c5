package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"course-dash/internal/auth"
	"course-dash/internal/recommend"
	"course-dash/internal/store"
)

// Server is the HTTP binding of the course service boundary.
type Server struct {
	store  *store.Store
	tokens *auth.TokenManager
}

func New(st *store.Store, tokens *auth.TokenManager) *Server {
	return &Server{store: st, tokens: tokens}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(allowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
		r.Use(cors.New(cfg))
	}

	r.POST("/token", s.handleToken)
	r.GET("/courses/", s.handleCourses)

	authed := r.Group("/")
	authed.Use(s.authMiddleware())
	{
		authed.GET("/users/me/", s.handleMe)
		authed.GET("/recommendations/", s.handleRecommendations)
	}

	return r
}

// POST /token: form login, answers with a bearer token.
func (s *Server) handleToken(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	db, err := s.store.Load()
	if err != nil {
		log.Printf("server: load db: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database unavailable"})
		return
	}

	user, ok := db.UserByUsername(username)
	if !ok || !auth.CheckPassword(user.HashedPassword, password) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect username or password"})
		return
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		log.Printf("server: issue token for %q: %v", user.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// GET /users/me/
func (s *Server) handleMe(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, user.Profile())
}

// GET /courses/: the whole catalog, no pagination.
func (s *Server) handleCourses(c *gin.Context) {
	db, err := s.store.Load()
	if err != nil {
		log.Printf("server: load db: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, db.Courses)
}

// GET /recommendations/: ranked picks for the token's user.
func (s *Server) handleRecommendations(c *gin.Context) {
	db, err := s.store.Load()
	if err != nil {
		log.Printf("server: load db: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database unavailable"})
		return
	}

	user := currentUser(c)
	c.JSON(http.StatusOK, recommend.ForUser(db.Courses, user.EnrolledCourses))
}

const userKey = "user"

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		username, err := s.tokens.Verify(token)
		if err != nil {
			unauthorized(c)
			return
		}

		db, err := s.store.Load()
		if err != nil {
			log.Printf("server: load db: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "database unavailable"})
			return
		}
		user, ok := db.UserByUsername(username)
		if !ok {
			unauthorized(c)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) store.User {
	return c.MustGet(userKey).(store.User)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
}
