package memory

import (
	"context"
	"fmt"

	"course-dash/internal/auth"
	"course-dash/internal/domain"
	"course-dash/internal/recommend"
	"course-dash/internal/service"
)

// Account seeds one user into the in-memory service. Password is plaintext
// here and bcrypt-hashed at construction.
type Account struct {
	ID                int
	Username          string
	Email             string
	Password          string
	EnrolledCourseIDs []int
}

type storedUser struct {
	profile      domain.UserProfile
	passwordHash string
}

// Service is a complete in-memory stand-in for the course service: real
// bearer tokens, real password hashes, and the same recommendation engine
// the HTTP service runs. It backs the demo CLI and tests.
type Service struct {
	tokens  *auth.TokenManager
	users   map[string]storedUser // by username
	catalog []domain.Course
}

var _ service.CourseService = (*Service)(nil)

func New(accounts []Account, catalog []domain.Course) (*Service, error) {
	users := make(map[string]storedUser, len(accounts))
	for _, a := range accounts {
		hash, err := auth.HashPassword(a.Password)
		if err != nil {
			return nil, fmt.Errorf("memory: hash password for %q: %w", a.Username, err)
		}
		users[a.Username] = storedUser{
			profile: domain.UserProfile{
				ID:                a.ID,
				Username:          a.Username,
				Email:             a.Email,
				EnrolledCourseIDs: a.EnrolledCourseIDs,
			},
			passwordHash: hash,
		}
	}

	return &Service{
		tokens:  auth.NewTokenManager("in-memory-course-service", auth.DefaultTokenTTL),
		users:   users,
		catalog: catalog,
	}, nil
}

// NewSeeded builds a service with the default demo data: one account
// (testuser/password) enrolled in two of five catalog courses.
func NewSeeded() (*Service, error) {
	return New(
		[]Account{
			{
				ID:                1,
				Username:          "testuser",
				Email:             "testuser@example.com",
				Password:          "password",
				EnrolledCourseIDs: []int{101, 103},
			},
		},
		SeedCatalog(),
	)
}

// SeedCatalog is the demo catalog.
func SeedCatalog() []domain.Course {
	return []domain.Course{
		{ID: 101, Title: "Introduction to Python", Category: "Programming", Difficulty: domain.DifficultyBeginner},
		{ID: 102, Title: "Advanced JavaScript", Category: "Programming", Difficulty: domain.DifficultyAdvanced},
		{ID: 103, Title: "Data Science with Pandas", Category: "Data Science", Difficulty: domain.DifficultyIntermediate},
		{ID: 104, Title: "Machine Learning Basics", Category: "Data Science", Difficulty: domain.DifficultyIntermediate},
		{ID: 105, Title: "Digital Marketing 101", Category: "Marketing", Difficulty: domain.DifficultyBeginner},
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (service.Token, error) {
	user, ok := s.users[username]
	if !ok || !auth.CheckPassword(user.passwordHash, password) {
		return service.Token{}, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(username)
	if err != nil {
		return service.Token{}, fmt.Errorf("memory: issue token: %w", err)
	}
	return service.Token{AccessToken: tok, TokenType: "bearer"}, nil
}

func (s *Service) FetchProfile(ctx context.Context, token string) (domain.UserProfile, error) {
	user, err := s.userForToken(token)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return user.profile, nil
}

func (s *Service) ListCourses(ctx context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, len(s.catalog))
	copy(out, s.catalog)
	return out, nil
}

func (s *Service) ListRecommendations(ctx context.Context, userID int, token string) ([]domain.Recommendation, error) {
	user, err := s.userForToken(token)
	if err != nil {
		return nil, err
	}
	if user.profile.ID != userID {
		return nil, domain.ErrUnauthenticated
	}
	return recommend.ForUser(s.catalog, user.profile.EnrolledCourseIDs), nil
}

func (s *Service) userForToken(token string) (storedUser, error) {
	if token == "" {
		return storedUser{}, domain.ErrUnauthenticated
	}
	username, err := s.tokens.Verify(token)
	if err != nil {
		return storedUser{}, domain.ErrUnauthenticated
	}
	user, ok := s.users[username]
	if !ok {
		return storedUser{}, domain.ErrUnauthenticated
	}
	return user, nil
}
