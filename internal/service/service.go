package service

import (
	"context"

	"course-dash/internal/domain"
)

// Token is the credential issued on a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CourseService is the external catalog/recommendation boundary. Any
// implementation (in-memory, HTTP-backed, test double) substitutes behind
// it. Authenticate is the only mutating operation; the rest are idempotent
// reads. No operation retries: one failed attempt surfaces immediately.
//
// The order of the sequences returned by ListCourses and
// ListRecommendations is significant and must be preserved verbatim by
// callers (recommendation order encodes the service's ranking).
type CourseService interface {
	// Authenticate exchanges credentials for a token. Fails with
	// domain.ErrInvalidCredentials when the pair matches no known account.
	Authenticate(ctx context.Context, username, password string) (Token, error)

	// FetchProfile returns the profile behind a token. Fails with
	// domain.ErrUnauthenticated when the token is missing or invalid.
	FetchProfile(ctx context.Context, token string) (domain.UserProfile, error)

	// ListCourses returns the full catalog. No pagination: the catalog is
	// assumed small enough to return whole.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// ListRecommendations returns the ranked recommendations for a user.
	// Fails with domain.ErrUnauthenticated under the same conditions as
	// FetchProfile.
	ListRecommendations(ctx context.Context, userID int, token string) ([]domain.Recommendation, error)
}
