package memory

import (
	"context"
	"errors"
	"testing"

	"course-dash/internal/domain"
)

func newSeeded(t *testing.T) *Service {
	t.Helper()
	svc, err := NewSeeded()
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	return svc
}

func TestAuthenticateValidCredentials(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	tok, err := svc.Authenticate(ctx, "testuser", "password")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if tok.AccessToken == "" {
		t.Error("Expected a non-empty access token")
	}
	if tok.TokenType != "bearer" {
		t.Errorf("Expected token type 'bearer', got '%s'", tok.TokenType)
	}

	// The token resolves to a profile with a stable id.
	profile, err := svc.FetchProfile(ctx, tok.AccessToken)
	if err != nil {
		t.Fatalf("FetchProfile failed: %v", err)
	}
	if profile.ID != 1 {
		t.Errorf("Expected profile id 1, got %d", profile.ID)
	}
	if profile.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", profile.Username)
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "testuser", "wrongpass"},
		{"unknown user", "ghost", "password"},
		{"empty pair", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestFetchProfileRejectsBadToken(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.FetchProfile(ctx, tok); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("FetchProfile(%q): expected ErrUnauthenticated, got %v", tok, err)
		}
	}
}

func TestListCourses(t *testing.T) {
	svc := newSeeded(t)

	courses, err := svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(courses) != 5 {
		t.Fatalf("Expected 5 courses, got %d", len(courses))
	}
	if courses[0].ID != 101 || courses[4].ID != 105 {
		t.Errorf("Expected catalog order 101..105, got first=%d last=%d", courses[0].ID, courses[4].ID)
	}
}

func TestListRecommendations(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	tok, err := svc.Authenticate(ctx, "testuser", "password")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	recs, err := svc.ListRecommendations(ctx, 1, tok.AccessToken)
	if err != nil {
		t.Fatalf("ListRecommendations failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].ID != 102 || recs[1].ID != 104 {
		t.Errorf("Expected recommendations [102 104], got [%d %d]", recs[0].ID, recs[1].ID)
	}
	for _, r := range recs {
		if r.Reason == "" {
			t.Errorf("Expected a reason on recommendation %d", r.ID)
		}
	}
}

func TestListRecommendationsRejectsMismatchedUser(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	tok, err := svc.Authenticate(ctx, "testuser", "password")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if _, err := svc.ListRecommendations(ctx, 42, tok.AccessToken); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for mismatched user id, got %v", err)
	}
}

func TestListRecommendationsRejectsBadToken(t *testing.T) {
	svc := newSeeded(t)

	if _, err := svc.ListRecommendations(context.Background(), 1, "garbage"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
}
