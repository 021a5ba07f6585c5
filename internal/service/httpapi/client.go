package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"course-dash/internal/domain"
	"course-dash/internal/httpx"
	"course-dash/internal/service"
)

// Client talks to a course service over its HTTP+JSON binding.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

var _ service.CourseService = (*Client)(nil)

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Authenticate(ctx context.Context, username, password string) (service.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tok service.Token
	err := httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/token", strings.NewReader(form.Encode()))
			if err != nil {
				return nil, err
			}
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			r.Header.Set("Accept", "application/json")
			return r, nil
		},
		&tok,
	)
	if err != nil {
		if httpx.StatusCode(err) == http.StatusUnauthorized {
			return service.Token{}, fmt.Errorf("courseapi: %w", domain.ErrInvalidCredentials)
		}
		return service.Token{}, fmt.Errorf("courseapi: authenticate failed: %w", err)
	}
	return tok, nil
}

func (c *Client) FetchProfile(ctx context.Context, token string) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.getJSON(ctx, "/users/me/", token, &profile); err != nil {
		if httpx.StatusCode(err) == http.StatusUnauthorized {
			return domain.UserProfile{}, fmt.Errorf("courseapi: %w", domain.ErrUnauthenticated)
		}
		return domain.UserProfile{}, fmt.Errorf("courseapi: fetch profile failed: %w", err)
	}
	return profile, nil
}

func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := c.getJSON(ctx, "/courses/", "", &courses); err != nil {
		return nil, fmt.Errorf("courseapi: list courses failed: %w", err)
	}
	return courses, nil
}

// ListRecommendations ignores userID on the wire: the HTTP binding derives
// the user from the bearer token.
func (c *Client) ListRecommendations(ctx context.Context, userID int, token string) ([]domain.Recommendation, error) {
	var recs []domain.Recommendation
	if err := c.getJSON(ctx, "/recommendations/", token, &recs); err != nil {
		if httpx.StatusCode(err) == http.StatusUnauthorized {
			return nil, fmt.Errorf("courseapi: %w", domain.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("courseapi: list recommendations failed: %w", err)
	}
	return recs, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	return httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
			if err != nil {
				return nil, err
			}
			r.Header.Set("Accept", "application/json")
			if token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
			return r, nil
		},
		out,
	)
}
