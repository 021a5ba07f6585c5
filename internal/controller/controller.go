package controller

import (
	"context"
	"fmt"
	"log"
	"sync"

	"course-dash/internal/concurrency"
	"course-dash/internal/dashboard"
	"course-dash/internal/domain"
	"course-dash/internal/service"
	"course-dash/internal/session"
)

// State is where the controller sits in its lifecycle.
type State string

const (
	StateLoading         State = "loading"
	StateLoggedOut       State = "logged_out"
	StateAuthenticating  State = "authenticating"
	StateLoggedInLoading State = "logged_in_loading"
	StateLoggedInReady   State = "logged_in_ready"
)

// Controller sequences authentication → profile fetch → dashboard fetch and
// resets session state on failure. The session store is written only
// through the controller's transitions.
type Controller struct {
	svc  service.CourseService
	sess *session.Store

	mu    sync.Mutex
	state State
	view  dashboard.ViewModel

	logf func(format string, args ...any)
}

func New(svc service.CourseService, sess *session.Store) *Controller {
	return &Controller{
		svc:   svc,
		sess:  sess,
		state: StateLoading,
		logf:  log.Printf,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the last aggregated dashboard view model.
func (c *Controller) View() dashboard.ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Mount performs the initial transition. A pre-existing token (session
// restore) resumes straight into the profile fetch; otherwise the
// controller lands on the login screen.
func (c *Controller) Mount(ctx context.Context) error {
	if _, ok := c.sess.Token(); !ok {
		c.setState(StateLoggedOut)
		return nil
	}
	return c.resume(ctx)
}

// Login authenticates and, on success, drives the session all the way to a
// loaded dashboard. On InvalidCredentials the session stays logged out and
// the error is returned for the login form to display; nothing is retried.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.setState(StateAuthenticating)

	tok, err := c.svc.Authenticate(ctx, username, password)
	if err != nil {
		c.setState(StateLoggedOut)
		return fmt.Errorf("login failed: %w", err)
	}

	c.sess.SetToken(tok.AccessToken)
	return c.resume(ctx)
}

// Logout clears token and user synchronously. Any dashboard fetch still in
// flight will find the session generation moved and discard its result.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoggedInLoading && c.state != StateLoggedInReady {
		return
	}
	c.sess.Clear()
	c.view = dashboard.ViewModel{}
	c.state = StateLoggedOut
}

// Refresh re-runs the dashboard fetch for an authenticated session.
func (c *Controller) Refresh(ctx context.Context) error {
	user := c.sess.User()
	if user == nil {
		return domain.ErrUnauthenticated
	}
	c.setState(StateLoggedInLoading)
	return c.loadDashboard(ctx, *user)
}

// resume fetches the profile for the stored token and loads the dashboard.
// Any profile-fetch failure, including transient ones, invalidates the
// session and returns to the login screen.
func (c *Controller) resume(ctx context.Context) error {
	token, ok := c.sess.Token()
	if !ok {
		c.setState(StateLoggedOut)
		return domain.ErrUnauthenticated
	}

	gen := c.sess.Generation()

	profile, err := c.svc.FetchProfile(ctx, token)
	if err != nil {
		c.sess.Clear()
		c.setState(StateLoggedOut)
		return fmt.Errorf("profile fetch failed: %w", err)
	}

	if c.sess.Generation() != gen {
		c.logf("controller: discarding profile for a superseded session")
		return nil
	}

	c.sess.SetUser(&profile)
	c.setState(StateLoggedInLoading)

	return c.loadDashboard(ctx, profile)
}

// loadDashboard issues the catalog and recommendation fetches concurrently
// and aggregates once both resolve. A failed leg is logged and the
// dashboard renders with whatever partial data arrived.
func (c *Controller) loadDashboard(ctx context.Context, profile domain.UserProfile) error {
	gen := c.sess.Generation()
	token, ok := c.sess.Token()
	if !ok {
		// Logged out before the fetch even started.
		return nil
	}

	var (
		catalog []domain.Course
		recs    []domain.Recommendation
	)
	errs := concurrency.RunAll(ctx,
		func(ctx context.Context) error {
			var err error
			catalog, err = c.svc.ListCourses(ctx)
			return err
		},
		func(ctx context.Context) error {
			var err error
			recs, err = c.svc.ListRecommendations(ctx, profile.ID, token)
			return err
		},
	)
	if errs[0] != nil {
		c.logf("controller: catalog fetch failed: %v", errs[0])
	}
	if errs[1] != nil {
		c.logf("controller: recommendation fetch failed: %v", errs[1])
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Stale-response guard: the session moved on (logout, re-login) while
	// the fetch was outstanding, so applying it would resurrect a dead
	// session.
	if c.sess.Generation() != gen {
		c.logf("controller: discarding dashboard for a superseded session")
		return nil
	}

	c.view = dashboard.Aggregate(catalog, recs, profile.EnrolledCourseIDs)
	c.state = StateLoggedInReady
	return nil
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}
