package client

import (
	"context"
	"net/http"
	"sync"

	"restaurant-pos-api/models"
)

// Identity is the authenticated user as reported by the server.
type Identity struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// Session holds the current authenticated identity. It has an explicit
// lifecycle: construct it with the client, call CheckStatus on load,
// Logout clears it. Components that need identity receive the session,
// there is no package-level state.
type Session struct {
	c *Client

	mu   sync.Mutex
	user *Identity
}

func NewSession(c *Client) *Session {
	return &Session{c: c}
}

type authCheckResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *Identity `json:"user"`
}

// CheckStatus asks the server who we are. It never returns an error:
// any failure degrades to unauthenticated.
func (s *Session) CheckStatus(ctx context.Context) *Identity {
	var resp authCheckResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/auth/check", nil, &resp); err != nil {
		s.setUser(nil)
		return nil
	}
	if !resp.Authenticated || resp.User == nil {
		s.setUser(nil)
		return nil
	}
	s.setUser(resp.User)
	return resp.User
}

type loginResponse struct {
	Message string    `json:"message"`
	User    *Identity `json:"user"`
}

// Login authenticates and establishes the session cookie. On failure the
// stored identity is left untouched.
func (s *Session) Login(ctx context.Context, username, password string) (*Identity, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	s.setUser(resp.User)
	return resp.User, nil
}

// Logout always clears the local identity, even when the server call
// fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/api/auth/logout", struct{}{}, nil)
	s.setUser(nil)
	return err
}

// Register creates an account. It does not log the user in.
func (s *Session) Register(ctx context.Context, username, password, email string) error {
	body := map[string]string{"username": username, "password": password}
	if email != "" {
		body["email"] = email
	}
	return s.c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

func (s *Session) setUser(u *Identity) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// User returns the current identity, or nil when unauthenticated.
func (s *Session) User() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Capability flags are computed from the role, never stored.

func (s *Session) IsAuthenticated() bool { return s.User() != nil }

func (s *Session) IsAdmin() bool {
	u := s.User()
	return u != nil && u.Role == models.RoleAdmin
}

func (s *Session) IsStaff() bool {
	u := s.User()
	return u != nil && u.Role.StaffLevel()
}

func (s *Session) IsCustomer() bool {
	u := s.User()
	return u != nil && u.Role == models.RoleCustomer
}
