package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServer mimics the auth endpoints: a cookie session established by a
// correct login, probed by check, torn down by logout.
func authServer(t *testing.T) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&body)
		if body.Username == "anna" && body.Password == "secret123" {
			http.SetCookie(w, &http.Cookie{Name: "pos_session", Value: "tok-anna", Path: "/"})
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Login successful",
				"user":    map[string]interface{}{"id": 1, "username": "anna", "role": "staff"},
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	})
	mux.HandleFunc("/api/auth/check", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("pos_session"); err == nil && cookie.Value == "tok-anna" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"authenticated": true,
				"user":          map[string]interface{}{"id": 1, "username": "anna", "role": "staff"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"authenticated": false})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "pos_session", Value: "", MaxAge: -1, Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"message": "Logout successful"})
	})
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "User registered successfully", "user_id": 2})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestSessionLoginSuccess(t *testing.T) {
	s := NewSession(authServer(t))

	user, err := s.Login(context.Background(), "anna", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Username)

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsStaff())
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsCustomer())

	// The cookie is carried on subsequent calls
	assert.NotNil(t, s.CheckStatus(context.Background()))
}

func TestSessionLoginWrongPassword(t *testing.T) {
	s := NewSession(authServer(t))

	_, err := s.Login(context.Background(), "anna", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, s.IsAuthenticated())

	// A later status check must not resurrect a session
	assert.Nil(t, s.CheckStatus(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestSessionCheckStatusDegradesOnFailure(t *testing.T) {
	c, err := New("http://127.0.0.1:1") // unreachable backend
	require.NoError(t, err)
	s := NewSession(c)

	// Never errors; any failure means unauthenticated
	assert.Nil(t, s.CheckStatus(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestSessionLogoutClearsIdentityEvenOnFailure(t *testing.T) {
	s := NewSession(authServer(t))
	_, err := s.Login(context.Background(), "anna", "secret123")
	require.NoError(t, err)

	// Point the same session at a dead backend; logout still clears local state
	dead, err := New("http://127.0.0.1:1")
	require.NoError(t, err)
	s.c = dead

	err = s.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestSessionRegisterDoesNotLogIn(t *testing.T) {
	s := NewSession(authServer(t))

	err := s.Register(context.Background(), "ben", "secret123", "ben@example.com")
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestSessionCapabilityFlagsPerRole(t *testing.T) {
	cases := []struct {
		role                         string
		isAdmin, isStaff, isCustomer bool
	}{
		{"customer", false, false, true},
		{"staff", false, true, false},
		{"manager", false, true, false},
		{"admin", true, true, false},
	}
	for _, tc := range cases {
		s := &Session{}
		s.setUser(&Identity{ID: 1, Username: "u", Role: models.UserRole(tc.role)})
		assert.Equal(t, tc.isAdmin, s.IsAdmin(), tc.role)
		assert.Equal(t, tc.isStaff, s.IsStaff(), tc.role)
		assert.Equal(t, tc.isCustomer, s.IsCustomer(), tc.role)
		assert.True(t, s.IsAuthenticated())
	}
}
