package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupRouter gives each test a fresh database and a fully wired router.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-secret")
	config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	seedMenu(t)

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func seedMenu(t *testing.T) {
	t.Helper()
	items := []models.MenuItem{
		{ID: 1, Name: "Burger", Price: 5.00, Type: "food"},
		{ID: 2, Name: "Cola", Price: 2.50, Type: "drinks"},
		{ID: 3, Name: "Fries", Price: 3.00, Type: "food"},
	}
	for _, item := range items {
		require.NoError(t, config.DB.Create(&item).Error)
	}
}

// newUser creates an active user with the given role and returns a
// session token for it.
func newUser(t *testing.T, username string, role models.UserRole) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: username, PasswordHash: string(hash), Role: role, IsActive: true}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(&user, time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func placeTestOrder(t *testing.T, r *gin.Engine, token, table string, lines []map[string]interface{}) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/order", token, map[string]interface{}{
		"tableNumber":  table,
		"orderedItems": lines,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Timestamp string `json:"timestamp"`
	}
	decode(t, w, &resp)
	return resp.Timestamp
}
