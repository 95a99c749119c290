package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer boots the real router against a throwaway database.
func startServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-secret")
	config.InitDB(filepath.Join(t.TempDir(), "test.db"))

	items := []models.MenuItem{
		{ID: 1, Name: "Burger", Price: 5.00, Type: "food"},
		{ID: 2, Name: "Cola", Price: 2.50, Type: "drinks"},
	}
	for _, item := range items {
		require.NoError(t, config.DB.Create(&item).Error)
	}

	r := gin.New()
	routes.SetupRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestFullOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	c := startServer(t)
	session := NewSession(c)

	// Unauthenticated surface: ordering is gated
	require.Nil(t, session.CheckStatus(ctx))
	_, err := c.Menu(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Register, then log in (register alone never authenticates)
	require.NoError(t, session.Register(ctx, "anna", "secret123", ""))
	assert.False(t, session.IsAuthenticated())
	_, err = session.Login(ctx, "anna", "secret123")
	require.NoError(t, err)
	assert.True(t, session.IsCustomer())

	// Browse and build the cart
	menu, err := c.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, menu["food"], 1)

	cart := NewCart()
	cart.Increase(1)
	cart.Increase(1)
	cart.Increase(2)

	summary, err := c.PlaceOrder(ctx, cart, "4", "no onions", menu)
	require.NoError(t, err)
	cart.Clear()

	// Settle in two passes
	summary.IncreaseSelection(2)
	require.False(t, summary.Checkout())
	summary.SelectAll()
	require.True(t, summary.Checkout())

	// Kitchen side needs a staff session in its own client
	kitchen := startStaff(t, c)
	p := NewDashboardPoller(kitchen, "food", time.Minute)
	p.poll(ctx, 0)
	require.NoError(t, p.LastError())
	orders := p.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "4", orders[0].TableNumber)
	assert.InDelta(t, 12.50, orders[0].TotalCost, 1e-9)
	require.Len(t, orders[0].Items, 1, "only food lines at the food station")

	require.NoError(t, p.Complete(ctx, orders[0].Timestamp))
	assert.Empty(t, p.Orders())

	// Sales reflect the submitted (not the settled) totals
	sp := NewSalesPoller(kitchen, time.Minute)
	sp.poll(ctx, 0)
	require.NoError(t, sp.LastError())
	assert.EqualValues(t, 1, sp.Summary().TotalOrders)
	assert.InDelta(t, 12.50, sp.Summary().TotalRevenue, 1e-9)
}

// startStaff registers a staff user on the same server and returns an
// authenticated client for it.
func startStaff(t *testing.T, customer *Client) *Client {
	t.Helper()
	c, err := New(customer.baseURL)
	require.NoError(t, err)
	s := NewSession(c)
	ctx := context.Background()

	body := map[string]string{"username": "kitchen", "password": "secret123", "role": "staff"}
	require.NoError(t, c.do(ctx, "POST", "/api/auth/register", body, nil))
	_, err = s.Login(ctx, "kitchen", "secret123")
	require.NoError(t, err)
	require.True(t, s.IsStaff())
	return c
}
