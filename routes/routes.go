package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		// Check never 401s; it reports the session state either way
		public.GET("/auth/check", handlers.CheckAuth)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/auth/logout", handlers.Logout)
		auth.GET("/auth/profile", handlers.GetProfile)
		auth.GET("/menu", handlers.GetMenu)
		auth.POST("/order", handlers.PlaceOrder)
	}

	// ── Staff routes (kitchen + analytics) ─────────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.StaffRequired())
	{
		staff.GET("/orders", handlers.GetOrders)
		staff.GET("/orders/dashboard/:type", handlers.GetDashboardOrders)
		staff.PUT("/orders/dashboard/complete", handlers.CompleteOrder)
		staff.GET("/orders/summary", handlers.GetSalesSummary)
		staff.GET("/orders/:id", handlers.GetOrderDetail)
		staff.GET("/analytics/popular-items", handlers.GetPopularItems)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager, models.RoleAdmin))
	{
		manager.GET("/export/orders", handlers.ExportOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/auth/users", handlers.GetUsers)
	}
}
