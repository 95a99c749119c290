package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/printer"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	settings, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize database and seed catalog
	config.InitDB(settings.Database.Path)
	if err := config.SeedMenu(settings.Menu.Path); err != nil {
		log.Printf("Menu not seeded (%s): %v", settings.Menu.Path, err)
	}

	// Receipt spool: orders are accepted even while the printer is down
	var p printer.Printer
	if settings.Printer.Mock {
		p = printer.MockPrinter{}
	} else {
		p = printer.NewReceiptPrinter(os.Stdout)
	}
	spool := printer.NewSpool(p, settings.Printer.QueueSize)
	spool.Start()
	defer spool.Stop()
	handlers.PrintSpool = spool
	handlers.SessionTTL = time.Duration(settings.Auth.SessionTTLHours) * time.Hour

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"service":        "Restaurant POS Ordering API",
			"pending_prints": spool.Pending(),
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	addr := settings.Server.Host + ":" + settings.Server.Port
	log.Printf("Server running on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
