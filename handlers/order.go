package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/printer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrintSpool receives a kitchen receipt for every accepted order. Set
// from main; nil disables printing (tests).
var PrintSpool *printer.Spool

type OrderLineRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

type PlaceOrderRequest struct {
	TableNumber  string             `json:"tableNumber"`
	Comment      string             `json:"comment"`
	OrderedItems []OrderLineRequest `json:"orderedItems"`
	// TotalCost is accepted for wire compatibility but recomputed
	// server-side; the catalog price is authoritative.
	TotalCost float64 `json:"totalCost"`
}

// PlaceOrder accepts a submitted cart and persists it as an open order
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.TableNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table number is required"})
		return
	}
	if len(req.OrderedItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is empty"})
		return
	}

	// Snapshot every line from the catalog so menu edits never rewrite
	// a submitted order.
	var lines []models.OrderLine
	var total float64
	for _, reqLine := range req.OrderedItems {
		var item models.MenuItem
		if err := config.DB.First(&item, reqLine.ID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found: " + reqLine.Name})
			return
		}
		total += item.Price * float64(reqLine.Quantity)
		lines = append(lines, models.OrderLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Type:     item.Type,
			Price:    item.Price,
			Quantity: reqLine.Quantity,
		})
	}

	userID := middleware.GetUserID(c)
	order := models.Order{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		TableNumber: strings.TrimSpace(req.TableNumber),
		Comment:     req.Comment,
		TotalCost:   total,
		Status:      models.StatusOpen,
		CreatedBy:   &userID,
		Items:       lines,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	if PrintSpool != nil {
		PrintSpool.Enqueue(order.TableNumber, order.Items, order.Comment)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Order received!",
		"order_id":  order.ID,
		"timestamp": order.Timestamp,
		"totalCost": order.TotalCost,
	})
}

// GetOrders returns recent orders, optionally filtered by table number
func GetOrders(c *gin.Context) {
	limit := 50
	if l, ok := c.GetQuery("limit"); ok {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	query := config.DB.Preload("Items").Order("created_at desc").Limit(limit)
	if table := c.Query("table"); table != "" {
		query = query.Where("table_number = ?", table)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderDetail returns a single order by ID
func GetOrderDetail(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
