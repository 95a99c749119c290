package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetDashboardOrders returns open orders for the kitchen dashboard,
// oldest first, restricted to orders containing at least one line of the
// requested item type.
func GetDashboardOrders(c *gin.Context) {
	itemType := c.Param("type")

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("status = ?", models.StatusOpen).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.HasType(itemType) {
			filtered = append(filtered, order)
		}
	}
	c.JSON(http.StatusOK, gin.H{"orders": filtered})
}

type CompleteOrderRequest struct {
	Timestamp string `json:"timestamp" binding:"required"`
}

// CompleteOrder marks an order completed, keyed by its submission
// timestamp. Completing an already-completed or unknown order is a no-op
// success so concurrent dashboards don't error on each other.
func CompleteOrder(c *gin.Context) {
	var req CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Timestamp is required"})
		return
	}

	var order models.Order
	if err := config.DB.Where("timestamp = ?", req.Timestamp).First(&order).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Order already completed"})
		return
	}
	if order.Status == models.StatusCompleted {
		c.JSON(http.StatusOK, gin.H{"message": "Order already completed"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCompleted, middleware.GetRole(c)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Cannot complete order",
			"reason": err.Error(),
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusCompleted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// GetSalesSummary returns aggregate sales metrics across all orders
func GetSalesSummary(c *gin.Context) {
	var summary models.SalesSummary

	row := config.DB.Model(&models.Order{}).
		Select("COUNT(*) as total_orders, " +
			"COALESCE(SUM(total_cost), 0) as total_revenue, " +
			"COALESCE(AVG(total_cost), 0) as average_order_value, " +
			"COALESCE(MAX(total_cost), 0) as max_order_value, " +
			"COALESCE(MIN(total_cost), 0) as min_order_value")
	if err := row.Scan(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
