package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

type popularItem struct {
	ItemName      string  `json:"item_name"`
	ItemType      string  `json:"item_type"`
	TotalQuantity int     `json:"total_quantity"`
	OrderCount    int     `json:"order_count"`
	AvgPrice      float64 `json:"avg_price"`
}

// GetPopularItems returns the best-selling menu items by total quantity
func GetPopularItems(c *gin.Context) {
	limit := 10
	if l, ok := c.GetQuery("limit"); ok {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var items []popularItem
	err := config.DB.Model(&models.OrderLine{}).
		Select("name as item_name, type as item_type, " +
			"SUM(quantity) as total_quantity, COUNT(*) as order_count, AVG(price) as avg_price").
		Group("item_id, name, type").
		Order("total_quantity desc").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load popular items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"popular_items": items})
}

// ExportOrders streams all orders in the optional from/to timestamp range
// as a CSV attachment.
func ExportOrders(c *gin.Context) {
	query := config.DB.Preload("Items").Order("created_at asc")
	if from := c.Query("from"); from != "" {
		query = query.Where("timestamp >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("timestamp <= ?", to)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export orders"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="orders_export.csv"`)

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"timestamp", "table_number", "status", "comment", "total_cost", "items"})
	for _, order := range orders {
		items := ""
		for i, line := range order.Items {
			if i > 0 {
				items += "; "
			}
			items += fmt.Sprintf("%s (x%d) - %.2f", line.Name, line.Quantity, line.Price)
		}
		w.Write([]string{
			order.Timestamp,
			order.TableNumber,
			string(order.Status),
			order.Comment,
			fmt.Sprintf("%.2f", order.TotalCost),
			items,
		})
	}
}
