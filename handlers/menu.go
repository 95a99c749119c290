package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the catalog grouped by category, the shape the ordering
// surface consumes: {"food": [...], "drinks": [...]}.
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Order("type, id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	menu := models.Menu{}
	for _, item := range items {
		menu[item.Type] = append(menu[item.Type], item)
	}
	c.JSON(http.StatusOK, menu)
}
