package config

import (
	"encoding/json"
	"log"
	"os"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedDefaultAdmin(DB)
	log.Println("Database connected and migrated")
}

// seedDefaultAdmin creates an admin account when none exists, so a fresh
// deployment is reachable. Change the password after first login.
func seedDefaultAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash default admin password:", err)
	}
	admin := models.User{
		Username:     "admin",
		Email:        "admin@restaurant.local",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	log.Println("Default admin user created: username='admin'")
}

// SeedMenu loads the category → items menu file into the catalog table.
// Existing rows win; the file is only read on an empty catalog.
func SeedMenu(path string) error {
	var count int64
	DB.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var menu map[string][]struct {
		ID    uint    `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(data, &menu); err != nil {
		return err
	}

	for category, items := range menu {
		for _, it := range items {
			row := models.MenuItem{ID: it.ID, Name: it.Name, Price: it.Price, Type: category}
			if err := DB.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Menu seeded from %s", path)
	return nil
}
