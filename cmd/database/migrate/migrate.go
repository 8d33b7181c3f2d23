package migration

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CatalogItem{}); err != nil {
		log.Fatalf("Error migrating catalog item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryEntry{}); err != nil {
		log.Fatalf("Error migrating inventory entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ConsumptionLog{}); err != nil {
		log.Fatalf("Error migrating consumption log database: %v", err)
		return err
	}

	if err := SeedCatalog(db); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// SeedCatalog loads the reference food table. It only runs against an
// empty table; the catalog is read-only after seeding.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.CatalogItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entities.CatalogItem{
		{Name: "Milk", Category: "Dairy", DefaultExpirationDays: 7, AverageCost: decimal.NewFromFloat(3.50), Unit: "liter"},
		{Name: "Rice", Category: "Grains", DefaultExpirationDays: 365, AverageCost: decimal.NewFromFloat(1.20), Unit: "kg"},
		{Name: "Eggs", Category: "Proteins", DefaultExpirationDays: 21, AverageCost: decimal.NewFromFloat(4.00), Unit: "dozen"},
		{Name: "Spinach", Category: "Vegetables", DefaultExpirationDays: 5, AverageCost: decimal.NewFromFloat(2.50), Unit: "kg"},
		{Name: "Apples", Category: "Fruits", DefaultExpirationDays: 14, AverageCost: decimal.NewFromFloat(3.00), Unit: "kg"},
		{Name: "Bread", Category: "Grains", DefaultExpirationDays: 5, AverageCost: decimal.NewFromFloat(2.00), Unit: "loaf"},
		{Name: "Chicken Breast", Category: "Proteins", DefaultExpirationDays: 3, AverageCost: decimal.NewFromFloat(8.50), Unit: "kg"},
		{Name: "Tomato", Category: "Vegetables", DefaultExpirationDays: 7, AverageCost: decimal.NewFromFloat(2.00), Unit: "kg"},
	}
	for i := range items {
		items[i].ID = uuid.New()
	}

	return db.Create(&items).Error
}
