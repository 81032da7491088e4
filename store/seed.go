package store

import (
	"log"

	"gorm.io/gorm"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
)

// DefaultCatalog returns the sample products loaded when no catalog exists yet.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Classic Tee", Price: 499.00, Category: "Clothing", Image: "tshirt.jpg", Description: "Soft cotton tee"},
		{ID: 2, Name: "Slim Jeans", Price: 1299.00, Category: "Clothing", Image: "jeans.jpg", Description: "Comfort denim"},
		{ID: 3, Name: "Running Shoes", Price: 2499.00, Category: "Footwear", Image: "shoes.jpg", Description: "Lightweight running shoes"},
		{ID: 4, Name: "Smart Watch", Price: 5999.00, Category: "Gadgets", Image: "watch.jpg", Description: "Fitness smartwatch"},
		{ID: 5, Name: "Leather Wallet", Price: 799.00, Category: "Accessories", Image: "wallet.jpg", Description: "Genuine leather wallet"},
	}
}

// SeedCatalog inserts the sample products when the products table is empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := DefaultCatalog()
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded catalog with %d sample products", len(products))
	return nil
}
