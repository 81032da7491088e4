package models

// Product is a catalog entry. The catalog is seeded at startup and no route
// mutates it afterwards.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"index" json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
