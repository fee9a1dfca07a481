package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the games, products and orders tables
// together with their secondary indexes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Game{}, &Product{}, &Order{})
}
