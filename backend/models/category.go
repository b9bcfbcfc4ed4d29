package models

import "gorm.io/gorm"

// Category is read-only reference data; rows are seeded out of band.
type Category struct {
	gorm.Model
	Name string `gorm:"unique;not null"`
}
