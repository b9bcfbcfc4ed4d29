package models

import "gorm.io/gorm"

type Novel struct {
	gorm.Model
	Title      string    `gorm:"not null"`
	Author     string    `gorm:"not null"`
	CategoryID uint      `gorm:"not null;index"`
	Category   Category
	Intro      string    `gorm:"type:text"`
	UploaderID uint      `gorm:"not null;index"`
	IsApproved bool      `gorm:"default:false"`
	Chapters   []Chapter `gorm:"constraint:OnDelete:CASCADE"`
}
