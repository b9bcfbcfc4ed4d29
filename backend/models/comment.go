package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	ChapterID  uint   `gorm:"not null;index"`
	UserID     uint   `gorm:"not null;index"`
	UserName   string
	Content    string `gorm:"type:text;not null"`
	IsApproved bool   `gorm:"default:true"`
}
