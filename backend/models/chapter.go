package models

import "gorm.io/gorm"

type Chapter struct {
	gorm.Model
	NovelID    uint      `gorm:"not null;uniqueIndex:idx_novel_sort"`
	Title      string    `gorm:"not null"`
	SortNum    int       `gorm:"not null;uniqueIndex:idx_novel_sort"`
	Content    string    `gorm:"type:text"`
	UploaderID uint      `gorm:"not null;index"`
	IsApproved bool      `gorm:"default:false"`
	Comments   []Comment `gorm:"constraint:OnDelete:CASCADE"`
}
