package models

import "gorm.io/gorm"

const (
	RoleUser      = "user"
	RoleSuperuser = "superuser"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:user"` // user, superuser
}

func (u *User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}
