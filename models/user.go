package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleReader UserRole = "reader"
	RoleAuthor UserRole = "author"
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleReader, RoleAuthor, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Username      string         `json:"username" gorm:"uniqueIndex;not null"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null"`
	Password      string         `json:"-" gorm:"not null"`
	DisplayName   string         `json:"display_name"`
	Role          UserRole       `json:"role" gorm:"default:'reader'"`
	Bio           string         `json:"bio"`
	AvatarURL     string         `json:"avatar_url"`
	Website       string         `json:"website"`
	Location      string         `json:"location"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	EmailVerified bool           `json:"email_verified" gorm:"default:false"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
