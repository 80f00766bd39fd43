package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles. Authorization decisions compare
// against these constants at the service boundary, never against ad-hoc strings.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Role      Role       `json:"role" gorm:"default:'STUDENT'"`
	Bio       string     `json:"bio" gorm:"type:text"`
	AvatarURL string     `json:"avatar_url"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `gorm:"default:false"`
}
