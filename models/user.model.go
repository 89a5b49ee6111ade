package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum values. Role dispatch is a closed set; anything else is rejected
// at the middleware boundary.
const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
)

type User struct {
	gorm.Model
	ProfileImage        string `gorm:"default:''"`
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'INSTRUCTOR'"` // ADMIN, INSTRUCTOR
	Password            string `gorm:"not null"`
	Department          string `gorm:"default:''"`
	Designation         string `gorm:"default:''"`
	CreatedByID         *uint  `json:"created_by_id"` // Admin who registered this instructor
	IsMobileVerified    bool   `gorm:"default:false"`
	IsEmailVerified     bool   `gorm:"default:false"`
	LastLogin           time.Time
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
