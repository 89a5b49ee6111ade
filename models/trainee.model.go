package models

import (
	"time"

	"gorm.io/gorm"
)

// Trainee status enum values
const (
	TraineeStatusPending  = "PENDING"
	TraineeStatusApproved = "APPROVED"
	TraineeStatusRejected = "REJECTED"
)

// Trainee is registered by an instructor and stays PENDING until an admin
// approves or rejects it. The decision is terminal.
type Trainee struct {
	gorm.Model
	Name             string `gorm:"not null" json:"name"`
	Email            string `gorm:"not null;index" json:"email"`
	Mobile           string `gorm:"default:''" json:"mobile"`
	Institution      string `gorm:"default:''" json:"institution"`
	Degree           string `gorm:"default:''" json:"degree"`
	Branch           string `gorm:"default:''" json:"branch"`
	InstructorID     uint   `gorm:"not null;index" json:"instructorId"`
	Status           string `gorm:"not null;type:varchar(20);default:'PENDING'" json:"status"`
	ApprovedByID     *uint  `json:"approvedById"` // Set iff status is APPROVED or REJECTED
	ApprovalComments string `gorm:"type:text;default:''" json:"approvalComments"`
	DecidedAt        *time.Time `json:"decidedAt"`
	JoiningDate      *time.Time `json:"joiningDate"` // Set on approval only
	IsDeleted        bool       `gorm:"default:false" json:"isDeleted"`

	// Relations
	Instructor User  `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty"`
}

func (Trainee) TableName() string {
	return "trainees"
}
