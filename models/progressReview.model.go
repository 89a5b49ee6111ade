package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressReview status enum values
const (
	ReviewStatusInReview  = "IN_REVIEW"
	ReviewStatusCompleted = "COMPLETED"
)

// ProgressReview is an instructor's request for admin sign-off on a
// trainee's overall progress.
type ProgressReview struct {
	gorm.Model
	TraineeID      uint       `gorm:"not null;index" json:"traineeId"`
	InstructorID   uint       `gorm:"not null;index" json:"instructorId"`
	Summary        string     `gorm:"type:text;not null" json:"summary"`
	Status         string     `gorm:"not null;type:varchar(20);default:'IN_REVIEW'" json:"status"`
	ReviewedByID   *uint      `json:"reviewedById"` // Set iff status is COMPLETED
	ReviewedDate   *time.Time `json:"reviewedDate"`
	ReviewComments string     `gorm:"type:text;default:''" json:"reviewComments"`
	IsDeleted      bool       `gorm:"default:false" json:"isDeleted"`

	// Relations
	Trainee    Trainee `gorm:"foreignKey:TraineeID" json:"trainee,omitempty"`
	Instructor User    `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	ReviewedBy *User   `gorm:"foreignKey:ReviewedByID" json:"reviewedBy,omitempty"`
}

func (ProgressReview) TableName() string {
	return "progress_reviews"
}
