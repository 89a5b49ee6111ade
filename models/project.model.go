package models

import (
	"time"

	"gorm.io/gorm"
)

// Project status enum values
const (
	ProjectStatusAssigned   = "ASSIGNED"
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusCompleted  = "COMPLETED"
)

// Project is assigned to an approved trainee. IN_PROGRESS may be skipped;
// COMPLETED is terminal and carries the rating and both document paths.
type Project struct {
	gorm.Model
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `gorm:"type:text;default:''" json:"description"`
	TraineeID         uint       `gorm:"not null;index" json:"traineeId"`
	InstructorID      uint       `gorm:"not null;index" json:"instructorId"`
	Status            string     `gorm:"not null;type:varchar(20);default:'ASSIGNED'" json:"status"`
	StartDate         time.Time  `gorm:"not null" json:"startDate"`
	EndDate           *time.Time `json:"endDate"` // Set iff status is COMPLETED
	PerformanceRating *int       `gorm:"check:performance_rating >= 1 AND performance_rating <= 10" json:"performanceRating"`
	ReportPath        string     `gorm:"default:''" json:"reportPath"`
	AttendancePath    string     `gorm:"default:''" json:"attendancePath"`
	IsDeleted         bool       `gorm:"default:false" json:"isDeleted"`

	// Relations
	Trainee    Trainee           `gorm:"foreignKey:TraineeID" json:"trainee,omitempty"`
	Instructor User              `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Progress   []ProjectProgress `gorm:"foreignKey:ProjectID" json:"progress,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// DurationDays returns the whole days between start and end date.
func (p *Project) DurationDays() int {
	if p.EndDate == nil {
		return 0
	}
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}
