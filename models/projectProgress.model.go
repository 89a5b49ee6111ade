package models

import "gorm.io/gorm"

// ProjectProgress rows are an append-only audit trail. Nothing updates or
// deletes them after creation.
type ProjectProgress struct {
	gorm.Model
	ProjectID           uint   `gorm:"not null;index" json:"projectId"`
	Description         string `gorm:"type:text;not null" json:"description"`
	PercentageCompleted int    `gorm:"not null;check:percentage_completed >= 0 AND percentage_completed <= 100" json:"percentageCompleted"`
	IsDeleted           bool   `gorm:"default:false" json:"isDeleted"`
}

func (ProjectProgress) TableName() string {
	return "project_progresses"
}
