package models

import "gorm.io/gorm"

// Document type enum values
const (
	DocumentTypeReport     = "PROJECT_REPORT"
	DocumentTypeAttendance = "ATTENDANCE_SHEET"
	DocumentTypeOther      = "OTHER"
)

// Document is an immutable record of an uploaded file's metadata.
type Document struct {
	gorm.Model
	FilePath     string `gorm:"not null" json:"filePath"`
	FileType     string `gorm:"not null;type:varchar(30)" json:"fileType"`
	TraineeID    uint   `gorm:"not null;index" json:"traineeId"`
	ProjectID    *uint  `gorm:"index" json:"projectId"`
	InstructorID uint   `gorm:"not null;index" json:"instructorId"`
	IsDeleted    bool   `gorm:"default:false" json:"isDeleted"`
}

func (Document) TableName() string {
	return "documents"
}
