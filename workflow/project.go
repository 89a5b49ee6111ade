package workflow

import (
	"errors"
	"fmt"
	"time"
	"tms/models"

	"gorm.io/gorm"
)

// ProjectInput carries the fields for a new project assignment.
type ProjectInput struct {
	Title       string
	Description string
}

// CreateProject assigns a project to an approved trainee. StartDate is set
// at creation; trainees that are still pending or were rejected cannot
// receive projects.
func (e *Engine) CreateProject(traineeID, instructorID uint, in ProjectInput) (*models.Project, error) {
	if in.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "title is required"}
	}

	var trainee models.Trainee
	err := e.db.Where("id = ? AND is_deleted = false", traineeID).First(&trainee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "trainee", ID: traineeID}
		}
		return nil, err
	}
	if trainee.Status != models.TraineeStatusApproved {
		return nil, &PreconditionError{Entity: "trainee", ID: traineeID, Reason: "trainee must be approved before a project can be assigned"}
	}

	project := models.Project{
		Title:        in.Title,
		Description:  in.Description,
		TraineeID:    traineeID,
		InstructorID: instructorID,
		Status:       models.ProjectStatusAssigned,
		StartDate:    time.Now(),
	}
	if err := e.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// RecordProgress appends a progress entry to a project. Entries are never
// updated or removed. The first entry moves an ASSIGNED project to
// IN_PROGRESS; completed projects accept no further entries.
func (e *Engine) RecordProgress(projectID uint, description string, percentage int) (*models.ProjectProgress, error) {
	if description == "" {
		return nil, &ValidationError{Field: "description", Reason: "description is required"}
	}
	if percentage < 0 || percentage > 100 {
		return nil, &ValidationError{Field: "percentageCompleted", Reason: "percentage must be between 0 and 100"}
	}

	var project models.Project
	err := e.db.Where("id = ? AND is_deleted = false", projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "project", ID: projectID}
		}
		return nil, err
	}
	if project.Status == models.ProjectStatusCompleted {
		return nil, &InvalidStateError{Entity: "project", ID: projectID, Status: project.Status, Op: "progressed"}
	}

	entry := models.ProjectProgress{
		ProjectID:           projectID,
		Description:         description,
		PercentageCompleted: percentage,
	}
	if err := e.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	// First entry takes the project off ASSIGNED.
	e.db.Model(&models.Project{}).
		Where("id = ? AND status = ?", projectID, models.ProjectStatusAssigned).
		Update("status", models.ProjectStatusInProgress)

	return &entry, nil
}

// CompleteProject closes a project: both document artifacts must be present
// and the rating in range. The status guard lives in the UPDATE so a project
// completes at most once; documents are written in the same transaction and
// the completion email/notification fire only after it commits.
func (e *Engine) CompleteProject(projectID uint, rating int, reportPath, attendancePath string) (*models.Project, error) {
	if reportPath == "" || attendancePath == "" {
		return nil, &ValidationError{Field: "documents", Reason: "both documents required"}
	}
	if rating < 1 || rating > 10 {
		return nil, &ValidationError{Field: "performanceRating", Reason: "rating must be between 1 and 10"}
	}

	var project models.Project
	err := e.db.Where("id = ? AND is_deleted = false", projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "project", ID: projectID}
		}
		return nil, err
	}
	if project.Status == models.ProjectStatusCompleted {
		return nil, &InvalidStateError{Entity: "project", ID: projectID, Status: project.Status, Op: "completed"}
	}

	now := time.Now()
	err = e.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Project{}).
			Where("id = ? AND status <> ? AND is_deleted = false", projectID, models.ProjectStatusCompleted).
			Updates(map[string]interface{}{
				"status":             models.ProjectStatusCompleted,
				"end_date":           now,
				"performance_rating": rating,
				"report_path":        reportPath,
				"attendance_path":    attendancePath,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InvalidStateError{Entity: "project", ID: projectID, Status: models.ProjectStatusCompleted, Op: "completed"}
		}

		docs := []models.Document{
			{FilePath: reportPath, FileType: models.DocumentTypeReport, TraineeID: project.TraineeID, ProjectID: &project.ID, InstructorID: project.InstructorID},
			{FilePath: attendancePath, FileType: models.DocumentTypeAttendance, TraineeID: project.TraineeID, ProjectID: &project.ID, InstructorID: project.InstructorID},
		}
		return tx.Create(&docs).Error
	})
	if err != nil {
		return nil, err
	}

	if err := e.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}

	var trainee models.Trainee
	e.db.Where("id = ?", project.TraineeID).First(&trainee)

	if e.mailer != nil && len(e.departmentEmails) > 0 {
		e.mailer.SendProjectCompletionEmail(
			e.departmentEmails, project.Title, trainee.Name,
			rating, project.DurationDays(),
			[]string{reportPath, attendancePath},
		)
	}

	evt := Event{
		Type:    EventProjectCompleted,
		Title:   fmt.Sprintf("Project %s completed", project.Title),
		Message: fmt.Sprintf("Project %s for trainee %s completed in %d days with rating %d/10.", project.Title, trainee.Name, project.DurationDays(), rating),
	}
	var instructor models.User
	if err := e.db.Where("id = ?", project.InstructorID).First(&instructor).Error; err == nil && instructor.CreatedByID != nil {
		e.notifyAdmin(*instructor.CreatedByID, evt)
	} else {
		e.notifyAdmins(evt)
	}

	return &project, nil
}
