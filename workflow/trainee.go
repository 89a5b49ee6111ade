package workflow

import (
	"errors"
	"fmt"
	"time"
	"tms/models"

	"gorm.io/gorm"
)

// TraineeInput carries the fields an instructor submits for registration.
type TraineeInput struct {
	Name        string
	Email       string
	Mobile      string
	Institution string
	Degree      string
	Branch      string
}

// SubmitTrainee registers a trainee in PENDING status under the given
// instructor and notifies every admin.
func (e *Engine) SubmitTrainee(instructorID uint, in TraineeInput) (*models.Trainee, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if in.Email == "" {
		return nil, &ValidationError{Field: "email", Reason: "email is required"}
	}

	var instructor models.User
	err := e.db.Where("id = ? AND role = ? AND is_deleted = false", instructorID, models.RoleInstructor).First(&instructor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "instructor", ID: instructorID}
		}
		return nil, err
	}

	trainee := models.Trainee{
		Name:         in.Name,
		Email:        in.Email,
		Mobile:       in.Mobile,
		Institution:  in.Institution,
		Degree:       in.Degree,
		Branch:       in.Branch,
		InstructorID: instructorID,
		Status:       models.TraineeStatusPending,
	}
	if err := e.db.Create(&trainee).Error; err != nil {
		return nil, err
	}

	e.notifyAdmins(Event{
		Type:    EventTraineeSubmitted,
		Title:   "New trainee awaiting approval",
		Message: fmt.Sprintf("%s registered trainee %s (%s) for approval.", instructor.Name, trainee.Name, trainee.Institution),
	})

	return &trainee, nil
}

// DecideTrainee approves or rejects a pending trainee. The decision is
// terminal: a second decision attempt fails with InvalidStateError. The
// status guard is re-applied in the UPDATE itself so that of two concurrent
// decisions exactly one wins.
func (e *Engine) DecideTrainee(traineeID, adminID uint, decision, comments string) (*models.Trainee, error) {
	if decision != models.TraineeStatusApproved && decision != models.TraineeStatusRejected {
		return nil, &ValidationError{Field: "decision", Reason: "decision must be APPROVED or REJECTED"}
	}

	var trainee models.Trainee
	err := e.db.Where("id = ? AND is_deleted = false", traineeID).First(&trainee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "trainee", ID: traineeID}
		}
		return nil, err
	}
	if trainee.Status != models.TraineeStatusPending {
		return nil, &InvalidStateError{Entity: "trainee", ID: traineeID, Status: trainee.Status, Op: "decided"}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":            decision,
		"approved_by_id":    adminID,
		"approval_comments": comments,
		"decided_at":        now,
	}
	if decision == models.TraineeStatusApproved {
		updates["joining_date"] = now
	}

	res := e.db.Model(&models.Trainee{}).
		Where("id = ? AND status = ? AND is_deleted = false", traineeID, models.TraineeStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race: someone else decided first.
		e.db.Where("id = ?", traineeID).First(&trainee)
		return nil, &InvalidStateError{Entity: "trainee", ID: traineeID, Status: trainee.Status, Op: "decided"}
	}

	if err := e.db.Where("id = ?", traineeID).First(&trainee).Error; err != nil {
		return nil, err
	}

	verb := "approved"
	if decision == models.TraineeStatusRejected {
		verb = "rejected"
	}
	e.notifyInstructor(trainee.InstructorID, Event{
		Type:    EventTraineeDecided,
		Title:   fmt.Sprintf("Trainee %s %s", trainee.Name, verb),
		Message: fmt.Sprintf("Your trainee %s has been %s. %s", trainee.Name, verb, comments),
	})

	if e.mailer != nil {
		if decision == models.TraineeStatusApproved {
			e.mailer.SendTraineeApprovedEmail(trainee.Email, trainee.Name, comments)
		} else {
			e.mailer.SendTraineeRejectedEmail(trainee.Email, trainee.Name, comments)
		}
	}

	return &trainee, nil
}
