package workflow

import (
	"errors"
	"fmt"
	"time"
	"tms/models"

	"gorm.io/gorm"
)

// ShareProgress opens a progress review for admin sign-off and notifies
// every admin.
func (e *Engine) ShareProgress(traineeID, instructorID uint, summary string) (*models.ProgressReview, error) {
	if summary == "" {
		return nil, &ValidationError{Field: "summary", Reason: "summary is required"}
	}

	var trainee models.Trainee
	err := e.db.Where("id = ? AND instructor_id = ? AND is_deleted = false", traineeID, instructorID).First(&trainee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "trainee", ID: traineeID}
		}
		return nil, err
	}

	review := models.ProgressReview{
		TraineeID:    traineeID,
		InstructorID: instructorID,
		Summary:      summary,
		Status:       models.ReviewStatusInReview,
	}
	if err := e.db.Create(&review).Error; err != nil {
		return nil, err
	}

	e.notifyAdmins(Event{
		Type:    EventProgressShared,
		Title:   fmt.Sprintf("Progress review for %s", trainee.Name),
		Message: fmt.Sprintf("Progress of trainee %s was shared for review.", trainee.Name),
	})

	return &review, nil
}

// CompleteReview signs off a review. Completion is terminal; a completed
// review never silently succeeds a second time.
func (e *Engine) CompleteReview(reviewID, adminID uint, comments string) (*models.ProgressReview, error) {
	var review models.ProgressReview
	err := e.db.Where("id = ? AND is_deleted = false", reviewID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "review", ID: reviewID}
		}
		return nil, err
	}
	if review.Status != models.ReviewStatusInReview {
		return nil, &InvalidStateError{Entity: "review", ID: reviewID, Status: review.Status, Op: "completed"}
	}

	now := time.Now()
	res := e.db.Model(&models.ProgressReview{}).
		Where("id = ? AND status = ? AND is_deleted = false", reviewID, models.ReviewStatusInReview).
		Updates(map[string]interface{}{
			"status":          models.ReviewStatusCompleted,
			"reviewed_by_id":  adminID,
			"reviewed_date":   now,
			"review_comments": comments,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		e.db.Where("id = ?", reviewID).First(&review)
		return nil, &InvalidStateError{Entity: "review", ID: reviewID, Status: review.Status, Op: "completed"}
	}

	if err := e.db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		return nil, err
	}

	var trainee models.Trainee
	e.db.Where("id = ?", review.TraineeID).First(&trainee)

	e.notifyInstructor(review.InstructorID, Event{
		Type:    EventReviewCompleted,
		Title:   fmt.Sprintf("Progress review for %s completed", trainee.Name),
		Message: fmt.Sprintf("The progress review you shared for %s has been signed off. %s", trainee.Name, comments),
	})

	if e.mailer != nil {
		var instructor models.User
		if err := e.db.Where("id = ?", review.InstructorID).First(&instructor).Error; err == nil {
			e.mailer.SendReviewCompletedEmail(instructor.Email, trainee.Name, comments)
		}
	}

	return &review, nil
}
