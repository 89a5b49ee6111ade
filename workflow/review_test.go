package workflow

import (
	"testing"
	"tms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharedReview(t *testing.T, eng *Engine, adminID, instructorID uint) *models.ProgressReview {
	t.Helper()

	trainee := approvedTrainee(t, eng, adminID, instructorID)
	review, err := eng.ShareProgress(trainee.ID, instructorID, "halfway through, on track")
	require.NoError(t, err)
	return review
}

func TestShareProgressNotifiesAllAdmins(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)

	review := sharedReview(t, eng, admin1.ID, instructor.ID)

	assert.Equal(t, models.ReviewStatusInReview, review.Status)
	assert.Nil(t, review.ReviewedByID)

	var notifications []models.Notification
	require.NoError(t, db.Where("event_type = ?", EventProgressShared).Find(&notifications).Error)
	require.Len(t, notifications, 2)
	recipients := []uint{notifications[0].RecipientID, notifications[1].RecipientID}
	assert.ElementsMatch(t, []uint{admin1.ID, admin2.ID}, recipients)
}

func TestShareProgressRequiresOwnTrainee(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)

	other := models.User{Name: "Other", Email: "other@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&other).Error)

	_, err := eng.ShareProgress(trainee.ID, other.ID, "not mine")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestShareProgressRequiresSummary(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)

	_, err := eng.ShareProgress(trainee.ID, instructor.ID, "")
	var vl *ValidationError
	require.ErrorAs(t, err, &vl)
}

func TestCompleteReview(t *testing.T) {
	eng, db, mailer := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)
	review := sharedReview(t, eng, admin1.ID, instructor.ID)

	completed, err := eng.CompleteReview(review.ID, admin2.ID, "good progress")
	require.NoError(t, err)

	assert.Equal(t, models.ReviewStatusCompleted, completed.Status)
	require.NotNil(t, completed.ReviewedByID)
	assert.Equal(t, admin2.ID, *completed.ReviewedByID)
	assert.NotNil(t, completed.ReviewedDate)
	assert.Equal(t, "good progress", completed.ReviewComments)

	// The sharing instructor gets one notification and one email.
	var notifications []models.Notification
	require.NoError(t, db.Where("event_type = ?", EventReviewCompleted).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, instructor.ID, notifications[0].RecipientID)
	assert.Equal(t, models.RecipientInstructor, notifications[0].RecipientType)

	assert.Equal(t, []string{instructor.Email}, mailer.ReviewCompleted)
}

func TestCompleteReviewTwiceIsNotASilentSuccess(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)
	review := sharedReview(t, eng, admin1.ID, instructor.ID)

	_, err := eng.CompleteReview(review.ID, admin1.ID, "done")
	require.NoError(t, err)

	_, err = eng.CompleteReview(review.ID, admin2.ID, "done again")
	var is *InvalidStateError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, models.ReviewStatusCompleted, is.Status)

	// First sign-off persists.
	var current models.ProgressReview
	require.NoError(t, db.First(&current, review.ID).Error)
	require.NotNil(t, current.ReviewedByID)
	assert.Equal(t, admin1.ID, *current.ReviewedByID)
	assert.Equal(t, "done", current.ReviewComments)

	assert.EqualValues(t, 1, notificationCount(t, db, EventReviewCompleted))
}

func TestCompleteReviewNotFound(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, _ := seedUsers(t, db)

	_, err := eng.CompleteReview(9999, admin1.ID, "")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
