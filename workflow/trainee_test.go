package workflow

import (
	"errors"
	"sync"
	"testing"
	"tms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitTestTrainee(t *testing.T, eng *Engine, instructorID uint) *models.Trainee {
	t.Helper()

	trainee, err := eng.SubmitTrainee(instructorID, TraineeInput{
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Institution: "NIT Trichy",
		Degree:      "B.Tech",
		Branch:      "CSE",
	})
	require.NoError(t, err)
	return trainee
}

func TestSubmitTraineeStartsPendingAndNotifiesAllAdmins(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)

	trainee := submitTestTrainee(t, eng, instructor.ID)

	assert.Equal(t, models.TraineeStatusPending, trainee.Status)
	assert.Nil(t, trainee.ApprovedByID)
	assert.Equal(t, instructor.ID, trainee.InstructorID)

	var notifications []models.Notification
	require.NoError(t, db.Where("event_type = ?", EventTraineeSubmitted).Find(&notifications).Error)
	require.Len(t, notifications, 2)

	recipients := []uint{notifications[0].RecipientID, notifications[1].RecipientID}
	assert.ElementsMatch(t, []uint{admin1.ID, admin2.ID}, recipients)
	for _, n := range notifications {
		assert.Equal(t, models.RecipientAdmin, n.RecipientType)
		assert.False(t, n.IsRead)
	}
}

func TestSubmitTraineeUnknownInstructor(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	seedUsers(t, db)

	_, err := eng.SubmitTrainee(9999, TraineeInput{Name: "X", Email: "x@example.com"})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "instructor", nf.Entity)
}

func TestSubmitTraineeRequiresNameAndEmail(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	_, _, instructor := seedUsers(t, db)

	_, err := eng.SubmitTrainee(instructor.ID, TraineeInput{Email: "x@example.com"})
	var vl *ValidationError
	require.ErrorAs(t, err, &vl)

	_, err = eng.SubmitTrainee(instructor.ID, TraineeInput{Name: "X"})
	require.ErrorAs(t, err, &vl)
}

func TestDecideTraineeApprove(t *testing.T) {
	eng, db, mailer := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := submitTestTrainee(t, eng, instructor.ID)

	decided, err := eng.DecideTrainee(trainee.ID, admin1.ID, models.TraineeStatusApproved, "ok")
	require.NoError(t, err)

	assert.Equal(t, models.TraineeStatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByID)
	assert.Equal(t, admin1.ID, *decided.ApprovedByID)
	assert.Equal(t, "ok", decided.ApprovalComments)
	assert.NotNil(t, decided.DecidedAt)
	assert.NotNil(t, decided.JoiningDate)

	// The owning instructor gets exactly one notification.
	var notifications []models.Notification
	require.NoError(t, db.Where("event_type = ?", EventTraineeDecided).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, instructor.ID, notifications[0].RecipientID)
	assert.Equal(t, models.RecipientInstructor, notifications[0].RecipientType)

	assert.Equal(t, []string{trainee.Email}, mailer.Approved)
	assert.Empty(t, mailer.Rejected)
}

func TestDecideTraineeRejectLeavesNoJoiningDate(t *testing.T) {
	eng, db, mailer := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := submitTestTrainee(t, eng, instructor.ID)

	decided, err := eng.DecideTrainee(trainee.ID, admin1.ID, models.TraineeStatusRejected, "incomplete documents")
	require.NoError(t, err)

	assert.Equal(t, models.TraineeStatusRejected, decided.Status)
	require.NotNil(t, decided.ApprovedByID)
	assert.Equal(t, admin1.ID, *decided.ApprovedByID)
	assert.Nil(t, decided.JoiningDate)

	assert.Equal(t, []string{trainee.Email}, mailer.Rejected)
	assert.Empty(t, mailer.Approved)
}

func TestDecideTraineeTwiceFailsAndKeepsFirstDecision(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)
	trainee := submitTestTrainee(t, eng, instructor.ID)

	_, err := eng.DecideTrainee(trainee.ID, admin1.ID, models.TraineeStatusApproved, "ok")
	require.NoError(t, err)

	_, err = eng.DecideTrainee(trainee.ID, admin2.ID, models.TraineeStatusRejected, "no")
	var is *InvalidStateError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, models.TraineeStatusApproved, is.Status)

	// First decision persists untouched.
	var current models.Trainee
	require.NoError(t, db.First(&current, trainee.ID).Error)
	assert.Equal(t, models.TraineeStatusApproved, current.Status)
	require.NotNil(t, current.ApprovedByID)
	assert.Equal(t, admin1.ID, *current.ApprovedByID)
	assert.Equal(t, "ok", current.ApprovalComments)

	// The losing attempt emits no extra notification.
	assert.EqualValues(t, 1, notificationCount(t, db, EventTraineeDecided))
}

func TestDecideTraineeNotFound(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, _ := seedUsers(t, db)

	_, err := eng.DecideTrainee(9999, admin1.ID, models.TraineeStatusApproved, "")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDecideTraineeRejectsUnknownDecision(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := submitTestTrainee(t, eng, instructor.ID)

	_, err := eng.DecideTrainee(trainee.ID, admin1.ID, "MAYBE", "")
	var vl *ValidationError
	require.ErrorAs(t, err, &vl)

	var current models.Trainee
	require.NoError(t, db.First(&current, trainee.ID).Error)
	assert.Equal(t, models.TraineeStatusPending, current.Status)
}

func TestDecideTraineeConcurrentExactlyOneWins(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)
	trainee := submitTestTrainee(t, eng, instructor.ID)

	var wg sync.WaitGroup
	results := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, results[0] = eng.DecideTrainee(trainee.ID, admin1.ID, models.TraineeStatusApproved, "ok")
	}()
	go func() {
		defer wg.Done()
		_, results[1] = eng.DecideTrainee(trainee.ID, admin2.ID, models.TraineeStatusRejected, "no")
	}()
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			var is *InvalidStateError
			assert.True(t, errors.As(err, &is), "loser must fail with InvalidStateError, got %v", err)
		}
	}
	assert.Equal(t, 1, successes)

	var current models.Trainee
	require.NoError(t, db.First(&current, trainee.ID).Error)
	assert.NotEqual(t, models.TraineeStatusPending, current.Status)
	assert.EqualValues(t, 1, notificationCount(t, db, EventTraineeDecided))
}
