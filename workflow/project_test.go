package workflow

import (
	"testing"
	"time"
	"tms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approvedTrainee submits and approves a trainee in one step.
func approvedTrainee(t *testing.T, eng *Engine, adminID, instructorID uint) *models.Trainee {
	t.Helper()

	trainee := submitTestTrainee(t, eng, instructorID)
	approved, err := eng.DecideTrainee(trainee.ID, adminID, models.TraineeStatusApproved, "ok")
	require.NoError(t, err)
	return approved
}

func TestCreateProjectRequiresApprovedTrainee(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	_, _, instructor := seedUsers(t, db)
	trainee := submitTestTrainee(t, eng, instructor.ID)

	_, err := eng.CreateProject(trainee.ID, instructor.ID, ProjectInput{Title: "Compiler"})

	var pc *PreconditionError
	require.ErrorAs(t, err, &pc)
	assert.Equal(t, "trainee", pc.Entity)
}

func TestCreateProject(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)

	project, err := eng.CreateProject(trainee.ID, instructor.ID, ProjectInput{Title: "Compiler", Description: "Build a toy compiler"})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusAssigned, project.Status)
	assert.False(t, project.StartDate.IsZero())
	assert.Nil(t, project.EndDate)
	assert.Nil(t, project.PerformanceRating)
}

func TestCreateProjectTraineeNotFound(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	_, _, instructor := seedUsers(t, db)

	_, err := eng.CreateProject(9999, instructor.ID, ProjectInput{Title: "Compiler"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestRecordProgressMovesProjectInProgress(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)
	project, err := eng.CreateProject(trainee.ID, instructor.ID, ProjectInput{Title: "Compiler"})
	require.NoError(t, err)

	entry, err := eng.RecordProgress(project.ID, "lexer done", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, entry.PercentageCompleted)

	var current models.Project
	require.NoError(t, db.First(&current, project.ID).Error)
	assert.Equal(t, models.ProjectStatusInProgress, current.Status)

	// Entries accumulate, they are never replaced.
	_, err = eng.RecordProgress(project.ID, "parser done", 50)
	require.NoError(t, err)

	var entries []models.ProjectProgress
	require.NoError(t, db.Where("project_id = ?", project.ID).Order("id").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Equal(t, "lexer done", entries[0].Description)
	assert.Equal(t, "parser done", entries[1].Description)
}

func TestRecordProgressValidation(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)
	project, err := eng.CreateProject(trainee.ID, instructor.ID, ProjectInput{Title: "Compiler"})
	require.NoError(t, err)

	var vl *ValidationError
	_, err = eng.RecordProgress(project.ID, "", 10)
	require.ErrorAs(t, err, &vl)

	_, err = eng.RecordProgress(project.ID, "x", -1)
	require.ErrorAs(t, err, &vl)

	_, err = eng.RecordProgress(project.ID, "x", 101)
	require.ErrorAs(t, err, &vl)
}

// completeTestProject backdates the start date and completes the project.
func completeTestProject(t *testing.T, eng *Engine, adminID, instructorID uint, daysAgo int) *models.Project {
	t.Helper()

	trainee := approvedTrainee(t, eng, adminID, instructorID)
	project, err := eng.CreateProject(trainee.ID, instructorID, ProjectInput{Title: "Compiler"})
	require.NoError(t, err)

	start := time.Now().AddDate(0, 0, -daysAgo)
	require.NoError(t, eng.db.Model(&models.Project{}).Where("id = ?", project.ID).Update("start_date", start).Error)

	completed, err := eng.CompleteProject(project.ID, 8, "/uploads/projects/report.pdf", "/uploads/projects/attendance.pdf")
	require.NoError(t, err)
	return completed
}

func TestCompleteProject(t *testing.T) {
	eng, db, mailer := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)

	completed := completeTestProject(t, eng, admin1.ID, instructor.ID, 30)

	assert.Equal(t, models.ProjectStatusCompleted, completed.Status)
	require.NotNil(t, completed.EndDate)
	require.NotNil(t, completed.PerformanceRating)
	assert.Equal(t, 8, *completed.PerformanceRating)
	assert.Equal(t, "/uploads/projects/report.pdf", completed.ReportPath)

	// One document row per artifact.
	var docs []models.Document
	require.NoError(t, db.Where("project_id = ?", completed.ID).Order("id").Find(&docs).Error)
	require.Len(t, docs, 2)
	assert.Equal(t, models.DocumentTypeReport, docs[0].FileType)
	assert.Equal(t, models.DocumentTypeAttendance, docs[1].FileType)
	assert.Equal(t, instructor.ID, docs[0].InstructorID)

	// Completion email carries the duration in days and both attachments.
	require.Len(t, mailer.Completions, 1)
	mail := mailer.Completions[0]
	assert.Equal(t, []string{"training-dept@example.com"}, mail.To)
	assert.Equal(t, 30, mail.DurationDays)
	assert.Equal(t, 8, mail.Rating)
	assert.Equal(t, []string{"/uploads/projects/report.pdf", "/uploads/projects/attendance.pdf"}, mail.Attachments)
}

func TestCompleteProjectNotifiesCreatorAdmin(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, admin2, instructor := seedUsers(t, db)

	completeTestProject(t, eng, admin1.ID, instructor.ID, 10)

	// The instructor was created by admin1, so only admin1 is notified.
	var notifications []models.Notification
	require.NoError(t, db.Where("event_type = ?", EventProjectCompleted).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, admin1.ID, notifications[0].RecipientID)
	assert.NotEqual(t, admin2.ID, notifications[0].RecipientID)
}

func TestCompleteProjectRequiresBothDocuments(t *testing.T) {
	eng, db, mailer := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)
	project, err := eng.CreateProject(trainee.ID, instructor.ID, ProjectInput{Title: "Compiler"})
	require.NoError(t, err)

	_, err = eng.CompleteProject(project.ID, 8, "/uploads/projects/report.pdf", "")
	var vl *ValidationError
	require.ErrorAs(t, err, &vl)
	assert.Contains(t, vl.Reason, "both documents required")

	// Status unchanged, nothing persisted or mailed.
	var current models.Project
	require.NoError(t, db.First(&current, project.ID).Error)
	assert.Equal(t, models.ProjectStatusAssigned, current.Status)
	assert.Nil(t, current.EndDate)

	var docCount int64
	db.Model(&models.Document{}).Count(&docCount)
	assert.EqualValues(t, 0, docCount)
	assert.Empty(t, mailer.Completions)
}

func TestCompleteProjectRatingOutOfRange(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)
	trainee := approvedTrainee(t, eng, admin1.ID, instructor.ID)
	project, err := eng.CreateProject(trainee.ID, instructor.ID, ProjectInput{Title: "Compiler"})
	require.NoError(t, err)

	var vl *ValidationError
	_, err = eng.CompleteProject(project.ID, 0, "/r.pdf", "/a.pdf")
	require.ErrorAs(t, err, &vl)

	_, err = eng.CompleteProject(project.ID, 11, "/r.pdf", "/a.pdf")
	require.ErrorAs(t, err, &vl)
}

func TestCompleteProjectTwiceFailsWithoutDuplicates(t *testing.T) {
	eng, db, mailer := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)

	completed := completeTestProject(t, eng, admin1.ID, instructor.ID, 5)

	_, err := eng.CompleteProject(completed.ID, 9, "/r2.pdf", "/a2.pdf")
	var is *InvalidStateError
	require.ErrorAs(t, err, &is)

	// No duplicate documents or emails.
	var docCount int64
	db.Model(&models.Document{}).Where("project_id = ?", completed.ID).Count(&docCount)
	assert.EqualValues(t, 2, docCount)
	assert.Len(t, mailer.Completions, 1)

	// First completion's fields persist.
	var current models.Project
	require.NoError(t, db.First(&current, completed.ID).Error)
	require.NotNil(t, current.PerformanceRating)
	assert.Equal(t, 8, *current.PerformanceRating)
	assert.Equal(t, "/uploads/projects/report.pdf", current.ReportPath)
}

func TestRecordProgressOnCompletedProject(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	admin1, _, instructor := seedUsers(t, db)

	completed := completeTestProject(t, eng, admin1.ID, instructor.ID, 5)

	_, err := eng.RecordProgress(completed.ID, "late entry", 100)
	var is *InvalidStateError
	require.ErrorAs(t, err, &is)

	var entryCount int64
	db.Model(&models.ProjectProgress{}).Where("project_id = ?", completed.ID).Count(&entryCount)
	assert.EqualValues(t, 0, entryCount)
}
