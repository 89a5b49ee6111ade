package workflow

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"tms/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type completionMail struct {
	To           []string
	ProjectTitle string
	TraineeName  string
	Rating       int
	DurationDays int
	Attachments  []string
}

// fakeMailer records calls synchronously so tests can assert on them.
type fakeMailer struct {
	mu              sync.Mutex
	Approved        []string
	Rejected        []string
	ReviewCompleted []string
	Completions     []completionMail
}

func (m *fakeMailer) SendTraineeApprovedEmail(email, traineeName, comments string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Approved = append(m.Approved, email)
}

func (m *fakeMailer) SendTraineeRejectedEmail(email, traineeName, comments string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected = append(m.Rejected, email)
}

func (m *fakeMailer) SendReviewCompletedEmail(email, traineeName, comments string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReviewCompleted = append(m.ReviewCompleted, email)
}

func (m *fakeMailer) SendProjectCompletionEmail(to []string, projectTitle, traineeName string, rating, durationDays int, attachments []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Completions = append(m.Completions, completionMail{
		To:           to,
		ProjectTitle: projectTitle,
		TraineeName:  traineeName,
		Rating:       rating,
		DurationDays: durationDays,
		Attachments:  attachments,
	})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Trainee{},
		&models.Project{},
		&models.ProjectProgress{},
		&models.ProgressReview{},
		&models.Document{},
		&models.Notification{},
	))
	return db
}

// seedUsers creates two admins and one instructor created by the first admin.
func seedUsers(t *testing.T, db *gorm.DB) (admin1, admin2, instructor models.User) {
	t.Helper()

	admin1 = models.User{Name: "Admin One", Email: "admin1@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin1).Error)

	admin2 = models.User{Name: "Admin Two", Email: "admin2@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin2).Error)

	instructor = models.User{Name: "Instructor", Email: "instructor@example.com", Password: "x", Role: models.RoleInstructor, CreatedByID: &admin1.ID}
	require.NoError(t, db.Create(&instructor).Error)
	return admin1, admin2, instructor
}

func newTestEngine(t *testing.T) (*Engine, *gorm.DB, *fakeMailer) {
	t.Helper()

	db := newTestDB(t)
	mailer := &fakeMailer{}
	return New(db, mailer, []string{"training-dept@example.com"}), db, mailer
}

func notificationCount(t *testing.T, db *gorm.DB, eventType string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.Notification{}).Where("event_type = ?", eventType).Count(&n).Error)
	return n
}
