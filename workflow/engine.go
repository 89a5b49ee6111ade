package workflow

import (
	"gorm.io/gorm"
)

// Mailer sends workflow emails. Implementations must be fire-and-forget:
// they log failures and never block or fail the calling transition.
type Mailer interface {
	SendTraineeApprovedEmail(email, traineeName, comments string)
	SendTraineeRejectedEmail(email, traineeName, comments string)
	SendReviewCompletedEmail(email, traineeName, comments string)
	SendProjectCompletionEmail(to []string, projectTitle, traineeName string, rating, durationDays int, attachments []string)
}

// Engine enforces the trainee, project and progress-review state machines.
// It holds no state of its own; entities live in the database and every
// transition re-checks status at write time.
type Engine struct {
	db     *gorm.DB
	mailer Mailer

	// DepartmentEmails receive the project completion report.
	departmentEmails []string
}

func New(db *gorm.DB, mailer Mailer, departmentEmails []string) *Engine {
	return &Engine{db: db, mailer: mailer, departmentEmails: departmentEmails}
}
