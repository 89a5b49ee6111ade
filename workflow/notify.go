package workflow

import (
	"log"
	"tms/models"
)

// Workflow event types
const (
	EventTraineeSubmitted = "TRAINEE_SUBMITTED"
	EventTraineeDecided   = "TRAINEE_DECIDED"
	EventProgressShared   = "PROGRESS_SHARED"
	EventReviewCompleted  = "REVIEW_COMPLETED"
	EventProjectCompleted = "PROJECT_COMPLETED"
)

// Event describes a completed workflow transition for fan-out.
type Event struct {
	Type    string
	Title   string
	Message string
}

// Recipient identifies one notification target.
type Recipient struct {
	ID   uint
	Type string
}

// Drafts builds one notification row per recipient. It performs no I/O.
func Drafts(evt Event, recipients []Recipient) []models.Notification {
	drafts := make([]models.Notification, 0, len(recipients))
	for _, r := range recipients {
		drafts = append(drafts, models.Notification{
			RecipientID:   r.ID,
			RecipientType: r.Type,
			EventType:     evt.Type,
			Title:         evt.Title,
			Message:       evt.Message,
		})
	}
	return drafts
}

// notifyAdmins fans an event out to every admin.
func (e *Engine) notifyAdmins(evt Event) {
	var admins []models.User
	if err := e.db.Where("role = ? AND is_deleted = false", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Printf("[NOTIFY] failed to resolve admin recipients for %s: %v", evt.Type, err)
		return
	}
	recipients := make([]Recipient, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, Recipient{ID: a.ID, Type: models.RecipientAdmin})
	}
	e.persist(Drafts(evt, recipients))
}

// notifyInstructor fans an event out to a single instructor.
func (e *Engine) notifyInstructor(instructorID uint, evt Event) {
	e.persist(Drafts(evt, []Recipient{{ID: instructorID, Type: models.RecipientInstructor}}))
}

// notifyAdmin fans an event out to a single admin.
func (e *Engine) notifyAdmin(adminID uint, evt Event) {
	e.persist(Drafts(evt, []Recipient{{ID: adminID, Type: models.RecipientAdmin}}))
}

// persist writes notification rows best-effort. A failed insert is logged
// and never propagated; the triggering transition has already committed.
func (e *Engine) persist(drafts []models.Notification) {
	for i := range drafts {
		if err := e.db.Create(&drafts[i]).Error; err != nil {
			log.Printf("[NOTIFY] failed to create %s notification for %s %d: %v",
				drafts[i].EventType, drafts[i].RecipientType, drafts[i].RecipientID, err)
		}
	}
}
