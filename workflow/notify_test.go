package workflow

import (
	"net/http"
	"testing"
	"tms/models"

	"github.com/stretchr/testify/assert"
)

func TestDraftsBuildsOneRowPerRecipient(t *testing.T) {
	evt := Event{Type: EventProgressShared, Title: "t", Message: "m"}
	recipients := []Recipient{
		{ID: 1, Type: models.RecipientAdmin},
		{ID: 2, Type: models.RecipientAdmin},
		{ID: 7, Type: models.RecipientInstructor},
	}

	drafts := Drafts(evt, recipients)

	assert.Len(t, drafts, 3)
	for i, d := range drafts {
		assert.Equal(t, recipients[i].ID, d.RecipientID)
		assert.Equal(t, recipients[i].Type, d.RecipientType)
		assert.Equal(t, EventProgressShared, d.EventType)
		assert.Equal(t, "t", d.Title)
		assert.Equal(t, "m", d.Message)
		assert.False(t, d.IsRead)
	}
}

func TestDraftsEmptyRecipients(t *testing.T) {
	drafts := Drafts(Event{Type: EventTraineeSubmitted}, nil)
	assert.Empty(t, drafts)
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", &NotFoundError{Entity: "trainee", ID: 1}, http.StatusNotFound},
		{"invalid state", &InvalidStateError{Entity: "trainee", ID: 1, Status: "APPROVED", Op: "decided"}, http.StatusConflict},
		{"precondition", &PreconditionError{Entity: "trainee", ID: 1, Reason: "not approved"}, http.StatusPreconditionFailed},
		{"validation", &ValidationError{Field: "rating", Reason: "out of range"}, http.StatusUnprocessableEntity},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := HTTPStatus(tc.err)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}
