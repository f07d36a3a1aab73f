package handler

import (
	"time"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// --- Request / Response types ---

type listTimeRequest struct {
	From string `query:"from" validate:"omitempty,dateonly"`
	To   string `query:"to"   validate:"omitempty,dateonly"`
}

type createTimeRequest struct {
	Date   string  `json:"date"              validate:"required,dateonly"`
	Length float64 `json:"length"            validate:"required,gt=0,lte=24"`
	Note   string  `json:"note"`
	UserID string  `json:"user_id,omitempty"`
}

type updateTimeRequest struct {
	Date   *string  `json:"date"    validate:"omitempty,dateonly"`
	Length *float64 `json:"length"  validate:"omitempty,gt=0,lte=24"`
	Note   *string  `json:"note"`
	UserID string   `json:"user_id,omitempty"`
}

type timeEntryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Length    float64   `json:"length"`
	Note      string    `json:"note,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// timeEntryItemResponse is the list view: the entry plus its owner, so
// clients do not have to join rosters themselves.
type timeEntryItemResponse struct {
	timeEntryResponse
	User *userResponse `json:"user"`
}

func toTimeEntryResponse(e *domain.TimeEntry) timeEntryResponse {
	return timeEntryResponse{
		ID:        e.ID,
		Date:      e.Date,
		Length:    e.Length,
		Note:      e.Note,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toTimeEntryItems(items []ports.TimeEntryItem) []timeEntryItemResponse {
	out := make([]timeEntryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, timeEntryItemResponse{
			timeEntryResponse: toTimeEntryResponse(it.Entry),
			User:              toUserResponse(it.Owner),
		})
	}
	return out
}
