package response

import (
	"time"

	"catering_portal/internal/domain/entities"
)

type QuoteResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone,omitempty"`
	EventDate        time.Time `json:"event_date"`
	GuestCount       int       `json:"guest_count"`
	EventLocation    string    `json:"event_location,omitempty"`
	Status           string    `json:"status"`
	LastStatusChange time.Time `json:"last_status_change"`
	StatusChangedBy  string    `json:"status_changed_by"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		CustomerName:     q.CustomerName,
		CustomerEmail:    q.CustomerEmail,
		CustomerPhone:    q.CustomerPhone,
		EventDate:        q.EventDate,
		GuestCount:       q.GuestCount,
		EventLocation:    q.EventLocation,
		Status:           string(q.Status),
		LastStatusChange: q.LastStatusChange,
		StatusChangedBy:  q.StatusChangedBy,
		CreatedAt:        q.CreatedAt,
	}
}

type TransitionRecordResponse struct {
	EntityKind     string    `json:"entity_kind"`
	EntityID       string    `json:"entity_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Actor          string    `json:"actor"`
	Reason         string    `json:"reason,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

func FromTransitionRecords(records []entities.StatusTransitionRecord) []TransitionRecordResponse {
	out := make([]TransitionRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, TransitionRecordResponse{
			EntityKind:     string(rec.EntityKind),
			EntityID:       rec.EntityID,
			PreviousStatus: rec.PreviousStatus,
			NewStatus:      rec.NewStatus,
			Actor:          string(rec.Actor),
			Reason:         rec.Reason,
			RecordedAt:     rec.RecordedAt,
		})
	}
	return out
}
