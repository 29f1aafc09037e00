package request

import (
	"strings"
	"time"
)

// QuoteSubmitRequest is the public intake form payload.
type QuoteSubmitRequest struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone string    `json:"customer_phone"`
	EventDate     time.Time `json:"event_date" binding:"required"`
	GuestCount    int       `json:"guest_count" binding:"required"`
	EventLocation string    `json:"event_location"`
}

// TransitionRequest asks for a workflow status change. The acting role is
// not part of the body; it comes from the X-Actor-Role header set by the
// portal's edge after authentication.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (r TransitionRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
