package interfaces

import (
	"context"
	"time"

	"catering_portal/internal/domain/entities"
)

// IMilestoneRepository abstracts DynamoDB persistence for PaymentMilestone.

type IMilestoneRepository interface {
	Create(ctx context.Context, m entities.PaymentMilestone) (entities.PaymentMilestone, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMilestone, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	MarkPaid(ctx context.Context, id string, at time.Time) (entities.PaymentMilestone, error)
}
