package interfaces

import (
	"context"
	"time"

	"catering_portal/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// UpdateStatus carries the same compare-and-swap contract as the quote
// repository. The repository also stamps sent_at/viewed_at/paid_at the
// first time the document enters the corresponding status.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.InvoiceStatus, actor string, at time.Time) (entities.Invoice, error)
}
