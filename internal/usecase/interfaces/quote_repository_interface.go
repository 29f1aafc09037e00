package interfaces

import (
	"context"
	"time"

	"catering_portal/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus must be conditioned on the expected previous status
// (compare-and-swap): if the persisted status no longer matches expected,
// the write fails with ErrStaleStatus and nothing is changed. A missing
// entity is reported as a zero-value Quote with a nil error on reads.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.QuoteStatus, actor string, at time.Time) (entities.Quote, error)
}
