package repository

import (
	"context"
	"errors"
	"time"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesQuoteIDIndex     = "quote_id-index"
)

type invoiceItem struct {
	ID               string `dynamodbav:"id"`
	QuoteID          string `dynamodbav:"quote_id"`
	DocumentType     string `dynamodbav:"document_type"`
	IsDraft          bool   `dynamodbav:"is_draft"`
	SubtotalCents    int64  `dynamodbav:"subtotal_cents"`
	TaxCents         int64  `dynamodbav:"tax_cents"`
	TotalCents       int64  `dynamodbav:"total_cents"`
	Status           string `dynamodbav:"status"`
	SentAt           string `dynamodbav:"sent_at,omitempty"`
	ViewedAt         string `dynamodbav:"viewed_at,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	LastStatusChange string `dynamodbav:"last_status_change"`
	StatusChangedBy  string `dynamodbav:"status_changed_by"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// UpdateStatus commits a transition with compare-and-swap semantics and
// stamps sent_at/viewed_at/paid_at the first time the document enters the
// matching status.
func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.InvoiceStatus, actor string, at time.Time) (entities.Invoice, error) {
	ts := at.UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #last_status_change = :at, #status_changed_by = :actor"
	names := map[string]string{
		"#id":                 "id",
		"#status":             "status",
		"#last_status_change": "last_status_change",
		"#status_changed_by":  "status_changed_by",
	}
	vals := map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":status":   &types.AttributeValueMemberS{Value: string(next)},
		":at":       &types.AttributeValueMemberS{Value: ts},
		":actor":    &types.AttributeValueMemberS{Value: actor},
	}

	switch next {
	case entities.InvoiceStatusSent:
		expr += ", #sent_at = if_not_exists(#sent_at, :at)"
		names["#sent_at"] = "sent_at"
	case entities.InvoiceStatusViewed:
		expr += ", #viewed_at = if_not_exists(#viewed_at, :at)"
		names["#viewed_at"] = "viewed_at"
	case entities.InvoiceStatusPaid:
		expr += ", #paid_at = if_not_exists(#paid_at, :at)"
		names["#paid_at"] = "paid_at"
	}

	// Leaving draft means the document is no longer editable as a draft.
	if expected == entities.InvoiceStatusDraft && next != entities.InvoiceStatusDraft {
		expr += ", #is_draft = :is_draft"
		names["#is_draft"] = "is_draft"
		vals[":is_draft"] = &types.AttributeValueMemberBOOL{Value: false}
	} else if next == entities.InvoiceStatusDraft {
		expr += ", #is_draft = :is_draft"
		names["#is_draft"] = "is_draft"
		vals[":is_draft"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, interfaces.ErrStaleStatus
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:               inv.ID,
		QuoteID:          inv.QuoteID,
		DocumentType:     string(inv.DocumentType),
		IsDraft:          inv.IsDraft,
		SubtotalCents:    inv.SubtotalCents,
		TaxCents:         inv.TaxCents,
		TotalCents:       inv.TotalCents,
		Status:           string(inv.Status),
		SentAt:           formatOptionalTime(inv.SentAt),
		ViewedAt:         formatOptionalTime(inv.ViewedAt),
		PaidAt:           formatOptionalTime(inv.PaidAt),
		LastStatusChange: inv.LastStatusChange.UTC().Format(time.RFC3339Nano),
		StatusChangedBy:  inv.StatusChangedBy,
		CreatedAt:        inv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lastChange, _ := time.Parse(time.RFC3339Nano, it.LastStatusChange)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Invoice{
		ID:               it.ID,
		QuoteID:          it.QuoteID,
		DocumentType:     entities.DocumentType(it.DocumentType),
		IsDraft:          it.IsDraft,
		SubtotalCents:    it.SubtotalCents,
		TaxCents:         it.TaxCents,
		TotalCents:       it.TotalCents,
		Status:           entities.InvoiceStatus(it.Status),
		SentAt:           parseOptionalTime(it.SentAt),
		ViewedAt:         parseOptionalTime(it.ViewedAt),
		PaidAt:           parseOptionalTime(it.PaidAt),
		LastStatusChange: lastChange,
		StatusChangedBy:  it.StatusChangedBy,
		CreatedAt:        createdAt,
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
