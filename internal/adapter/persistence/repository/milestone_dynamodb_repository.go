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
	defaultMilestonesTableName = "payment_milestones"
	milestonesInvoiceIDIndex   = "invoice_id-index"
)

type milestoneItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	Description string `dynamodbav:"description,omitempty"`
	AmountCents int64  `dynamodbav:"amount_cents"`
	Status      string `dynamodbav:"status"`
	DueDate     string `dynamodbav:"due_date"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// MilestoneDynamoRepository persists PaymentMilestone entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

func (r *MilestoneDynamoRepository) Create(ctx context.Context, m entities.PaymentMilestone) (entities.PaymentMilestone, error) {
	it := toMilestoneItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentMilestone{}, err
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
		return entities.PaymentMilestone{}, err
	}
	return m, nil
}

func (r *MilestoneDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMilestone, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMilestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMilestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *MilestoneDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(milestonesInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentMilestone, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMilestoneItem(it))
	}
	return items, nil
}

// MarkPaid flips the milestone to paid. The write is conditioned on the
// milestone still being pending so a duplicate charge callback cannot
// overwrite the original paid_at.
func (r *MilestoneDynamoRepository) MarkPaid(ctx context.Context, id string, at time.Time) (entities.PaymentMilestone, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#paid_at": "paid_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.MilestoneStatusPending)},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.MilestoneStatusPaid)},
			":at":      &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentMilestone{}, interfaces.ErrStaleStatus
		}
		return entities.PaymentMilestone{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentMilestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentMilestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func toMilestoneItem(m entities.PaymentMilestone) milestoneItem {
	return milestoneItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		AmountCents: m.AmountCents,
		Status:      string(m.Status),
		DueDate:     m.DueDate.UTC().Format(time.RFC3339Nano),
		PaidAt:      formatOptionalTime(m.PaidAt),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMilestoneItem(it milestoneItem) entities.PaymentMilestone {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentMilestone{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		Description: it.Description,
		AmountCents: it.AmountCents,
		Status:      entities.MilestoneStatus(it.Status),
		DueDate:     dueDate,
		PaidAt:      parseOptionalTime(it.PaidAt),
		CreatedAt:   createdAt,
	}
}
