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

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID               string `dynamodbav:"id"`
	CustomerName     string `dynamodbav:"customer_name"`
	CustomerEmail    string `dynamodbav:"customer_email"`
	CustomerPhone    string `dynamodbav:"customer_phone,omitempty"`
	EventDate        string `dynamodbav:"event_date"`
	GuestCount       int    `dynamodbav:"guest_count"`
	EventLocation    string `dynamodbav:"event_location,omitempty"`
	Status           string `dynamodbav:"status"`
	LastStatusChange string `dynamodbav:"last_status_change"`
	StatusChangedBy  string `dynamodbav:"status_changed_by"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status writes are conditioned on the expected previous status so that
// two concurrent transition requests cannot both commit against the same
// starting state.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// UpdateStatus commits a transition with compare-and-swap semantics: the
// write only succeeds while the persisted status still equals expected.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.QuoteStatus, actor string, at time.Time) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #last_status_change = :at, #status_changed_by = :actor"),
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#status":             "status",
			"#last_status_change": "last_status_change",
			"#status_changed_by":  "status_changed_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
			":status":   &types.AttributeValueMemberS{Value: string(next)},
			":at":       &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":actor":    &types.AttributeValueMemberS{Value: actor},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrStaleStatus
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:               q.ID,
		CustomerName:     q.CustomerName,
		CustomerEmail:    q.CustomerEmail,
		CustomerPhone:    q.CustomerPhone,
		EventDate:        q.EventDate.UTC().Format(time.RFC3339Nano),
		GuestCount:       q.GuestCount,
		EventLocation:    q.EventLocation,
		Status:           string(q.Status),
		LastStatusChange: q.LastStatusChange.UTC().Format(time.RFC3339Nano),
		StatusChangedBy:  q.StatusChangedBy,
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	eventDate, _ := time.Parse(time.RFC3339Nano, it.EventDate)
	lastChange, _ := time.Parse(time.RFC3339Nano, it.LastStatusChange)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Quote{
		ID:               it.ID,
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		CustomerPhone:    it.CustomerPhone,
		EventDate:        eventDate,
		GuestCount:       it.GuestCount,
		EventLocation:    it.EventLocation,
		Status:           entities.QuoteStatus(it.Status),
		LastStatusChange: lastChange,
		StatusChangedBy:  it.StatusChangedBy,
		CreatedAt:        createdAt,
	}
}
