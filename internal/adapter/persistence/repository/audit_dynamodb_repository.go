package repository

import (
	"context"
	"fmt"
	"time"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultAuditTableName = "status_transitions"

type auditItem struct {
	Entity         string `dynamodbav:"entity"`
	SortKey        string `dynamodbav:"sort_key"`
	EntityKind     string `dynamodbav:"entity_kind"`
	EntityID       string `dynamodbav:"entity_id"`
	PreviousStatus string `dynamodbav:"previous_status"`
	NewStatus      string `dynamodbav:"new_status"`
	Actor          string `dynamodbav:"actor"`
	Reason         string `dynamodbav:"reason,omitempty"`
	RecordedAt     string `dynamodbav:"recorded_at"`
}

// AuditDynamoRepository is the append-only transition log.
//
// Table requirements:
//   - PK: entity (string, "<kind>#<id>")
//   - SK: sort_key (string, "<recorded_at>#<uuid>")
//
// The uuid suffix keeps two transitions recorded in the same nanosecond
// from colliding. Items are never updated or deleted.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, rec entities.StatusTransitionRecord) error {
	ts := rec.RecordedAt.UTC().Format(time.RFC3339Nano)
	it := auditItem{
		Entity:         entityKey(rec.EntityKind, rec.EntityID),
		SortKey:        ts + "#" + uuid.NewString(),
		EntityKind:     string(rec.EntityKind),
		EntityID:       rec.EntityID,
		PreviousStatus: rec.PreviousStatus,
		NewStatus:      rec.NewStatus,
		Actor:          string(rec.Actor),
		Reason:         rec.Reason,
		RecordedAt:     ts,
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AuditDynamoRepository) ListByEntity(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.StatusTransitionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#entity = :entity"),
		ExpressionAttributeNames: map[string]string{
			"#entity": "entity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entity": &types.AttributeValueMemberS{Value: entityKey(kind, entityID)},
		},
		// Most recent first.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.StatusTransitionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		recordedAt, _ := time.Parse(time.RFC3339Nano, it.RecordedAt)
		records = append(records, entities.StatusTransitionRecord{
			EntityKind:     entities.EntityKind(it.EntityKind),
			EntityID:       it.EntityID,
			PreviousStatus: it.PreviousStatus,
			NewStatus:      it.NewStatus,
			Actor:          entities.ActorRole(it.Actor),
			Reason:         it.Reason,
			RecordedAt:     recordedAt,
		})
	}
	return records, nil
}

func entityKey(kind entities.EntityKind, id string) string {
	return fmt.Sprintf("%s#%s", kind, id)
}
