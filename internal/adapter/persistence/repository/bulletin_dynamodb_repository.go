package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBulletinsTableName = "measurement_bulletins"

type bulletinItem struct {
	RequestID   string `dynamodbav:"request_id"`
	ID          string `dynamodbav:"id"`
	EventID     string `dynamodbav:"event_id,omitempty"`
	Amount      string `dynamodbav:"amount"`
	PaymentDate string `dynamodbav:"payment_date,omitempty"`
	PeriodStart string `dynamodbav:"period_start,omitempty"`
	PeriodEnd   string `dynamodbav:"period_end,omitempty"`
	ArtifactRef string `dynamodbav:"artifact_ref"`

	ApprovalGate   []approvalRecordItem `dynamodbav:"approval_gate"`
	PaymentRelease approvalRecordItem   `dynamodbav:"payment_release"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BulletinDynamoRepository persists MeasurementBulletin entities in
// DynamoDB, one item per request.
//
// Table requirements:
//   - PK: request_id (string)

type BulletinDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBulletinRepository = (*BulletinDynamoRepository)(nil)

func NewBulletinDynamoRepository(ddb *dynamodb.Client) *BulletinDynamoRepository {
	return &BulletinDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BULLETINS_TABLE", defaultBulletinsTableName),
	}
}

// Put creates the first BM for a request. The condition makes a
// duplicate first submission fail loudly instead of overwriting.
func (r *BulletinDynamoRepository) Put(ctx context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
	bm.Version = 1
	av, err := attributevalue.MarshalMap(toBulletinItem(bm))
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "request_id",
		},
	})
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	return bm, nil
}

func (r *BulletinDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.MeasurementBulletin, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if len(out.Item) == 0 {
		return entities.MeasurementBulletin{}, nil
	}

	var it bulletinItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MeasurementBulletin{}, err
	}
	return fromBulletinItem(it), nil
}

// Save is version-conditioned; a lost write returns an empty entity
// with nil error so the caller re-reads and retries.
func (r *BulletinDynamoRepository) Save(ctx context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
	expected := bm.Version
	bm.Version = expected + 1
	bm.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toBulletinItem(bm))
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MeasurementBulletin{}, nil
		}
		return entities.MeasurementBulletin{}, err
	}
	return bm, nil
}

func toBulletinItem(bm entities.MeasurementBulletin) bulletinItem {
	return bulletinItem{
		RequestID:      bm.RequestID,
		ID:             bm.ID,
		EventID:        bm.EventID,
		Amount:         floatToString(bm.Amount),
		PaymentDate:    fmtTime(bm.PaymentDate),
		PeriodStart:    fmtTime(bm.PeriodStart),
		PeriodEnd:      fmtTime(bm.PeriodEnd),
		ArtifactRef:    bm.ArtifactRef,
		ApprovalGate:   toGateItems(bm.ApprovalGate),
		PaymentRelease: toApprovalRecordItem(bm.PaymentRelease),
		Version:        bm.Version,
		CreatedAt:      fmtTime(bm.CreatedAt),
		UpdatedAt:      fmtTime(bm.UpdatedAt),
	}
}

func fromBulletinItem(it bulletinItem) entities.MeasurementBulletin {
	return entities.MeasurementBulletin{
		RequestID:      it.RequestID,
		ID:             it.ID,
		EventID:        it.EventID,
		Amount:         parseFloat(it.Amount),
		PaymentDate:    parseTime(it.PaymentDate),
		PeriodStart:    parseTime(it.PeriodStart),
		PeriodEnd:      parseTime(it.PeriodEnd),
		ArtifactRef:    it.ArtifactRef,
		ApprovalGate:   fromGateItems(it.ApprovalGate),
		PaymentRelease: fromApprovalRecordItem(it.PaymentRelease),
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
