package repository

import (
	"context"
	"errors"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventsTableName = "events"
	eventRequestIndexName  = "request_id-index"
	eventContractIndexName = "contract_id-index"
	eventSupplierIndexName = "supplier_id-index"
)

type eventItem struct {
	ID          string `dynamodbav:"id"`
	SupplierID  string `dynamodbav:"supplier_id,omitempty"`
	RequestID   string `dynamodbav:"request_id,omitempty"`
	ContractID  string `dynamodbav:"contract_id,omitempty"`
	Description string `dynamodbav:"description"`

	ForecastDate        string `dynamodbav:"forecast_date,omitempty"`
	ForecastAmount      string `dynamodbav:"forecast_amount"`
	ForecastPaymentDate string `dynamodbav:"forecast_payment_date,omitempty"`

	DeliveredDate string `dynamodbav:"delivered_date,omitempty"`
	PaidAmount    string `dynamodbav:"paid_amount"`
	PaymentDate   string `dynamodbav:"payment_date,omitempty"`

	Delivered     bool   `dynamodbav:"delivered"`
	Late          bool   `dynamodbav:"late"`
	Evaluation    string `dynamodbav:"evaluation,omitempty"`
	ArtifactRef   string `dynamodbav:"artifact_ref,omitempty"`
	Justification string `dynamodbav:"justification,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EventDynamoRepository persists delivery/payment events in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI request_id-index: PK request_id (string)
//   - GSI contract_id-index: PK contract_id (string)
//   - GSI supplier_id-index: PK supplier_id (string)

type EventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb *dynamodb.Client) *EventDynamoRepository {
	return &EventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENTS_TABLE", defaultEventsTableName),
	}
}

func (r *EventDynamoRepository) Create(ctx context.Context, e entities.Event) (entities.Event, error) {
	av, err := attributevalue.MarshalMap(toEventItem(e))
	if err != nil {
		return entities.Event{}, err
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
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) GetByID(ctx context.Context, id string) (entities.Event, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Event{}, err
	}
	if len(out.Item) == 0 {
		return entities.Event{}, nil
	}

	var it eventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Event{}, err
	}
	return fromEventItem(it), nil
}

func (r *EventDynamoRepository) Save(ctx context.Context, e entities.Event) (entities.Event, error) {
	e.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toEventItem(e))
	if err != nil {
		return entities.Event{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *EventDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Event, error) {
	return r.queryIndex(ctx, eventRequestIndexName, "request_id", requestID)
}

func (r *EventDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Event, error) {
	return r.queryIndex(ctx, eventContractIndexName, "contract_id", contractID)
}

func (r *EventDynamoRepository) ListBySupplierID(ctx context.Context, supplierID string) ([]entities.Event, error) {
	return r.queryIndex(ctx, eventSupplierIndexName, "supplier_id", supplierID)
}

func (r *EventDynamoRepository) ListAll(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it eventItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			events = append(events, fromEventItem(it))
		}
	}
	return events, nil
}

// ReparentToContract attaches the request's contract-less events to the
// contract. Each update is conditioned on contract_id still being
// absent, so a concurrent reparent never flips an event twice.
func (r *EventDynamoRepository) ReparentToContract(ctx context.Context, requestID, contractID string) (int, error) {
	orphans, err := r.ListByRequestID(ctx, requestID)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, e := range orphans {
		if !e.Orphaned() {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: e.ID},
			},
			UpdateExpression:    aws.String("SET #cid = :cid, #updated = :updated"),
			ConditionExpression: aws.String("attribute_not_exists(#cid)"),
			ExpressionAttributeNames: map[string]string{
				"#cid":     "contract_id",
				"#updated": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid":     &types.AttributeValueMemberS{Value: contractID},
				":updated": &types.AttributeValueMemberS{Value: fmtTime(time.Now().UTC())},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return moved, err
		}
		moved++
	}
	return moved, nil
}

func (r *EventDynamoRepository) queryIndex(ctx context.Context, indexName, keyName, keyValue string) ([]entities.Event, error) {
	var events []entities.Event

	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": keyName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it eventItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			events = append(events, fromEventItem(it))
		}
	}
	return events, nil
}

func toEventItem(e entities.Event) eventItem {
	return eventItem{
		ID:                  e.ID,
		SupplierID:          e.SupplierID,
		RequestID:           e.RequestID,
		ContractID:          e.ContractID,
		Description:         e.Description,
		ForecastDate:        fmtTime(e.ForecastDate),
		ForecastAmount:      floatToString(e.ForecastAmount),
		ForecastPaymentDate: fmtTime(e.ForecastPaymentDate),
		DeliveredDate:       fmtTime(e.DeliveredDate),
		PaidAmount:          floatToString(e.PaidAmount),
		PaymentDate:         fmtTime(e.PaymentDate),
		Delivered:           e.Delivered,
		Late:                e.Late,
		Evaluation:          string(e.Evaluation),
		ArtifactRef:         e.ArtifactRef,
		Justification:       e.Justification,
		CreatedAt:           fmtTime(e.CreatedAt),
		UpdatedAt:           fmtTime(e.UpdatedAt),
	}
}

func fromEventItem(it eventItem) entities.Event {
	return entities.Event{
		ID:                  it.ID,
		SupplierID:          it.SupplierID,
		RequestID:           it.RequestID,
		ContractID:          it.ContractID,
		Description:         it.Description,
		ForecastDate:        parseTime(it.ForecastDate),
		ForecastAmount:      parseFloat(it.ForecastAmount),
		ForecastPaymentDate: parseTime(it.ForecastPaymentDate),
		DeliveredDate:       parseTime(it.DeliveredDate),
		PaidAmount:          parseFloat(it.PaidAmount),
		PaymentDate:         parseTime(it.PaymentDate),
		Delivered:           it.Delivered,
		Late:                it.Late,
		Evaluation:          entities.Decision(it.Evaluation),
		ArtifactRef:         it.ArtifactRef,
		Justification:       it.Justification,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
