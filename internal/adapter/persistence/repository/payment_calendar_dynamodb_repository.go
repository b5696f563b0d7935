package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCalendarTableName = "payment_calendar"
	calendarDateLayout       = "2006-01-02"
)

// PaymentCalendarDynamoRepository persists the cutoff dates in
// DynamoDB, keyed by day so duplicates collapse at the storage layer.
//
// Table requirements:
//   - PK: date (string, YYYY-MM-DD)

type PaymentCalendarDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentCalendarRepository = (*PaymentCalendarDynamoRepository)(nil)

func NewPaymentCalendarDynamoRepository(ddb *dynamodb.Client) *PaymentCalendarDynamoRepository {
	return &PaymentCalendarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDAR_TABLE", defaultCalendarTableName),
	}
}

// Add is idempotent per day: writing an already-registered date loses
// the condition and is treated as success.
func (r *PaymentCalendarDynamoRepository) Add(ctx context.Context, entry entities.PaymentCalendarEntry) (entities.PaymentCalendarEntry, error) {
	day := entry.Date.UTC().Format(calendarDateLayout)

	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"date": &types.AttributeValueMemberS{Value: day},
		},
		ConditionExpression: aws.String("attribute_not_exists(#d)"),
		ExpressionAttributeNames: map[string]string{
			"#d": "date",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.PaymentCalendarEntry{}, err
		}
	}
	return entry, nil
}

func (r *PaymentCalendarDynamoRepository) List(ctx context.Context) ([]entities.PaymentCalendarEntry, error) {
	var entries []entities.PaymentCalendarEntry

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			attr, ok := item["date"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			day, err := time.Parse(calendarDateLayout, attr.Value)
			if err != nil {
				continue
			}
			entries = append(entries, entities.PaymentCalendarEntry{Date: day})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}
