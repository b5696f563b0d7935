package repository

import (
	"context"
	"errors"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contracts"
	contractIDIndexName       = "id-index"
)

type contractItem struct {
	RequestID     string `dynamodbav:"request_id"`
	ID            string `dynamodbav:"id"`
	ProjectCode   string `dynamodbav:"project_code"`
	SupplierID    string `dynamodbav:"supplier_id"`
	CoordinatorID string `dynamodbav:"coordinator_id"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	EndDate       string `dynamodbav:"end_date,omitempty"`
	TotalValue    string `dynamodbav:"total_value"`
	PaymentTerms  string `dynamodbav:"payment_terms,omitempty"`
	Object        string `dynamodbav:"object,omitempty"`
	ArtifactRef   string `dynamodbav:"artifact_ref,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ContractDynamoRepository persists materialized contracts in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string)
//   - GSI id-index: PK id (string)
//
// Keying on request_id is what makes the conditional Create enforce
// one contract per request.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

// Create races the conditional put; losing it returns an empty entity
// with nil error so the caller re-reads the winner.
func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractIDIndexName),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// Save overwrites an existing contract row; it never creates one.
func (r *ContractDynamoRepository) Save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "request_id",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	var contracts []entities.Contract

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			contracts = append(contracts, fromContractItem(it))
		}
	}
	return contracts, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		RequestID:     c.RequestID,
		ID:            c.ID,
		ProjectCode:   c.ProjectCode,
		SupplierID:    c.SupplierID,
		CoordinatorID: c.CoordinatorID,
		StartDate:     fmtTime(c.StartDate),
		EndDate:       fmtTime(c.EndDate),
		TotalValue:    floatToString(c.TotalValue),
		PaymentTerms:  string(c.PaymentTerms),
		Object:        c.Object,
		ArtifactRef:   c.ArtifactRef,
		Status:        string(c.Status),
		CreatedAt:     fmtTime(c.CreatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		RequestID:     it.RequestID,
		ID:            it.ID,
		ProjectCode:   it.ProjectCode,
		SupplierID:    it.SupplierID,
		CoordinatorID: it.CoordinatorID,
		StartDate:     parseTime(it.StartDate),
		EndDate:       parseTime(it.EndDate),
		TotalValue:    parseFloat(it.TotalValue),
		PaymentTerms:  entities.PaymentTerms(it.PaymentTerms),
		Object:        it.Object,
		ArtifactRef:   it.ArtifactRef,
		Status:        entities.ContractStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
