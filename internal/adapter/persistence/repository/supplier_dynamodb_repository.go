package repository

import (
	"context"
	"sort"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSuppliersTableName = "suppliers"

type supplierItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	TaxID       string `dynamodbav:"tax_id"`
	Sector      string `dynamodbav:"sector,omitempty"`
	Address     string `dynamodbav:"address,omitempty"`
	City        string `dynamodbav:"city,omitempty"`
	State       string `dynamodbav:"state,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	BankingInfo string `dynamodbav:"banking_info,omitempty"`
	Umbrella    bool   `dynamodbav:"umbrella"`
	FocalPoint  string `dynamodbav:"focal_point,omitempty"`
	FocalEmail  string `dynamodbav:"focal_email,omitempty"`
	FocalPhone  string `dynamodbav:"focal_phone,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// SupplierDynamoRepository persists the supplier catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SupplierDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb *dynamodb.Client) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName),
	}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
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
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supplier{}, nil
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	var suppliers []entities.Supplier

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it supplierItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			suppliers = append(suppliers, fromSupplierItem(it))
		}
	}

	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].Name < suppliers[j].Name
	})
	return suppliers, nil
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:          s.ID,
		Name:        s.Name,
		TaxID:       s.TaxID,
		Sector:      s.Sector,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Phone:       s.Phone,
		Email:       s.Email,
		BankingInfo: s.BankingInfo,
		Umbrella:    s.Umbrella,
		FocalPoint:  s.FocalPoint,
		FocalEmail:  s.FocalEmail,
		FocalPhone:  s.FocalPhone,
		CreatedAt:   fmtTime(s.CreatedAt),
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:          it.ID,
		Name:        it.Name,
		TaxID:       it.TaxID,
		Sector:      it.Sector,
		Address:     it.Address,
		City:        it.City,
		State:       it.State,
		Phone:       it.Phone,
		Email:       it.Email,
		BankingInfo: it.BankingInfo,
		Umbrella:    it.Umbrella,
		FocalPoint:  it.FocalPoint,
		FocalEmail:  it.FocalEmail,
		FocalPhone:  it.FocalPhone,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
