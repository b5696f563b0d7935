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
	defaultOrderRequestsTableName = "service_order_requests"
	defaultOrdersTableName        = "service_orders"
)

type serviceOrderRequestItem struct {
	ID          string `dynamodbav:"id"`
	ContractID  string `dynamodbav:"contract_id"`
	RequesterID string `dynamodbav:"requester_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Value       string `dynamodbav:"value"`
	Deadline    string `dynamodbav:"deadline,omitempty"`
	DocumentRef string `dynamodbav:"document_ref,omitempty"`

	Status         string             `dynamodbav:"status"`
	LineLeadReview approvalRecordItem `dynamodbav:"line_lead_review"`
	ManagerReview  approvalRecordItem `dynamodbav:"manager_review"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type serviceOrderItem struct {
	OrderRequestID string `dynamodbav:"order_request_id"`
	ID             string `dynamodbav:"id"`
	ContractID     string `dynamodbav:"contract_id"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description,omitempty"`
	Value          string `dynamodbav:"value"`
	Deadline       string `dynamodbav:"deadline,omitempty"`
	DocumentRef    string `dynamodbav:"document_ref,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ServiceOrderDynamoRepository persists service order requests and
// materialized orders in two DynamoDB tables.
//
// Table requirements:
//   - order requests: PK id (string)
//   - orders: PK order_request_id (string)

type ServiceOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	requestsTable string
	ordersTable   string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:           ddb,
		requestsTable: getenvDefault("ORDER_REQUESTS_TABLE", defaultOrderRequestsTableName),
		ordersTable:   getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) CreateRequest(ctx context.Context, req entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderRequestItem(req))
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.requestsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	return req, nil
}

func (r *ServiceOrderDynamoRepository) GetRequestByID(ctx context.Context, id string) (entities.ServiceOrderRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.requestsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrderRequest{}, nil
	}

	var it serviceOrderRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	return fromServiceOrderRequestItem(it), nil
}

func (r *ServiceOrderDynamoRepository) SaveRequest(ctx context.Context, req entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
	req.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toServiceOrderRequestItem(req))
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.requestsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	return req, nil
}

func (r *ServiceOrderDynamoRepository) ListRequests(ctx context.Context) ([]entities.ServiceOrderRequest, error) {
	var requests []entities.ServiceOrderRequest

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.requestsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it serviceOrderRequestItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			requests = append(requests, fromServiceOrderRequestItem(it))
		}
	}
	return requests, nil
}

// CreateOrder mirrors the contract repository's uniqueness rule: one
// order per approved request, losing write returns empty entity.
func (r *ServiceOrderDynamoRepository) CreateOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "order_request_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetOrderByRequestID(ctx context.Context, orderRequestID string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"order_request_id": &types.AttributeValueMemberS{Value: orderRequestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func toServiceOrderRequestItem(r entities.ServiceOrderRequest) serviceOrderRequestItem {
	return serviceOrderRequestItem{
		ID:             r.ID,
		ContractID:     r.ContractID,
		RequesterID:    r.RequesterID,
		Title:          r.Title,
		Description:    r.Description,
		Value:          floatToString(r.Value),
		Deadline:       fmtTime(r.Deadline),
		DocumentRef:    r.DocumentRef,
		Status:         string(r.Status),
		LineLeadReview: toApprovalRecordItem(r.LineLeadReview),
		ManagerReview:  toApprovalRecordItem(r.ManagerReview),
		CreatedAt:      fmtTime(r.CreatedAt),
		UpdatedAt:      fmtTime(r.UpdatedAt),
	}
}

func fromServiceOrderRequestItem(it serviceOrderRequestItem) entities.ServiceOrderRequest {
	return entities.ServiceOrderRequest{
		ID:             it.ID,
		ContractID:     it.ContractID,
		RequesterID:    it.RequesterID,
		Title:          it.Title,
		Description:    it.Description,
		Value:          parseFloat(it.Value),
		Deadline:       parseTime(it.Deadline),
		DocumentRef:    it.DocumentRef,
		Status:         entities.ServiceOrderStatus(it.Status),
		LineLeadReview: fromApprovalRecordItem(it.LineLeadReview),
		ManagerReview:  fromApprovalRecordItem(it.ManagerReview),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		OrderRequestID: o.OrderRequestID,
		ID:             o.ID,
		ContractID:     o.ContractID,
		Title:          o.Title,
		Description:    o.Description,
		Value:          floatToString(o.Value),
		Deadline:       fmtTime(o.Deadline),
		DocumentRef:    o.DocumentRef,
		CreatedAt:      fmtTime(o.CreatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		OrderRequestID: it.OrderRequestID,
		ID:             it.ID,
		ContractID:     it.ContractID,
		Title:          it.Title,
		Description:    it.Description,
		Value:          parseFloat(it.Value),
		Deadline:       parseTime(it.Deadline),
		DocumentRef:    it.DocumentRef,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
