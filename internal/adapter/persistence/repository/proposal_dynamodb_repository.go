package repository

import (
	"context"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	RequestID    string `dynamodbav:"request_id"`
	SupplierID   string `dynamodbav:"supplier_id"`
	Amount       string `dynamodbav:"amount"`
	PaymentTerms string `dynamodbav:"payment_terms,omitempty"`
	ValidUntil   string `dynamodbav:"valid_until,omitempty"`
	ArtifactRef  string `dynamodbav:"artifact_ref,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: supplier_id (string)

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

// Upsert writes through the composite key, so re-screening the same
// supplier replaces its previous bid.
func (r *ProposalDynamoRepository) Upsert(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByRequestAndSupplier(ctx context.Context, requestID, supplierID string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id":  &types.AttributeValueMemberS{Value: requestID},
			"supplier_id": &types.AttributeValueMemberS{Value: supplierID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#rid = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	proposals := make([]entities.Proposal, 0, len(out.Items))
	for _, item := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		proposals = append(proposals, fromProposalItem(it))
	}
	return proposals, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		RequestID:    p.RequestID,
		SupplierID:   p.SupplierID,
		Amount:       floatToString(p.Amount),
		PaymentTerms: string(p.PaymentTerms),
		ValidUntil:   fmtTime(p.ValidUntil),
		ArtifactRef:  p.ArtifactRef,
		CreatedAt:    fmtTime(p.CreatedAt),
		UpdatedAt:    fmtTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		RequestID:    it.RequestID,
		SupplierID:   it.SupplierID,
		Amount:       parseFloat(it.Amount),
		PaymentTerms: entities.PaymentTerms(it.PaymentTerms),
		ValidUntil:   parseTime(it.ValidUntil),
		ArtifactRef:  it.ArtifactRef,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
