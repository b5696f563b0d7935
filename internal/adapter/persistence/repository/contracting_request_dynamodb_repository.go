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

const defaultRequestsTableName = "contracting_requests"

type supplyReviewItem struct {
	Approved      bool   `dynamodbav:"approved"`
	ReviewerID    string `dynamodbav:"reviewer_id"`
	ReviewedAt    string `dynamodbav:"reviewed_at,omitempty"`
	Justification string `dynamodbav:"justification,omitempty"`
}

type selectionItem struct {
	SupplierID    string `dynamodbav:"supplier_id"`
	Justification string `dynamodbav:"justification"`
	SelectedAt    string `dynamodbav:"selected_at,omitempty"`
}

type contractDraftItem struct {
	Number        string             `dynamodbav:"number"`
	Object        string             `dynamodbav:"object,omitempty"`
	StartDate     string             `dynamodbav:"start_date,omitempty"`
	EndDate       string             `dynamodbav:"end_date,omitempty"`
	TotalValue    string             `dynamodbav:"total_value"`
	ArtifactRef   string             `dynamodbav:"artifact_ref,omitempty"`
	ManagerReview approvalRecordItem `dynamodbav:"manager_review"`
	AttachedAt    string             `dynamodbav:"attached_at,omitempty"`
}

type contractingRequestItem struct {
	ID             string `dynamodbav:"id"`
	ProjectCode    string `dynamodbav:"project_code"`
	CoordinatorID  string `dynamodbav:"coordinator_id"`
	LineLeadID     string `dynamodbav:"line_lead_id,omitempty"`
	Description    string `dynamodbav:"description,omitempty"`
	Requirements   string `dynamodbav:"requirements,omitempty"`
	Budgeted       bool   `dynamodbav:"budgeted"`
	BudgetedAmount string `dynamodbav:"budgeted_amount"`
	ScheduleRef    string `dynamodbav:"schedule_ref,omitempty"`
	Status         string `dynamodbav:"status"`

	SupplyReview        *supplyReviewItem    `dynamodbav:"supply_review,omitempty"`
	ScreenedSupplierIDs []string             `dynamodbav:"screened_supplier_ids,omitempty"`
	NoCandidateDeclared bool                 `dynamodbav:"no_candidate_declared"`
	Selection           *selectionItem       `dynamodbav:"selection,omitempty"`
	SupplierGate        []approvalRecordItem `dynamodbav:"supplier_gate"`
	Draft               *contractDraftItem   `dynamodbav:"draft,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractingRequestDynamoRepository persists ContractingRequest
// entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write carries a version condition so concurrent gate decisions
// never silently overwrite each other.

type ContractingRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractingRequestRepository = (*ContractingRequestDynamoRepository)(nil)

func NewContractingRequestDynamoRepository(ddb *dynamodb.Client) *ContractingRequestDynamoRepository {
	return &ContractingRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *ContractingRequestDynamoRepository) Create(ctx context.Context, req entities.ContractingRequest) (entities.ContractingRequest, error) {
	req.Version = 1
	av, err := attributevalue.MarshalMap(toContractingRequestItem(req))
	if err != nil {
		return entities.ContractingRequest{}, err
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
		return entities.ContractingRequest{}, err
	}
	return req, nil
}

func (r *ContractingRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractingRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractingRequest{}, nil
	}

	var it contractingRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractingRequest{}, err
	}
	return fromContractingRequestItem(it), nil
}

// Save writes the full entity conditioned on the version it was read
// with. A lost condition returns an empty entity with nil error; the
// caller re-reads and retries.
func (r *ContractingRequestDynamoRepository) Save(ctx context.Context, req entities.ContractingRequest) (entities.ContractingRequest, error) {
	expected := req.Version
	req.Version = expected + 1
	req.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toContractingRequestItem(req))
	if err != nil {
		return entities.ContractingRequest{}, err
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
			return entities.ContractingRequest{}, nil
		}
		return entities.ContractingRequest{}, err
	}
	return req, nil
}

func toContractingRequestItem(r entities.ContractingRequest) contractingRequestItem {
	it := contractingRequestItem{
		ID:                  r.ID,
		ProjectCode:         r.ProjectCode,
		CoordinatorID:       r.CoordinatorID,
		LineLeadID:          r.LineLeadID,
		Description:         r.Description,
		Requirements:        r.Requirements,
		Budgeted:            r.Budgeted,
		BudgetedAmount:      floatToString(r.BudgetedAmount),
		ScheduleRef:         r.ScheduleRef,
		Status:              string(r.Status),
		ScreenedSupplierIDs: r.ScreenedSupplierIDs,
		NoCandidateDeclared: r.NoCandidateDeclared,
		SupplierGate:        toGateItems(r.SupplierGate),
		Version:             r.Version,
		CreatedAt:           fmtTime(r.CreatedAt),
		UpdatedAt:           fmtTime(r.UpdatedAt),
	}
	if r.SupplyReview != nil {
		it.SupplyReview = &supplyReviewItem{
			Approved:      r.SupplyReview.Approved,
			ReviewerID:    r.SupplyReview.ReviewerID,
			ReviewedAt:    fmtTime(r.SupplyReview.ReviewedAt),
			Justification: r.SupplyReview.Justification,
		}
	}
	if r.Selection != nil {
		it.Selection = &selectionItem{
			SupplierID:    r.Selection.SupplierID,
			Justification: r.Selection.Justification,
			SelectedAt:    fmtTime(r.Selection.SelectedAt),
		}
	}
	if r.Draft != nil {
		it.Draft = &contractDraftItem{
			Number:        r.Draft.Number,
			Object:        r.Draft.Object,
			StartDate:     fmtTime(r.Draft.StartDate),
			EndDate:       fmtTime(r.Draft.EndDate),
			TotalValue:    floatToString(r.Draft.TotalValue),
			ArtifactRef:   r.Draft.ArtifactRef,
			ManagerReview: toApprovalRecordItem(r.Draft.ManagerReview),
			AttachedAt:    fmtTime(r.Draft.AttachedAt),
		}
	}
	return it
}

func fromContractingRequestItem(it contractingRequestItem) entities.ContractingRequest {
	r := entities.ContractingRequest{
		ID:                  it.ID,
		ProjectCode:         it.ProjectCode,
		CoordinatorID:       it.CoordinatorID,
		LineLeadID:          it.LineLeadID,
		Description:         it.Description,
		Requirements:        it.Requirements,
		Budgeted:            it.Budgeted,
		BudgetedAmount:      parseFloat(it.BudgetedAmount),
		ScheduleRef:         it.ScheduleRef,
		Status:              entities.RequestStatus(it.Status),
		ScreenedSupplierIDs: it.ScreenedSupplierIDs,
		NoCandidateDeclared: it.NoCandidateDeclared,
		SupplierGate:        fromGateItems(it.SupplierGate),
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if it.SupplyReview != nil {
		r.SupplyReview = &entities.SupplyReview{
			Approved:      it.SupplyReview.Approved,
			ReviewerID:    it.SupplyReview.ReviewerID,
			ReviewedAt:    parseTime(it.SupplyReview.ReviewedAt),
			Justification: it.SupplyReview.Justification,
		}
	}
	if it.Selection != nil {
		r.Selection = &entities.SupplierSelection{
			SupplierID:    it.Selection.SupplierID,
			Justification: it.Selection.Justification,
			SelectedAt:    parseTime(it.Selection.SelectedAt),
		}
	}
	if it.Draft != nil {
		r.Draft = &entities.ContractDraft{
			Number:        it.Draft.Number,
			Object:        it.Draft.Object,
			StartDate:     parseTime(it.Draft.StartDate),
			EndDate:       parseTime(it.Draft.EndDate),
			TotalValue:    parseFloat(it.Draft.TotalValue),
			ArtifactRef:   it.Draft.ArtifactRef,
			ManagerReview: fromApprovalRecordItem(it.Draft.ManagerReview),
			AttachedAt:    parseTime(it.Draft.AttachedAt),
		}
	}
	return r
}
