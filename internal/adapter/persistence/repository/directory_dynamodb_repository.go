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

const defaultUsersTableName = "users"

type userItem struct {
	ID          string   `dynamodbav:"id"`
	Username    string   `dynamodbav:"username"`
	FullName    string   `dynamodbav:"full_name,omitempty"`
	Email       string   `dynamodbav:"email"`
	Role        string   `dynamodbav:"role"`
	WorkCenters []string `dynamodbav:"work_centers,omitempty"`
}

// DirectoryDynamoRepository resolves users from a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// The user base is small (a few hundred rows), so role lookups go
// through filtered scans instead of a dedicated index.

type DirectoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDirectory = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb *dynamodb.Client) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *DirectoryDynamoRepository) GetUser(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *DirectoryDynamoRepository) UsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error) {
	var users []entities.User

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#role = :role"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
	}
	return users, nil
}

func (r *DirectoryDynamoRepository) ManagersForCoordinator(ctx context.Context, coordinatorID string) ([]entities.User, error) {
	coordinator, err := r.GetUser(ctx, coordinatorID)
	if err != nil {
		return nil, err
	}
	if coordinator.ID == "" {
		return nil, nil
	}

	managers, err := r.UsersByRole(ctx, entities.RoleManager)
	if err != nil {
		return nil, err
	}

	var matched []entities.User
	for _, m := range managers {
		if m.SharesWorkCenter(coordinator) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:          it.ID,
		Username:    it.Username,
		FullName:    it.FullName,
		Email:       it.Email,
		Role:        entities.Role(it.Role),
		WorkCenters: it.WorkCenters,
	}
}
