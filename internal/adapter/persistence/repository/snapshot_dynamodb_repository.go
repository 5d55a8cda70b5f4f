package repository

import (
	"context"
	"time"

	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "snapshots"

type snapshotItem struct {
	StorageKey string `dynamodbav:"storage_key"`
	Payload    string `dynamodbav:"payload"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository persists the application record in DynamoDB.
//
// Table requirements:
//   - PK: storage_key (string)
//
// One item per storage key; the payload is the JSON record as a string.

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotRepository = (*SnapshotDynamoRepository)(nil)

// NewSnapshotDynamoRepository uses tableName, or SNAPSHOTS_TABLE when empty.
func NewSnapshotDynamoRepository(ddb *dynamodb.Client, tableName string) *SnapshotDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName)
	}
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *SnapshotDynamoRepository) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            snapshotKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Payload), nil
}

func (r *SnapshotDynamoRepository) Save(ctx context.Context, key string, data []byte) error {
	av, err := attributevalue.MarshalMap(snapshotItem{
		StorageKey: key,
		Payload:    string(data),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SnapshotDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       snapshotKey(key),
	})
	return err
}

func snapshotKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"storage_key": &types.AttributeValueMemberS{Value: key},
	}
}
