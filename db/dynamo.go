package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/patterndex/model"
)

// ChecksumIndex is the global secondary index on the Checksum attribute.
const ChecksumIndex = "checksum-index"

type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(endpoint, region, table string) (*DynamoStore, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB session: %w", err)
	}
	return NewDynamoStoreWithClient(dynamodb.New(sess), table), nil
}

func NewDynamoStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) Close() error {
	return nil
}

func toItem(r model.Report) (map[string]*dynamodb.AttributeValue, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding report %s: %w", r.ID, err)
	}
	return map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(r.ID)},
		"Checksum":  {S: aws.String(r.Checksum)},
		"Title":     {S: aws.String(r.Title)},
		"KeyCount":  {N: aws.String(strconv.Itoa(r.KeyCount))},
		"CreatedAt": {N: aws.String(strconv.FormatInt(r.CreatedAt.UnixNano(), 10))},
		"Body":      {S: aws.String(string(body))},
	}, nil
}

func fromItem(item map[string]*dynamodb.AttributeValue) (model.Report, error) {
	var r model.Report
	body, ok := item["Body"]
	if !ok || body.S == nil {
		return r, fmt.Errorf("item without body")
	}
	if err := json.Unmarshal([]byte(*body.S), &r); err != nil {
		return r, fmt.Errorf("decoding report: %w", err)
	}
	return r, nil
}

func fromItems(items []map[string]*dynamodb.AttributeValue) ([]model.Report, error) {
	res := make([]model.Report, 0, len(items))
	for _, item := range items {
		r, err := fromItem(item)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *DynamoStore) SaveReport(ctx context.Context, r model.Report) error {
	item, err := toItem(r)
	if err != nil {
		return err
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB saving %s: %w", r.ID, err)
	}
	return nil
}

func (s *DynamoStore) GetReport(ctx context.Context, id string) (model.Report, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return model.Report{}, fmt.Errorf("error from DynamoDB loading %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return model.Report{}, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return fromItem(out.Item)
}

func (s *DynamoStore) FindByChecksum(ctx context.Context, checksum string) ([]model.Report, error) {
	var items []map[string]*dynamodb.AttributeValue
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		IndexName:              aws.String(ChecksumIndex),
		KeyConditionExpression: aws.String("Checksum = :checksum"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":checksum": {S: aws.String(checksum)},
		},
	}
	for {
		out, err := s.client.QueryWithContext(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("error from DynamoDB querying %s: %w", checksum, err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return fromItems(items)
}

// ListReports scans the table. DynamoDB has no global ordering, so the most
// recent reports are picked after the scan.
func (s *DynamoStore) ListReports(ctx context.Context, limit int) ([]model.Report, error) {
	var items []map[string]*dynamodb.AttributeValue
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	for {
		out, err := s.client.ScanWithContext(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("error from DynamoDB scanning: %w", err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	res, err := fromItems(items)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
