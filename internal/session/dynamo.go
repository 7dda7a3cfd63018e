package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const skSession = "SESSION"

// dynamodbAPI is the minimal DynamoDB interface required by DynamoStore.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoStore keeps one session item per owner in a DynamoDB table.
// Items carry a "ttl" attribute so the table's TTL feature can expire
// sessions that were abandoned.
type DynamoStore struct {
	api       dynamodbAPI
	tableName string
	owner     string
	ttl       time.Duration
}

// NewDynamoStore creates a DynamoDB backed SessionStore.
func NewDynamoStore(api dynamodbAPI, tableName, owner string, ttl time.Duration) (*DynamoStore, error) {
	if api == nil {
		return nil, errors.New("session: dynamodb api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("session: table name must not be empty")
	}
	if strings.TrimSpace(owner) == "" {
		return nil, errors.New("session: owner must not be empty")
	}
	return &DynamoStore{api: api, tableName: tableName, owner: owner, ttl: ttl}, nil
}

func (d *DynamoStore) key() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "USER#" + d.owner},
		"SK": &types.AttributeValueMemberS{Value: skSession},
	}
}

func (d *DynamoStore) Save(ctx context.Context, s *Session) error {
	item := d.key()
	item["id"] = &types.AttributeValueMemberS{Value: s.ID}
	item["start_time"] = &types.AttributeValueMemberS{Value: s.StartTime.UTC().Format(time.RFC3339Nano)}
	item["last_seen"] = &types.AttributeValueMemberS{Value: s.LastSeen.UTC().Format(time.RFC3339Nano)}
	item["rerolls"] = &types.AttributeValueMemberN{Value: strconv.Itoa(s.Rerolls)}
	if i, ok := s.Selection(); ok {
		item["tip_index"] = &types.AttributeValueMemberN{Value: strconv.Itoa(i)}
	}
	if d.ttl > 0 {
		item["ttl"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(s.LastSeen.Add(d.ttl).Unix(), 10)}
	}

	_, err := d.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to persist session state: %w", err)
	}
	return nil
}

func (d *DynamoStore) Load(ctx context.Context) (*Session, error) {
	out, err := d.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            d.key(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read session state: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, ErrNoSession
	}
	s, err := itemToSession(out.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session state: %w", err)
	}
	return s, nil
}

func (d *DynamoStore) Delete(ctx context.Context) error {
	_, err := d.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key:       d.key(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete session state: %w", err)
	}
	return nil
}

func itemToSession(item map[string]types.AttributeValue) (*Session, error) {
	var s Session
	var err error

	if s.ID, err = stringAttr(item, "id"); err != nil {
		return nil, err
	}
	if s.StartTime, err = timeAttr(item, "start_time"); err != nil {
		return nil, err
	}
	if s.LastSeen, err = timeAttr(item, "last_seen"); err != nil {
		return nil, err
	}
	if _, ok := item["rerolls"]; ok {
		if s.Rerolls, err = intAttr(item, "rerolls"); err != nil {
			return nil, err
		}
	}
	if _, ok := item["tip_index"]; ok {
		i, err := intAttr(item, "tip_index")
		if err != nil {
			return nil, err
		}
		s.Select(i)
	}
	return &s, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("attribute %q missing or not a string", name)
	}
	return v.Value, nil
}

func intAttr(item map[string]types.AttributeValue, name string) (int, error) {
	v, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("attribute %q missing or not a number", name)
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return n, nil
}

func timeAttr(item map[string]types.AttributeValue, name string) (time.Time, error) {
	raw, err := stringAttr(item, name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("attribute %q: %w", name, err)
	}
	return t, nil
}
