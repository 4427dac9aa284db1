package repository

import (
	"context"
	"errors"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/infrastructure/database"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const (
	// Fixed width so the range key sorts lexicographically.
	timestampLayout = "2006-01-02T15:04:05.000Z"
	bucketLayout    = "2006-01-02"

	recentLookbackDays = 7
)

// DynamoDBAPI is the subset of the DynamoDB client the log repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type logEntryItem struct {
	ID         string         `dynamodbav:"id"`
	Bucket     string         `dynamodbav:"bucket"`
	Timestamp  string         `dynamodbav:"timestamp"`
	ReceivedAt string         `dynamodbav:"received_at"`
	TraceID    string         `dynamodbav:"trace_id"`
	SpanID     string         `dynamodbav:"span_id"`
	SessionID  string         `dynamodbav:"session_id,omitempty"`
	Route      string         `dynamodbav:"route"`
	Stage      string         `dynamodbav:"stage"`
	Status     string         `dynamodbav:"status"`
	ErrorClass string         `dynamodbav:"error_class,omitempty"`
	ErrorCode  string         `dynamodbav:"error_code,omitempty"`
	Message    string         `dynamodbav:"message,omitempty"`
	Meta       map[string]any `dynamodbav:"meta,omitempty"`
}

// LogEventDynamoRepository persists log entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI trace_id-index: trace_id (hash), timestamp (range)
//   - GSI bucket-index: bucket (hash, UTC day of the event), timestamp (range)
//
// Recent entries are read day by day from the bucket index, newest first.

type LogEventDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

var _ interfaces.ILogEventRepository = (*LogEventDynamoRepository)(nil)

func NewLogEventDynamoRepository(ddb DynamoDBAPI, tableName string) *LogEventDynamoRepository {
	return &LogEventDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

func (r *LogEventDynamoRepository) Create(ctx context.Context, e entities.LogEntry) (entities.LogEntry, error) {
	av, err := attributevalue.MarshalMap(toLogEntryItem(e))
	if err != nil {
		return entities.LogEntry{}, err
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
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return entities.LogEntry{}, interfaces.ErrLogEntryExists
		}
		return entities.LogEntry{}, err
	}
	return e, nil
}

func (r *LogEventDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.LogEntry, error) {
	if limit <= 0 {
		return []entities.LogEntry{}, nil
	}
	out := make([]entities.LogEntry, 0, limit)
	day := r.nowFunc().UTC()
	for i := 0; i < recentLookbackDays && len(out) < limit; i++ {
		entries, err := r.query(ctx, database.BucketIndex, "bucket", day.Format(bucketLayout), false, limit-len(out))
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
		day = day.AddDate(0, 0, -1)
	}
	return out, nil
}

func (r *LogEventDynamoRepository) ListByTraceID(ctx context.Context, traceID string) ([]entities.LogEntry, error) {
	return r.query(ctx, database.TraceIndex, "trace_id", traceID, true, 0)
}

// query pages through one partition of an index. max <= 0 reads it whole.
func (r *LogEventDynamoRepository) query(ctx context.Context, index, key, value string, ascending bool, max int) ([]entities.LogEntry, error) {
	var (
		out      []entities.LogEntry
		startKey map[string]types.AttributeValue
	)
	for {
		in := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#pk = :pk"),
			ExpressionAttributeNames: map[string]string{
				"#pk": key,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: value},
			},
			ScanIndexForward:  aws.Bool(ascending),
			ExclusiveStartKey: startKey,
		}
		if max > 0 {
			in.Limit = aws.Int32(int32(max - len(out)))
		}

		res, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []logEntryItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromLogEntryItem(it))
		}

		if len(res.LastEvaluatedKey) == 0 || (max > 0 && len(out) >= max) {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func toLogEntryItem(e entities.LogEntry) logEntryItem {
	ts := e.Timestamp.UTC()
	return logEntryItem{
		ID:         e.ID,
		Bucket:     ts.Format(bucketLayout),
		Timestamp:  ts.Format(timestampLayout),
		ReceivedAt: e.ReceivedAt.UTC().Format(timestampLayout),
		TraceID:    e.TraceID,
		SpanID:     e.SpanID,
		SessionID:  e.SessionID,
		Route:      e.Route,
		Stage:      e.Stage,
		Status:     string(e.Status),
		ErrorClass: string(e.ErrorClass),
		ErrorCode:  e.ErrorCode,
		Message:    e.Message,
		Meta:       e.Meta,
	}
}

func fromLogEntryItem(it logEntryItem) entities.LogEntry {
	ts, _ := time.Parse(timestampLayout, it.Timestamp)
	received, _ := time.Parse(timestampLayout, it.ReceivedAt)
	return entities.LogEntry{
		ID:         it.ID,
		ReceivedAt: received,
		LogEvent: entities.LogEvent{
			Timestamp:  ts,
			TraceID:    it.TraceID,
			SpanID:     it.SpanID,
			SessionID:  it.SessionID,
			Route:      it.Route,
			Stage:      it.Stage,
			Status:     entities.LogStatus(it.Status),
			ErrorClass: entities.ErrorClass(it.ErrorClass),
			ErrorCode:  it.ErrorCode,
			Message:    it.Message,
			Meta:       it.Meta,
		},
	}
}
