package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// simpleMock keeps items in memory and answers PutItem and single-key Query calls.
type simpleMock struct {
	mu         sync.Mutex
	items      map[string]map[string]types.AttributeValue
	queryCalls int
	queryErr   error
}

func newSimpleMock() *simpleMock {
	return &simpleMock{items: map[string]map[string]types.AttributeValue{}}
}

func strAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (m *simpleMock) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := strAttr(params.Item, "id")
	if id == "" {
		return nil, errors.New("missing key")
	}
	if aws.ToString(params.ConditionExpression) == "attribute_not_exists(#id)" {
		if _, ok := m.items[id]; ok {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	m.items[id] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *simpleMock) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryCalls++
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	key := params.ExpressionAttributeNames["#pk"]
	want := params.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS).Value

	var matched []map[string]types.AttributeValue
	for _, it := range m.items {
		if strAttr(it, key) == want {
			matched = append(matched, it)
		}
	}
	asc := aws.ToBool(params.ScanIndexForward)
	sort.Slice(matched, func(i, j int) bool {
		a, b := strAttr(matched[i], "timestamp"), strAttr(matched[j], "timestamp")
		if asc {
			return a < b
		}
		return a > b
	})

	if params.ExclusiveStartKey != nil {
		after := strAttr(params.ExclusiveStartKey, "id")
		for i, it := range matched {
			if strAttr(it, "id") == after {
				matched = matched[i+1:]
				break
			}
		}
	}

	out := &dyn.QueryOutput{}
	if params.Limit != nil && int(*params.Limit) < len(matched) {
		matched = matched[:*params.Limit]
		last := matched[len(matched)-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": last["id"]}
	}
	out.Items = matched
	return out, nil
}

var repoNow = time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

func newTestRepo(m *simpleMock) *LogEventDynamoRepository {
	r := NewLogEventDynamoRepository(m, "checkout_logs")
	r.nowFunc = func() time.Time { return repoNow }
	return r
}

func logEntry(id, traceID string, ts time.Time) entities.LogEntry {
	return entities.LogEntry{
		ID:         id,
		ReceivedAt: ts.Add(time.Second),
		LogEvent: entities.LogEvent{
			Timestamp: ts,
			TraceID:   traceID,
			SpanID:    traceID + "-root",
			Route:     "/checkout/card",
			Stage:     "submit_order",
			Status:    entities.LogStatusOK,
			Meta:      map[string]any{"email": "ana@example.com", "status_code": 200.0},
		},
	}
}

func TestLogEventDynamoRepository_Create(t *testing.T) {
	m := newSimpleMock()
	r := newTestRepo(m)
	e := logEntry("a1", "t1", repoNow)

	got, err := r.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "a1" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if strAttr(m.items["a1"], "bucket") != "2026-02-03" {
		t.Fatalf("expected day bucket, got %q", strAttr(m.items["a1"], "bucket"))
	}
	if strAttr(m.items["a1"], "timestamp") != "2026-02-03T12:00:00.000Z" {
		t.Fatalf("unexpected timestamp attribute %q", strAttr(m.items["a1"], "timestamp"))
	}

	if _, err := r.Create(context.Background(), e); !errors.Is(err, interfaces.ErrLogEntryExists) {
		t.Fatalf("expected ErrLogEntryExists, got %v", err)
	}
}

func TestLogEventDynamoRepository_ListByTraceID(t *testing.T) {
	m := newSimpleMock()
	r := newTestRepo(m)
	ctx := context.Background()
	for i := 3; i >= 1; i-- {
		if _, err := r.Create(ctx, logEntry(fmt.Sprintf("t1-%d", i), "t1", repoNow.Add(time.Duration(i)*time.Millisecond))); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if _, err := r.Create(ctx, logEntry("other", "t2", repoNow)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := r.ListByTraceID(ctx, "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, e := range got {
		if e.ID != fmt.Sprintf("t1-%d", i+1) {
			t.Fatalf("expected ascending order, got %s at %d", e.ID, i)
		}
	}
	if got[0].Meta["email"] != "ana@example.com" || !got[0].ReceivedAt.Equal(repoNow.Add(time.Second+time.Millisecond)) {
		t.Fatalf("round trip lost fields: %+v", got[0])
	}
}

func TestLogEventDynamoRepository_ListRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first across days", func(t *testing.T) {
		m := newSimpleMock()
		r := newTestRepo(m)
		seed := []entities.LogEntry{
			logEntry("today-1", "t1", repoNow.Add(-2*time.Hour)),
			logEntry("today-2", "t1", repoNow.Add(-time.Hour)),
			logEntry("yesterday", "t2", repoNow.AddDate(0, 0, -1)),
			logEntry("old", "t3", repoNow.AddDate(0, 0, -30)),
		}
		for _, e := range seed {
			if _, err := r.Create(ctx, e); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}

		got, err := r.ListRecent(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := make([]string, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		want := []string{"today-2", "today-1", "yesterday"}
		if fmt.Sprint(ids) != fmt.Sprint(want) {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	})

	t.Run("limit stops paging", func(t *testing.T) {
		m := newSimpleMock()
		r := newTestRepo(m)
		for i := 0; i < 5; i++ {
			if _, err := r.Create(ctx, logEntry(fmt.Sprintf("e%d", i), "t1", repoNow.Add(-time.Duration(i)*time.Minute))); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		got, err := r.ListRecent(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "e0" || got[1].ID != "e1" {
			t.Fatalf("unexpected page: %+v", got)
		}
		if m.queryCalls != 1 {
			t.Fatalf("expected a single query, got %d", m.queryCalls)
		}
	})

	t.Run("query error", func(t *testing.T) {
		m := newSimpleMock()
		m.queryErr = errors.New("throttled")
		r := newTestRepo(m)
		if _, err := r.ListRecent(ctx, 10); err == nil {
			t.Fatalf("expected error")
		}
	})
}
