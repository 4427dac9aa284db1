package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"arthub_checkout/internal/domain/entities"
	mock_interfaces "arthub_checkout/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewerEntries() []entities.LogEntry {
	t0 := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	mk := func(id, email string, status entities.LogStatus, offset time.Duration) entities.LogEntry {
		return entities.LogEntry{ID: id, LogEvent: entities.LogEvent{
			Timestamp: t0.Add(offset),
			Status:    status,
			Meta:      map[string]any{"email": email},
		}}
	}
	return []entities.LogEntry{
		mk("1", "Maria@Example.com", entities.LogStatusOK, 0),
		mk("2", "joao@example.com", entities.LogStatusError, time.Minute),
		mk("3", "maria@example.com", entities.LogStatusError, 2*time.Minute),
		{ID: "4", LogEvent: entities.LogEvent{Timestamp: t0.Add(3 * time.Minute), Status: entities.LogStatusDone}},
	}
}

func ids(entries []entities.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterLogs(t *testing.T) {
	cases := []struct {
		name   string
		filter LogFilter
		want   []string
	}{
		{"no filter sorts newest first", LogFilter{}, []string{"4", "3", "2", "1"}},
		{"email substring ignores case", LogFilter{Email: "MARIA"}, []string{"3", "1"}},
		{"status ignores case", LogFilter{Status: "ERROR"}, []string{"3", "2"}},
		{"both", LogFilter{Email: "maria", Status: "error"}, []string{"3"}},
		{"no match", LogFilter{Email: "nobody"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterLogs(viewerEntries(), tc.filter)))
		})
	}
}

func TestLogViewerUseCase_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockILogSource(ctrl)
	gomock.InOrder(
		source.EXPECT().FetchLogs(gomock.Any(), 200).Return(viewerEntries(), nil),
		source.EXPECT().FetchLogs(gomock.Any(), 200).Return(nil, errors.New("connection refused")),
	)

	uc := NewLogViewerUseCase(source, 200)
	uc.nowFunc = func() time.Time { return refNow }

	require.NoError(t, uc.Refresh(context.Background()))
	view := uc.View(LogFilter{})
	assert.True(t, view.Online)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, refNow, view.FetchedAt)

	require.Error(t, uc.Refresh(context.Background()))
	view = uc.View(LogFilter{Status: "ok"})
	assert.False(t, view.Online)
	assert.Equal(t, "connection refused", view.LastError)
	assert.Equal(t, []string{"1"}, ids(view.Entries))
}

func TestLogViewerUseCase_Watch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockILogSource(ctrl)
	source.EXPECT().FetchLogs(gomock.Any(), gomock.Any()).Return(viewerEntries(), nil).MinTimes(2)

	uc := NewLogViewerUseCase(source, 100)
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	renders := 0
	done := make(chan error)
	go func() {
		done <- uc.Watch(ctx, 5*time.Millisecond, LogFilter{Email: "joao"}, func(v LogView) {
			mu.Lock()
			defer mu.Unlock()
			renders++
			if len(v.Entries) != 1 || v.Entries[0].ID != "2" {
				t.Errorf("unexpected view: %+v", v)
			}
		})
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return renders >= 2
	}, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}
