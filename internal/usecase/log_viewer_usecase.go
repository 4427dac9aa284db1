package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"
)

const DefaultPollInterval = 10 * time.Second

// LogFilter narrows the viewer output. Email matches meta.email as a case-insensitive
// substring, Status matches the event status case-insensitively. Empty fields match all.
type LogFilter struct {
	Email  string
	Status string
}

// LogView is one render of the viewer.
type LogView struct {
	Entries   []entities.LogEntry
	Total     int
	Online    bool
	LastError string
	FetchedAt time.Time
}

type ILogViewerUseCase interface {
	Refresh(ctx context.Context) error
	View(filter LogFilter) LogView
	Watch(ctx context.Context, interval time.Duration, filter LogFilter, render func(LogView)) error
}

// LogViewerUseCase polls the log endpoint and keeps the last good page. A failed
// poll flips the online flag and keeps the previous entries on screen.
type LogViewerUseCase struct {
	source  interfaces.ILogSource
	limit   int
	nowFunc func() time.Time

	mu        sync.Mutex
	entries   []entities.LogEntry
	online    bool
	lastErr   string
	fetchedAt time.Time
}

var _ ILogViewerUseCase = (*LogViewerUseCase)(nil)

func NewLogViewerUseCase(source interfaces.ILogSource, limit int) *LogViewerUseCase {
	return &LogViewerUseCase{source: source, limit: limit, nowFunc: time.Now}
}

func (u *LogViewerUseCase) Refresh(ctx context.Context) error {
	entries, err := u.source.FetchLogs(ctx, u.limit)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		if u.online || u.lastErr == "" {
			log.Printf("[logs][viewer] endpoint unreachable err=%v", err)
		}
		u.online = false
		u.lastErr = err.Error()
		return err
	}
	if !u.online && u.lastErr != "" {
		log.Printf("[logs][viewer] endpoint back online entries=%d", len(entries))
	}
	u.entries = entries
	u.online = true
	u.lastErr = ""
	u.fetchedAt = u.nowFunc()
	return nil
}

func (u *LogViewerUseCase) View(filter LogFilter) LogView {
	u.mu.Lock()
	entries := append([]entities.LogEntry(nil), u.entries...)
	view := LogView{Online: u.online, LastError: u.lastErr, FetchedAt: u.fetchedAt, Total: len(u.entries)}
	u.mu.Unlock()

	view.Entries = FilterLogs(entries, filter)
	return view
}

// Watch refreshes and renders immediately, then once per interval until ctx is done.
func (u *LogViewerUseCase) Watch(ctx context.Context, interval time.Duration, filter LogFilter, render func(LogView)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		_ = u.Refresh(ctx)
		render(u.View(filter))
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// FilterLogs applies the filter and sorts by timestamp, newest first.
func FilterLogs(entries []entities.LogEntry, filter LogFilter) []entities.LogEntry {
	email := strings.ToLower(strings.TrimSpace(filter.Email))
	status := strings.TrimSpace(filter.Status)

	out := make([]entities.LogEntry, 0, len(entries))
	for _, e := range entries {
		if email != "" && !strings.Contains(strings.ToLower(e.Email()), email) {
			continue
		}
		if status != "" && !strings.EqualFold(string(e.Status), status) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}
