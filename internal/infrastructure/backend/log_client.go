package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const (
	logIngestPath = "/api/log"
	logListPath   = "/api/logs"
)

var (
	ErrLogRejected     = errors.New("log ingestion rejected")
	ErrLogsUnavailable = errors.New("logs endpoint unavailable")
)

type okResponse struct {
	OK bool `json:"ok"`
}

type logsResponse struct {
	OK   bool                `json:"ok"`
	Logs []entities.LogEntry `json:"logs"`
}

// LogClient ships events to the ingestion endpoint and reads the aggregated logs.
// It does not log its own failures: the event pipeline decides what to do with them.
type LogClient struct {
	http *resty.Client
}

var (
	_ interfaces.ILogSender = (*LogClient)(nil)
	_ interfaces.ILogSource = (*LogClient)(nil)
)

func NewLogClient(client *resty.Client) *LogClient {
	return &LogClient{http: client}
}

func (c *LogClient) Send(ctx context.Context, event entities.LogEvent) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(event).Post(logIngestPath)
	if err != nil {
		return err
	}
	var out okResponse
	if !resp.IsSuccess() || json.Unmarshal(resp.Body(), &out) != nil || !out.OK {
		return fmt.Errorf("%w: status %d", ErrLogRejected, resp.StatusCode())
	}
	return nil
}

func (c *LogClient) FetchLogs(ctx context.Context, limit int) ([]entities.LogEntry, error) {
	req := c.http.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := req.Get(logListPath)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", ErrLogsUnavailable, resp.StatusCode())
	}
	var out logsResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogsUnavailable, err)
	}
	if !out.OK {
		return nil, fmt.Errorf("%w: ok=false", ErrLogsUnavailable)
	}
	return out.Logs, nil
}
