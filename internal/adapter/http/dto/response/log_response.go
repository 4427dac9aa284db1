package response

import "arthub_checkout/internal/domain/entities"

type LogIngestResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// LogsResponse is the body of GET /api/logs. Entries keep the LogEntry json shape
// the log viewer decodes.
type LogsResponse struct {
	OK   bool                `json:"ok"`
	Logs []entities.LogEntry `json:"logs"`
}

func FromLogEntries(entries []entities.LogEntry) LogsResponse {
	if entries == nil {
		entries = []entities.LogEntry{}
	}
	return LogsResponse{OK: true, Logs: entries}
}
