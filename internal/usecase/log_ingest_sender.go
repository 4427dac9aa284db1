package usecase

import (
	"context"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"
)

// LogIngestSender delivers events straight to an in-process log sink.
type LogIngestSender struct {
	ingest ILogIngestUseCase
}

var _ interfaces.ILogSender = (*LogIngestSender)(nil)

func NewLogIngestSender(ingest ILogIngestUseCase) *LogIngestSender {
	return &LogIngestSender{ingest: ingest}
}

func (s *LogIngestSender) Send(ctx context.Context, event entities.LogEvent) error {
	_, err := s.ingest.Ingest(ctx, event)
	return err
}
