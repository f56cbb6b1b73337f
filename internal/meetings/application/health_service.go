package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
)

// HealthService checks the store with a minimal read.
type HealthService struct {
	exec   database.Executor
	logger *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(exec database.Executor, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{exec: exec, logger: logger}
}

// Check reports whether a one-row read of meeting_minutes succeeds. An empty
// table is healthy.
func (s *HealthService) Check(ctx context.Context) (healthy bool) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.ErrorContext(ctx, "health check panicked", "panic", fmt.Sprint(p))
			healthy = false
		}
	}()

	var id string
	err := s.exec.QueryRow(ctx, `SELECT id FROM meeting_minutes LIMIT 1`).Scan(&id)
	if err != nil && !database.IsNoRows(err) {
		s.logger.WarnContext(ctx, "health check failed", "error", err.Error())
		return false
	}
	return true
}
