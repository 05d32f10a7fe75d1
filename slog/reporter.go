package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postcap"
)

// Ensure LoggingReporter implements postcap.Reporter.
var _ postcap.Reporter = (*LoggingReporter)(nil)

// LoggingReporter wraps a Reporter with logging of submission outcomes.
type LoggingReporter struct {
	next   postcap.Reporter
	logger *slog.Logger
}

// NewLoggingReporter creates a new LoggingReporter.
func NewLoggingReporter(next postcap.Reporter, logger *slog.Logger) *LoggingReporter {
	return &LoggingReporter{next: next, logger: logger}
}

// Report delegates to the wrapped reporter and logs the outcome.
func (r *LoggingReporter) Report(ctx context.Context, rec *postcap.Record) (*postcap.Analysis, error) {
	begin := time.Now()
	analysis, err := r.next.Report(ctx, rec)
	if err != nil {
		r.logger.Warn("report failed",
			"url", rec.URL,
			"code", postcap.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Info("report",
		"url", rec.URL,
		"verdict", analysis.Verdict,
		"duration", time.Since(begin),
	)
	return analysis, nil
}
