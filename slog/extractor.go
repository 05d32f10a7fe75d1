// Package slog provides logging decorators for postcap interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/postcap"
)

// Ensure LoggingExtractor implements postcap.PostExtractor.
var _ postcap.PostExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PostExtractor with structured logging of each
// capture's quality signal.
type LoggingExtractor struct {
	next   postcap.PostExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next postcap.PostExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*postcap.Record, error) {
	begin := time.Now()
	rec, err := e.next.Extract(html)
	if err != nil {
		e.logger.Warn("capture failed",
			"code", postcap.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("capture",
		"confidence", rec.Metadata.Confidence,
		"band", postcap.ConfidenceBand(rec.Metadata.Confidence),
		"tier", string(rec.Metadata.ExtractionTier),
		"warnings", len(rec.Metadata.Warnings),
		"quoted", rec.Parent != nil,
		"duration", time.Since(begin),
	)
	return rec, nil
}
