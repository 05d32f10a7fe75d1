package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/postcap"
	"github.com/fwojciec/postcap/mock"
	pcslog "github.com/fwojciec/postcap/slog"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs capture with confidence and tier", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		rec := &postcap.Record{
			URL: "https://x.com/jack/status/20",
			Metadata: postcap.Metadata{
				Confidence:     0.95,
				ExtractionTier: postcap.TierPrimary,
				Warnings:       []string{},
			},
		}
		inner := &mock.PostExtractor{
			ExtractFn: func(html string) (*postcap.Record, error) {
				return rec, nil
			},
		}

		extractor := pcslog.NewLoggingExtractor(inner, logger)
		got, err := extractor.Extract("<article></article>")

		require.NoError(t, err)
		assert.Equal(t, rec, got)
		output := buf.String()
		assert.Contains(t, output, "capture")
		assert.Contains(t, output, "confidence=0.95")
		assert.Contains(t, output, "band=excellent")
		assert.Contains(t, output, "tier=primary")
		assert.Contains(t, output, "warnings=0")
		assert.Contains(t, output, "quoted=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PostExtractor{
			ExtractFn: func(html string) (*postcap.Record, error) {
				return nil, postcap.Errorf(postcap.EINVALID, "no post container found")
			},
		}

		extractor := pcslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<div></div>")

		require.Error(t, err)
		assert.Equal(t, postcap.EINVALID, postcap.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "capture failed")
		assert.Contains(t, output, "code=invalid")
	})
}
