package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/postcap"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor postcap.PostExtractor

	// NewFetcher constructs the browser fetcher lazily so that commands
	// that never fetch do not launch one.
	NewFetcher func() (postcap.Fetcher, error)

	// NewReporter constructs a reporter for the given endpoint.
	NewReporter func(endpoint string) postcap.Reporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse   ParseCmd   `cmd:"" help:"Extract records from saved post HTML files"`
	Capture CaptureCmd `cmd:"" help:"Fetch post URLs in a headless browser and extract records"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files         []string `arg:"" help:"Saved post HTML files"`
	Pretty        bool     `short:"p" help:"Indent JSON output"`
	MinConfidence float64  `name:"min-confidence" default:"0" help:"Skip records scoring below this confidence"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URLs          []string `arg:"" help:"Post URLs to capture"`
	Concurrency   int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Report        string   `help:"POST each record to this analysis endpoint"`
	Pretty        bool     `short:"p" help:"Indent JSON output"`
	MinConfidence float64  `name:"min-confidence" default:"0" help:"Skip records scoring below this confidence"`
}

// writeJSON encodes v to w, optionally indented.
func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
