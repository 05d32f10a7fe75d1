package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/postcap"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	var lastErr error
	for _, file := range c.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %v\n", file, err)
			lastErr = err
			continue
		}

		rec, err := deps.Extractor.Extract(string(data))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", file, postcap.ErrorMessage(err))
			lastErr = err
			continue
		}

		if rec.Metadata.Confidence < c.MinConfidence {
			fmt.Fprintf(deps.Stderr, "skipped: %s: confidence %.2f below %.2f (%s)\n",
				file, rec.Metadata.Confidence, c.MinConfidence,
				postcap.ConfidenceBand(rec.Metadata.Confidence))
			continue
		}

		if err := writeJSON(deps.Stdout, rec, c.Pretty); err != nil {
			return err
		}
	}
	return lastErr
}
