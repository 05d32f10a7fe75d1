package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/postcap"
)

// captureOutput is the per-URL output envelope. Analysis is present only
// when reporting is enabled and the submission succeeded.
type captureOutput struct {
	URL      string            `json:"url"`
	Record   *postcap.Record   `json:"record"`
	Analysis *postcap.Analysis `json:"analysis,omitempty"`
}

// captureResult pairs an output with the error that prevented it.
type captureResult struct {
	output *captureOutput
	err    error
}

// Run executes the capture command. Each URL is fetched and extracted
// independently; one failed capture never aborts the rest.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	fetcher, err := deps.NewFetcher()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer fetcher.Close()

	var reporter postcap.Reporter
	if c.Report != "" {
		reporter = deps.NewReporter(c.Report)
	}

	// Duplicate URLs within one invocation are captured once.
	marker := postcap.NewMarkerSet()
	results := make([]*captureResult, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, url := range c.URLs {
		if !marker.Mark(url) {
			continue
		}
		g.Go(func() error {
			html, err := fetcher.Fetch(ctx, url)
			if err != nil {
				results[i] = &captureResult{err: err}
				return nil
			}

			rec, err := deps.Extractor.Extract(html)
			if err != nil {
				results[i] = &captureResult{err: err}
				return nil
			}

			out := &captureOutput{URL: url, Record: rec}
			if reporter != nil {
				analysis, err := reporter.Report(ctx, rec)
				if err != nil {
					results[i] = &captureResult{output: out, err: err}
					return nil
				}
				out.Analysis = analysis
			}
			results[i] = &captureResult{output: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failures int
	var captured int
	for i, res := range results {
		if res == nil {
			continue // duplicate URL
		}
		if res.err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.URLs[i], postcap.ErrorMessage(res.err))
			failures++
			if res.output == nil {
				continue
			}
		}
		rec := res.output.Record
		if rec.Metadata.Confidence < c.MinConfidence {
			fmt.Fprintf(deps.Stderr, "skipped: %s: confidence %.2f below %.2f (%s)\n",
				c.URLs[i], rec.Metadata.Confidence, c.MinConfidence,
				postcap.ConfidenceBand(rec.Metadata.Confidence))
			continue
		}
		if err := writeJSON(deps.Stdout, res.output, c.Pretty); err != nil {
			return err
		}
		captured++
	}

	if captured == 0 && failures > 0 {
		return postcap.Errorf(postcap.EINTERNAL, "all %d captures failed", failures)
	}
	return nil
}
