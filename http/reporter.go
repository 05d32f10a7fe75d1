package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/fwojciec/postcap"
)

// DefaultReportTimeout is the default timeout for report submissions.
const DefaultReportTimeout = 15 * time.Second

// Ensure Reporter implements postcap.Reporter at compile time.
var _ postcap.Reporter = (*Reporter)(nil)

// Reporter submits captured records to a remote analysis service as JSON
// and decodes its response. Submissions are rate limited client-side with
// a token bucket so bursts of captures cannot hammer the service.
type Reporter struct {
	client   *http.Client
	endpoint string
	limiter  *rate.Limiter
	timeout  time.Duration
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithReportTimeout sets the timeout for report submissions.
func WithReportTimeout(d time.Duration) ReporterOption {
	return func(r *Reporter) {
		r.timeout = d
	}
}

// WithRateLimit caps submissions at rps requests per second with a burst
// of 1. Unset means no client-side limiting.
func WithRateLimit(rps float64) ReporterOption {
	return func(r *Reporter) {
		r.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewReporter creates a Reporter that POSTs records to endpoint.
func NewReporter(endpoint string, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		endpoint: endpoint,
		timeout:  DefaultReportTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.client = &http.Client{Timeout: r.timeout}
	return r
}

// Report validates and submits the record, returning the service's
// analysis. Transport failures map to EUNAVAILABLE, rejections to
// EINTERNAL.
func (r *Reporter) Report(ctx context.Context, rec *postcap.Record) (*postcap.Analysis, error) {
	if rec == nil {
		return nil, postcap.Errorf(postcap.EINVALID, "record required")
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return nil, postcap.Errorf(postcap.EINTERNAL, "encoding record: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, postcap.Errorf(postcap.EINVALID, "invalid report endpoint %q: %v", r.endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, postcap.Errorf(postcap.EUNAVAILABLE, "report to %s: %v", r.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, postcap.Errorf(postcap.EINTERNAL, "report rejected with HTTP %d", resp.StatusCode)
	}

	var analysis postcap.Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, postcap.Errorf(postcap.EINTERNAL, "decoding analysis: %v", err)
	}
	return &analysis, nil
}
