package mock

import (
	"context"

	"github.com/fwojciec/postcap"
)

var _ postcap.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of postcap.Reporter.
type Reporter struct {
	ReportFn func(ctx context.Context, rec *postcap.Record) (*postcap.Analysis, error)
}

func (r *Reporter) Report(ctx context.Context, rec *postcap.Record) (*postcap.Analysis, error) {
	return r.ReportFn(ctx, rec)
}
