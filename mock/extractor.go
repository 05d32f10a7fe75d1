package mock

import "github.com/fwojciec/postcap"

var _ postcap.PostExtractor = (*PostExtractor)(nil)

// PostExtractor is a mock implementation of postcap.PostExtractor.
type PostExtractor struct {
	ExtractFn func(html string) (*postcap.Record, error)
}

func (e *PostExtractor) Extract(html string) (*postcap.Record, error) {
	return e.ExtractFn(html)
}
