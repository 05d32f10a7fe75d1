package postcap

import "context"

// Analysis is a remote service's response to a reported capture.
type Analysis struct {
	Verdict string  `json:"verdict"`
	Score   float64 `json:"score"`
	Summary string  `json:"summary"`
}

// Reporter submits captured records to a remote analysis service and
// returns its response. The engine itself performs no serialization or
// transmission; implementations own the wire format and transport policy.
type Reporter interface {
	// Report validates and submits the record.
	// Returns EUNAVAILABLE when the service cannot be reached and
	// EINTERNAL when it rejects the submission.
	Report(ctx context.Context, rec *Record) (*Analysis, error)
}
