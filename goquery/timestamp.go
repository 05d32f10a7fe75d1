package goquery

import (
	"time"

	"github.com/fwojciec/postcap"
)

// Timestamp tiers. The datetime attribute of the <time> element is machine
// readable and survives most redesigns; the tertiary tier parses the
// human-readable label as a last resort.
var timestampStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `a[href*="/status/"] time[datetime]`, Extract: attr("datetime"), Validate: parseableTimestamp},
	{Tier: postcap.TierSecondary, Selector: `time[datetime]`, Extract: attr("datetime"), Validate: parseableTimestamp},
	{Tier: postcap.TierTertiary, Selector: `time`, Extract: firstText, Validate: parseableTimestamp},
}

// timestampLayouts are the formats the markup has been observed to carry:
// RFC 3339 with and without sub-second precision in the datetime attribute,
// and the rendered label for the tertiary tier.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"3:04 PM · Jan 2, 2006",
	"Jan 2, 2006",
}

// extractTimestamp captures the post timestamp normalized to RFC 3339 UTC.
// Returns nil on a field miss.
func extractTimestamp(s scope) (*string, postcap.FieldOutcome) {
	value, tier, ok := runChain(s, timestampStrategies)
	if !ok {
		return nil, postcap.FieldOutcome{Field: postcap.FieldTimestamp, Tier: postcap.TierNone}
	}
	normalized := normalizeTimestamp(value)
	if normalized == "" {
		return nil, postcap.FieldOutcome{Field: postcap.FieldTimestamp, Tier: postcap.TierNone}
	}
	return &normalized, postcap.FieldOutcome{Field: postcap.FieldTimestamp, Tier: tier}
}

// normalizeTimestamp converts a raw timestamp string to RFC 3339 UTC.
// Returns the empty string when no known layout matches.
func normalizeTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}

func parseableTimestamp(raw string) bool {
	return normalizeTimestamp(raw) != ""
}
