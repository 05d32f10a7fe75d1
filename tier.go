package postcap

// Tier identifies one fallback level of a field's selector strategy.
// TierNone marks a field miss: every tier failed.
type Tier string

// Fallback tiers in order of preference.
const (
	TierNone      Tier = ""
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierTertiary  Tier = "tertiary"
)

// rank orders tiers for depth comparison. Higher means deeper fallback.
func (t Tier) rank() int {
	switch t {
	case TierPrimary:
		return 1
	case TierSecondary:
		return 2
	case TierTertiary:
		return 3
	}
	return 0
}

// Deeper reports whether t is a deeper fallback level than other.
// TierNone is never deeper than a successful tier.
func (t Tier) Deeper(other Tier) bool {
	return t.rank() > other.rank()
}

// Field identifies a logical extraction field for confidence weighting.
type Field string

// The logical fields that contribute to a record's confidence score.
const (
	FieldText           Field = "text"
	FieldAuthor         Field = "author"
	FieldPermalink      Field = "permalink"
	FieldTimestamp      Field = "timestamp"
	FieldMetrics        Field = "metrics"
	FieldMedia          Field = "media"
	FieldLinkCard       Field = "link card"
	FieldClassification Field = "classification"
)

// FieldOutcome records whether one field was extracted and which tier
// supplied it. Tier is TierNone when every tier for the field failed.
type FieldOutcome struct {
	Field Field
	Tier  Tier
}

// OK reports whether the field was successfully extracted.
func (o FieldOutcome) OK() bool {
	return o.Tier != TierNone
}
