package postcap

// FieldWeights assigns each logical field's importance in the confidence
// score. Critical fields (text, author identity) weigh more than auxiliary
// fields (link preview, classification). The values are an empirical
// heuristic tuned against observed markup churn, not derived from a formal
// model; they sum to 1.0 so that an all-primary capture scores exactly 1.0.
var FieldWeights = map[Field]float64{
	FieldText:           0.20,
	FieldAuthor:         0.20,
	FieldPermalink:      0.15,
	FieldMetrics:        0.15,
	FieldTimestamp:      0.10,
	FieldMedia:          0.10,
	FieldLinkCard:       0.05,
	FieldClassification: 0.05,
}

// TierMultipliers discount values recovered through fallback tiers.
var TierMultipliers = map[Tier]float64{
	TierPrimary:   1.0,
	TierSecondary: 0.75,
	TierTertiary:  0.5,
}

// Confidence aggregates per-field tier outcomes into a single score in
// [0, 1]. A field contributes its weight times its tier's multiplier when
// extracted, and nothing when missed. The score is a continuous quality
// signal: consumers pick their own acceptance threshold rather than
// receiving a pass/fail verdict.
func Confidence(outcomes []FieldOutcome) float64 {
	var total float64
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		total += FieldWeights[o.Field] * TierMultipliers[o.Tier]
	}
	if total > 1 {
		total = 1
	}
	if total < 0 {
		total = 0
	}
	return total
}

// ConfidenceBand maps a confidence score to its interpretive band. The
// bands are advisory; the engine never enforces them.
func ConfidenceBand(score float64) string {
	switch {
	case score >= 0.90:
		return "excellent"
	case score >= 0.70:
		return "good"
	case score >= 0.50:
		return "acceptable"
	default:
		return "poor"
	}
}
