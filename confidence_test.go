package postcap_test

import (
	"testing"

	"github.com/fwojciec/postcap"
	"github.com/stretchr/testify/assert"
)

func allPrimaryOutcomes() []postcap.FieldOutcome {
	outcomes := make([]postcap.FieldOutcome, 0, len(postcap.FieldWeights))
	for field := range postcap.FieldWeights {
		outcomes = append(outcomes, postcap.FieldOutcome{Field: field, Tier: postcap.TierPrimary})
	}
	return outcomes
}

func TestConfidence_AllPrimaryIsFull(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, postcap.Confidence(allPrimaryOutcomes()), 1e-9)
}

func TestConfidence_EmptyIsZero(t *testing.T) {
	t.Parallel()

	assert.Zero(t, postcap.Confidence(nil))
}

func TestConfidence_MissContributesNothing(t *testing.T) {
	t.Parallel()

	outcomes := []postcap.FieldOutcome{
		{Field: postcap.FieldText, Tier: postcap.TierPrimary},
		{Field: postcap.FieldMetrics, Tier: postcap.TierNone},
	}
	assert.InDelta(t, postcap.FieldWeights[postcap.FieldText], postcap.Confidence(outcomes), 1e-9)
}

// Shifting any single field's successful tier from primary toward tertiary
// must never increase the total score.
func TestConfidence_MonotoneUnderTierDegradation(t *testing.T) {
	t.Parallel()

	ladder := []postcap.Tier{postcap.TierPrimary, postcap.TierSecondary, postcap.TierTertiary, postcap.TierNone}

	for field := range postcap.FieldWeights {
		outcomes := allPrimaryOutcomes()
		idx := -1
		for i, o := range outcomes {
			if o.Field == field {
				idx = i
			}
		}

		prev := postcap.Confidence(outcomes)
		for _, tier := range ladder[1:] {
			outcomes[idx].Tier = tier
			next := postcap.Confidence(outcomes)
			assert.LessOrEqual(t, next, prev, "field %s tier %q", field, tier)
			prev = next
		}
	}
}

func TestConfidence_TierMultiplierValue(t *testing.T) {
	t.Parallel()

	primary := postcap.Confidence([]postcap.FieldOutcome{{Field: postcap.FieldText, Tier: postcap.TierPrimary}})
	secondary := postcap.Confidence([]postcap.FieldOutcome{{Field: postcap.FieldText, Tier: postcap.TierSecondary}})
	tertiary := postcap.Confidence([]postcap.FieldOutcome{{Field: postcap.FieldText, Tier: postcap.TierTertiary}})

	assert.InDelta(t, primary*0.75, secondary, 1e-9)
	assert.InDelta(t, primary*0.5, tertiary, 1e-9)
}

func TestConfidenceBand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "excellent", postcap.ConfidenceBand(0.95))
	assert.Equal(t, "excellent", postcap.ConfidenceBand(0.90))
	assert.Equal(t, "good", postcap.ConfidenceBand(0.75))
	assert.Equal(t, "acceptable", postcap.ConfidenceBand(0.50))
	assert.Equal(t, "poor", postcap.ConfidenceBand(0.49))
	assert.Equal(t, "poor", postcap.ConfidenceBand(0))
}
