package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/postcap"
)

// Engagement count tiers, one chain per metric. The primary tier reads the
// rendered count inside each action button, the secondary tier falls back
// to the button's accessibility label, and the tertiary tier mines the
// action bar group label, which enumerates every count in one string.
var (
	replyStrategies = []Strategy{
		{Tier: postcap.TierPrimary, Selector: `button[data-testid="reply"] span[data-testid="app-text-transition-container"]`, Extract: firstText, Validate: parseableCount},
		{Tier: postcap.TierSecondary, Selector: `button[data-testid="reply"]`, Extract: attr("aria-label"), Validate: parseableLeadingCount},
		{Tier: postcap.TierTertiary, Selector: `div[role="group"][aria-label]`, Extract: groupLabelCount("repl"), Validate: parseableCount},
	}

	retweetStrategies = []Strategy{
		{Tier: postcap.TierPrimary, Selector: `button[data-testid="retweet"] span[data-testid="app-text-transition-container"], button[data-testid="unretweet"] span[data-testid="app-text-transition-container"]`, Extract: firstText, Validate: parseableCount},
		{Tier: postcap.TierSecondary, Selector: `button[data-testid="retweet"], button[data-testid="unretweet"]`, Extract: attr("aria-label"), Validate: parseableLeadingCount},
		{Tier: postcap.TierTertiary, Selector: `div[role="group"][aria-label]`, Extract: groupLabelCount("repost", "retweet"), Validate: parseableCount},
	}

	likeStrategies = []Strategy{
		{Tier: postcap.TierPrimary, Selector: `button[data-testid="like"] span[data-testid="app-text-transition-container"], button[data-testid="unlike"] span[data-testid="app-text-transition-container"]`, Extract: firstText, Validate: parseableCount},
		{Tier: postcap.TierSecondary, Selector: `button[data-testid="like"], button[data-testid="unlike"]`, Extract: attr("aria-label"), Validate: parseableLeadingCount},
		{Tier: postcap.TierTertiary, Selector: `div[role="group"][aria-label]`, Extract: groupLabelCount("like"), Validate: parseableCount},
	}

	bookmarkStrategies = []Strategy{
		{Tier: postcap.TierPrimary, Selector: `button[data-testid="bookmark"] span[data-testid="app-text-transition-container"], button[data-testid="removeBookmark"] span[data-testid="app-text-transition-container"]`, Extract: firstText, Validate: parseableCount},
		{Tier: postcap.TierSecondary, Selector: `button[data-testid="bookmark"], button[data-testid="removeBookmark"]`, Extract: attr("aria-label"), Validate: parseableLeadingCount},
		{Tier: postcap.TierTertiary, Selector: `div[role="group"][aria-label]`, Extract: groupLabelCount("bookmark"), Validate: parseableCount},
	}

	viewStrategies = []Strategy{
		{Tier: postcap.TierPrimary, Selector: `a[href$="/analytics"] span[data-testid="app-text-transition-container"]`, Extract: firstText, Validate: parseableCount},
		{Tier: postcap.TierSecondary, Selector: `a[href$="/analytics"]`, Extract: attr("aria-label"), Validate: parseableLeadingCount},
		{Tier: postcap.TierTertiary, Selector: `div[role="group"][aria-label]`, Extract: groupLabelCount("view"), Validate: parseableCount},
	}
)

// extractMetrics captures the five engagement counts. The metrics container
// always exists; a count whose every tier failed stays nil, never zero.
// The field outcome reports the deepest tier any count needed, so one
// degraded count is enough to flag the whole field as degraded.
func extractMetrics(s scope) (postcap.Metrics, postcap.FieldOutcome) {
	var m postcap.Metrics
	outcome := postcap.FieldOutcome{Field: postcap.FieldMetrics, Tier: postcap.TierNone}

	capture := func(dst **int, strategies []Strategy) {
		value, tier, ok := runChain(s, strategies)
		if !ok {
			return
		}
		n := countFromValue(value)
		if n == nil {
			return
		}
		*dst = n
		if tier.Deeper(outcome.Tier) {
			outcome.Tier = tier
		}
	}

	capture(&m.ReplyCount, replyStrategies)
	capture(&m.RetweetCount, retweetStrategies)
	capture(&m.LikeCount, likeStrategies)
	capture(&m.BookmarkCount, bookmarkStrategies)
	capture(&m.ViewCount, viewStrategies)

	return m, outcome
}

// countFromValue parses a chain value that is either a bare rendered count
// or a label starting with one.
func countFromValue(value string) *int {
	if n := postcap.ParseCount(value); n != nil {
		return n
	}
	return postcap.LeadingCount(value)
}

// groupLabelCount returns an extraction function that mines the action bar
// group label (e.g. "5 replies, 3 reposts, 100 likes, 1000 views") for the
// segment matching one of the keywords.
func groupLabelCount(keywords ...string) func(*goquery.Selection) string {
	return func(sel *goquery.Selection) string {
		label, _ := sel.First().Attr("aria-label")
		for _, segment := range strings.Split(label, ",") {
			lower := strings.ToLower(segment)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					return strings.TrimSpace(segment)
				}
			}
		}
		return ""
	}
}

func parseableCount(s string) bool {
	return countFromValue(s) != nil
}

func parseableLeadingCount(s string) bool {
	return postcap.LeadingCount(s) != nil
}
