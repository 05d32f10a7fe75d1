package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/postcap"
)

// Permalink tiers. The primary tier is the timestamp anchor, which always
// points at the post itself; the secondary tier takes any status link under
// the root. Both normalize to the canonical form through the URL builder.
var permalinkStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `a[href*="/status/"]:has(time)`, Extract: attr("href"), Validate: statusHref},
	{Tier: postcap.TierSecondary, Selector: `a[href*="/status/"]`, Extract: attr("href"), Validate: statusHref},
}

var statusIDRe = regexp.MustCompile(`/status/([0-9]+)`)

// extractPermalink captures the canonical post URL. When no DOM selector
// yields one, the tertiary path reconstructs it from the author handle and
// any status ID found under the root; the result is never empty, degrading
// to the author profile URL and finally the domain root.
func extractPermalink(s scope, author postcap.Author) (string, postcap.FieldOutcome, []string) {
	value, tier, ok := runChain(s, permalinkStrategies)
	if ok {
		handle, id, _ := postcap.ParseStatusPath(value)
		return postcap.PermalinkURL(handle, id), postcap.FieldOutcome{Field: postcap.FieldPermalink, Tier: tier}, nil
	}

	// Tertiary: no usable status anchor, rebuild from parts.
	if author.Handle != nil {
		if id := anyStatusID(s); id != "" {
			if built := postcap.PermalinkURL(*author.Handle, id); built != "" {
				return built,
					postcap.FieldOutcome{Field: postcap.FieldPermalink, Tier: postcap.TierTertiary},
					[]string{"permalink constructed from handle and status ID"}
			}
		}
	}

	outcome := postcap.FieldOutcome{Field: postcap.FieldPermalink, Tier: postcap.TierNone}
	if author.ProfileURL != "" {
		return author.ProfileURL, outcome, []string{"permalink unavailable, degraded to profile URL"}
	}
	return postcap.DefaultDomain, outcome, []string{"permalink unavailable, degraded to domain root"}
}

// anyStatusID mines any href under the root for a numeric status ID; links
// like "/i/status/123/analytics" carry the ID without a usable handle.
func anyStatusID(s scope) string {
	var id string
	s.Find(`a[href*="/status/"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if m := statusIDRe.FindStringSubmatch(href); m != nil {
			id = m[1]
			return false
		}
		return true
	})
	return id
}

// statusHref accepts hrefs whose path parses as a canonical status
// reference with a well-formed handle and numeric ID.
func statusHref(href string) bool {
	_, _, ok := postcap.ParseStatusPath(href)
	return ok
}
