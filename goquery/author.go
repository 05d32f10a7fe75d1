package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/postcap"
)

// Handle tiers. The primary tier reads the profile link under the author
// header; the fallbacks scan for @-prefixed spans, which survive layouts
// that drop the link entirely.
var handleStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `div[data-testid="User-Name"] a[href^="/"]`, Extract: handleFromHref, Validate: postcap.ValidHandle},
	{Tier: postcap.TierSecondary, Selector: `div[data-testid="User-Name"] span`, Extract: handleFromAtSpan, Validate: postcap.ValidHandle},
	{Tier: postcap.TierTertiary, Selector: `span`, Extract: handleFromAtSpan, Validate: postcap.ValidHandle},
}

// Display name tiers. Names can contain emoji rendered as <img>, so the
// primary extractor goes through the rich text capture.
var displayNameStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `div[data-testid="User-Name"] a[href^="/"]`, Extract: displayNameFromLink},
	{Tier: postcap.TierSecondary, Selector: `div[data-testid="User-Name"] span`, Extract: firstNonHandleSpan},
	{Tier: postcap.TierTertiary, Selector: `div[data-testid="UserName"] span, strong.fullname`, Extract: firstNonHandleSpan},
}

// Avatar tiers.
var avatarStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `div[data-testid^="UserAvatar-Container"] img`, Extract: attr("src"), Validate: absoluteURL},
	{Tier: postcap.TierSecondary, Selector: `img[src*="profile_images"]`, Extract: attr("src"), Validate: absoluteURL},
}

// Profile URL tiers, DOM-based. When both miss, the authority of last
// resort is the pure URL builder fed with the extracted handle.
var profileURLStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `div[data-testid="User-Name"] a[href^="/"]`, Extract: profileHrefURL, Validate: absoluteURL},
	{Tier: postcap.TierSecondary, Selector: `a[href^="/"]:has(img[src*="profile_images"])`, Extract: profileHrefURL, Validate: absoluteURL},
}

// extractAuthor captures the post author's identity. The returned author
// container always exists and its ProfileURL is always non-empty: when no
// DOM selector yields a profile link it is constructed from the handle,
// and failing that it degrades to the domain root with a warning.
func extractAuthor(s scope) (postcap.Author, postcap.FieldOutcome, []string) {
	var warnings []string
	author := postcap.Author{}

	handle, handleTier, handleOK := runChain(s, handleStrategies)
	if handleOK {
		author.Handle = &handle
	}

	name, nameTier, nameOK := runChain(s, displayNameStrategies)
	if nameOK {
		author.DisplayName = &name
	}

	if avatar, _, ok := runChain(s, avatarStrategies); ok {
		author.ProfileImageURL = &avatar
	}

	author.IsVerified = s.Has(`svg[data-testid="icon-verified"]`) ||
		s.Has(`svg[aria-label="Verified account"]`) ||
		s.Has(`[data-testid="verificationBadge"]`)

	profileURL, _, profileOK := runChain(s, profileURLStrategies)
	switch {
	case profileOK:
		author.ProfileURL = profileURL
	case handleOK && postcap.ProfileURL(handle) != "":
		author.ProfileURL = postcap.ProfileURL(handle)
		warnings = append(warnings, "profile URL constructed from handle")
	default:
		author.ProfileURL = postcap.DefaultDomain
		warnings = append(warnings, "profile URL unavailable, degraded to domain root")
	}

	outcome := postcap.FieldOutcome{Field: postcap.FieldAuthor, Tier: postcap.TierNone}
	switch {
	case handleOK:
		outcome.Tier = handleTier
	case nameOK:
		outcome.Tier = nameTier
	}
	return author, outcome, warnings
}

// handleFromHref derives a handle from the first profile link's href.
func handleFromHref(sel *goquery.Selection) string {
	href, _ := sel.First().Attr("href")
	href = strings.TrimPrefix(strings.TrimSpace(href), postcap.DefaultDomain)
	href = strings.TrimPrefix(href, "/")
	if i := strings.IndexAny(href, "/?#"); i >= 0 {
		href = href[:i]
	}
	return href
}

// handleFromAtSpan scans the matched spans for the first @-prefixed one.
func handleFromAtSpan(sel *goquery.Selection) string {
	var handle string
	sel.EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if strings.HasPrefix(text, "@") {
			handle = strings.TrimPrefix(text, "@")
			return false
		}
		return true
	})
	return handle
}

// displayNameFromLink captures the name portion of the author header link,
// preserving emoji. Links that render the @handle are skipped.
func displayNameFromLink(sel *goquery.Selection) string {
	var name string
	sel.EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := captureRichText(link)
		if text == "" || strings.HasPrefix(text, "@") {
			return true
		}
		// The header link may render "Name @handle" as one block.
		if i := strings.Index(text, "@"); i > 0 {
			text = strings.TrimSpace(text[:i])
		}
		name = text
		return false
	})
	return name
}

// firstNonHandleSpan returns the first matched span that is not the
// @handle and not a bare separator.
func firstNonHandleSpan(sel *goquery.Selection) string {
	var name string
	sel.EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if text == "" || strings.HasPrefix(text, "@") || text == "·" {
			return true
		}
		name = text
		return false
	})
	return name
}

// profileHrefURL absolutizes the first matched link's href against the
// canonical domain and accepts only single-segment profile paths.
func profileHrefURL(sel *goquery.Selection) string {
	href, _ := sel.First().Attr("href")
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	handle := strings.TrimPrefix(href, "/")
	if i := strings.IndexAny(handle, "/?#"); i >= 0 {
		handle = handle[:i]
	}
	return postcap.ProfileURL(handle)
}

// absoluteURL is the validator for URL-shaped values.
func absoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
