package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/postcap"
)

// Quoted subtree selectors, in order of preference. The structural
// fallbacks match the clickable preview block that wraps the quoted post's
// own body and author header.
var quoteSelectors = []string{
	`div[data-testid="quoteTweet"]`,
	`div[role="link"]:has(div[data-testid="tweetText"])`,
	`div[role="link"]:has(div[data-testid="User-Name"])`,
}

// findQuote locates the embedded quoted-post subtree under root, or nil.
// The quoted subtree is strictly smaller than and disjoint from the outer
// post's own content, which is what guarantees the recursion over it
// terminates.
func findQuote(root *goquery.Selection) *goquery.Selection {
	for _, selector := range quoteSelectors {
		if found := root.Find(selector).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// classify determines the post's classification flags by structural
// inspection. The flags are independent; classification itself cannot fail,
// so it always counts as a primary-quality outcome.
func classify(s scope, quote *goquery.Selection) (postcap.TweetType, postcap.FieldOutcome) {
	t := postcap.TweetType{
		IsRetweet: isRetweet(s),
		IsQuote:   quote != nil && quote.Length() > 0,
		IsReply:   isReply(s),
	}
	return t, postcap.FieldOutcome{Field: postcap.FieldClassification, Tier: postcap.TierPrimary}
}

// isRetweet checks for the social context header ("X reposted"). The
// header also announces pins, so the rendered text is inspected.
func isRetweet(s scope) bool {
	verdict := false
	s.Find(`span[data-testid="socialContext"], div[data-testid="socialContext"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(sel.Text())
		if strings.Contains(text, "repost") || strings.Contains(text, "retweet") {
			verdict = true
			return false
		}
		return true
	})
	return verdict
}

// isReply checks for the reply context block ("Replying to @someone").
// The fallback scan stays structural: the post body container, everything
// inside it, and everything wrapping it are excluded, so a post whose own
// text happens to start with "Replying to" is not misclassified.
func isReply(s scope) bool {
	if s.Has(`div[data-testid="inReplyTo"]`) {
		return true
	}
	bodies := s.Find(`div[data-testid="tweetText"], div[lang][dir], div.tweet-text, p.tweet-text`)
	verdict := false
	s.Find("div, span").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		n := sel.Nodes[0]
		if withinAny(n, bodies.Nodes) {
			return true
		}
		for _, body := range bodies.Nodes {
			// Ancestors of the body render the body text too.
			if withinAny(body, sel.Nodes) {
				return true
			}
		}
		text := strings.TrimSpace(sel.Text())
		if strings.HasPrefix(text, "Replying to") {
			verdict = true
			return false
		}
		return true
	})
	return verdict
}
