package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/postcap"
)

// Post body tiers. The primary data-testid hook is the stable contract;
// the secondary tier leans on the lang attribute the body container always
// carries; the tertiary tier covers legacy markup.
var textStrategies = []Strategy{
	{Tier: postcap.TierPrimary, Selector: `div[data-testid="tweetText"]`, Extract: captureRichText},
	{Tier: postcap.TierSecondary, Selector: `div[lang][dir]`, Extract: captureRichText},
	{Tier: postcap.TierTertiary, Selector: `div.tweet-text, p.tweet-text`, Extract: captureRichText},
}

// extractText captures the post body. Returns nil on a field miss.
func extractText(s scope) (*string, postcap.FieldOutcome) {
	value, tier, ok := runChain(s, textStrategies)
	if !ok {
		return nil, postcap.FieldOutcome{Field: postcap.FieldText, Tier: postcap.TierNone}
	}
	return &value, postcap.FieldOutcome{Field: postcap.FieldText, Tier: tier}
}

// captureRichText reads the body of the first matched element preserving
// what the DOM text API would lose: emoji rendered as <img> elements are
// recovered from their alt attribute, <br> becomes a newline, and text
// nodes are copied byte-for-byte so RTL scripts and combining sequences
// survive intact.
func captureRichText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "img":
				for _, a := range n.Attr {
					if a.Key == "alt" {
						b.WriteString(a.Val)
					}
				}
				return
			case "br":
				b.WriteString("\n")
				return
			case "script", "style":
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for _, n := range sel.First().Nodes {
		walk(n)
	}
	return strings.TrimSpace(b.String())
}
