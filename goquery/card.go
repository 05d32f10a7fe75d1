package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/postcap"
)

// Link card container tiers. The card is structural, so the chain selects
// the container and a dedicated builder assembles the card from it.
var cardContainerStrategies = []struct {
	tier     postcap.Tier
	selector string
}{
	{postcap.TierPrimary, `div[data-testid="card.wrapper"]`},
	{postcap.TierSecondary, `div[data-testid^="card.layout"], a[data-testid^="card.layout"]`},
}

// extractLinkCard captures the link-preview card. The result is either a
// fully populated card or nil, never a partial object. A post without a
// card container is a normal post, counted as a primary-quality
// determination of absence; a container that cannot be assembled into a
// complete card is a field miss.
func extractLinkCard(s scope) (*postcap.LinkCard, postcap.FieldOutcome) {
	for _, strategy := range cardContainerStrategies {
		container := s.Find(strategy.selector).First()
		if container.Length() == 0 {
			continue
		}
		card := buildCard(container)
		if card == nil {
			return nil, postcap.FieldOutcome{Field: postcap.FieldLinkCard, Tier: postcap.TierNone}
		}
		return card, postcap.FieldOutcome{Field: postcap.FieldLinkCard, Tier: strategy.tier}
	}
	return nil, postcap.FieldOutcome{Field: postcap.FieldLinkCard, Tier: postcap.TierPrimary}
}

// buildCard assembles a card from its container. Returns nil unless the
// destination URL, title, and domain can all be determined; description and
// image stay empty when the card layout omits them.
func buildCard(container *goquery.Selection) *postcap.LinkCard {
	href, _ := container.Find("a[href]").First().Attr("href")
	if href == "" {
		if h, ok := container.Attr("href"); ok {
			href = h
		}
	}
	if !absoluteURL(href) {
		return nil
	}

	card := postcap.LinkCard{URL: href}
	if u, err := url.Parse(href); err == nil {
		card.Domain = u.Host
	}

	// The detail section renders the vanity domain, title, and
	// description as sibling spans, in that order.
	var texts []string
	container.Find("span").Each(func(_ int, span *goquery.Selection) {
		text := strings.TrimSpace(span.Text())
		if text == "" {
			return
		}
		for _, prev := range texts {
			if prev == text {
				return
			}
		}
		texts = append(texts, text)
	})
	for _, text := range texts {
		if looksLikeDomain(text) {
			card.Domain = strings.ToLower(text)
			continue
		}
		if card.Title == "" {
			card.Title = text
			continue
		}
		if card.Description == "" {
			card.Description = text
		}
	}

	if img, ok := container.Find("img").First().Attr("src"); ok {
		card.ImageURL = img
	}

	if card.Title == "" || card.Domain == "" {
		return nil
	}
	return &card
}

// looksLikeDomain reports whether a rendered span is the card's vanity
// domain rather than its title or description.
func looksLikeDomain(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	dot := strings.Index(s, ".")
	return dot > 0 && dot < len(s)-1
}
