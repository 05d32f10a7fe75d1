// Package goquery implements the postcap extraction engine using CSS
// selectors. Each field is extracted through an ordered chain of selector
// strategies; the tier tables live next to their field extractors and are
// the unit of change when the underlying markup shifts.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/postcap"
)

// Strategy describes one way to pull a value out of a post subtree: a CSS
// match expression, an extraction function, and an optional validator.
// Strategies are static configuration, defined once per field and reused
// across all captures; they hold no runtime state.
type Strategy struct {
	Tier     postcap.Tier
	Selector string
	Extract  func(*goquery.Selection) string
	Validate func(string) bool
}

// scope is the search root for one post's field extractors. exclude holds
// the embedded quoted subtree, if any, so that the outer post's extractors
// never claim values that belong to the quoted post.
type scope struct {
	root    *goquery.Selection
	exclude *goquery.Selection
}

// Find returns descendants of the root matching selector, minus anything
// inside the excluded quoted subtree.
func (s scope) Find(selector string) *goquery.Selection {
	found := s.root.Find(selector)
	if s.exclude == nil || len(s.exclude.Nodes) == 0 {
		return found
	}
	return found.FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return !withinAny(sel.Nodes[0], s.exclude.Nodes)
	})
}

// Has reports whether at least one element in scope matches selector.
func (s scope) Has(selector string) bool {
	return s.Find(selector).Length() > 0
}

// withinAny reports whether n is one of the given nodes or a descendant of
// one of them.
func withinAny(n *html.Node, nodes []*html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		for _, node := range nodes {
			if p == node {
				return true
			}
		}
	}
	return false
}

// runChain tries strategies strictly in order against the scope and returns
// the first extracted, validated value along with the tier that produced
// it. A strategy succeeds only if its selector matches at least one
// element, its extraction function returns a non-empty value, and its
// validator (when set) accepts that value. Failed strategies are never
// retried. When every strategy fails the result is ("", TierNone, false);
// runChain converts internal faults to misses and never panics.
func runChain(s scope, strategies []Strategy) (string, postcap.Tier, bool) {
	for _, st := range strategies {
		matched := s.Find(st.Selector)
		if matched.Length() == 0 {
			continue
		}
		value := safeExtract(st.Extract, matched)
		if value == "" {
			continue
		}
		if st.Validate != nil && !st.Validate(value) {
			continue
		}
		return value, st.Tier, true
	}
	return "", postcap.TierNone, false
}

// safeExtract runs fn over the matched selection, converting any panic into
// a miss so that a malformed attribute degrades to the next tier instead of
// aborting the capture.
func safeExtract(fn func(*goquery.Selection) string, matched *goquery.Selection) (value string) {
	defer func() {
		if recover() != nil {
			value = ""
		}
	}()
	return fn(matched)
}

// firstText extracts the trimmed text of the first matched element.
func firstText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.First().Text())
}

// attr returns an extraction function reading the named attribute of the
// first matched element.
func attr(name string) func(*goquery.Selection) string {
	return func(sel *goquery.Selection) string {
		v, _ := sel.First().Attr(name)
		return strings.TrimSpace(v)
	}
}
