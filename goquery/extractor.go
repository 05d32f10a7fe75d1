package goquery

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/fwojciec/postcap"
)

// Ensure Extractor implements postcap.PostExtractor at compile time.
var _ postcap.PostExtractor = (*Extractor)(nil)

// Post container selectors, in order of preference. A document matching
// none of them is not a recognizable post and yields no record.
var rootSelectors = []string{
	`article[data-testid="tweet"]`,
	`div[data-testid="tweet"]`,
	`article[role="article"]`,
}

// Extractor assembles records from rendered post markup. Extraction is
// synchronous and holds no state between captures, so a single Extractor is
// safe for concurrent use; every call re-derives everything from the
// markup it is given.
type Extractor struct {
	now   func() time.Time
	newID func() string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithClock overrides the capture clock. Used in tests.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the record for the first post container
// found. Returns EINVALID when the document cannot be parsed or contains no
// recognizable post container; that is the only outcome producing no
// record, and it is an ordinary return value, not a panic.
func (e *Extractor) Extract(html string) (*postcap.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, postcap.Errorf(postcap.EINVALID, "failed to parse HTML: %v", err)
	}

	var root *goquery.Selection
	for _, selector := range rootSelectors {
		if found := doc.Find(selector).First(); found.Length() > 0 {
			root = found
			break
		}
	}
	if root == nil {
		return nil, postcap.Errorf(postcap.EINVALID, "no recognizable post container")
	}

	return e.extractNode(root), nil
}

// extractNode runs the full per-field extraction over one post subtree and
// assembles its record. It calls itself for an embedded quoted subtree;
// termination is guaranteed because the quoted subtree is strictly smaller
// and disjoint from the rest of the post. A field extractor's failure never
// aborts the pass: the field stays null and a warning is appended.
func (e *Extractor) extractNode(root *goquery.Selection) *postcap.Record {
	begin := time.Now()
	quote := findQuote(root)
	s := scope{root: root, exclude: quote}

	var outcomes []postcap.FieldOutcome
	var warnings []string

	collect := func(o postcap.FieldOutcome, extra ...string) {
		outcomes = append(outcomes, o)
		switch o.Tier {
		case postcap.TierNone:
			warnings = append(warnings, fmt.Sprintf("all tiers failed for %s", o.Field))
		case postcap.TierSecondary, postcap.TierTertiary:
			warnings = append(warnings, fmt.Sprintf("%s tier used for %s", o.Tier, o.Field))
		}
		warnings = append(warnings, extra...)
	}

	rec := &postcap.Record{Media: []postcap.MediaItem{}}

	text, textOutcome := extractText(s)
	rec.Text = text
	collect(textOutcome)

	author, authorOutcome, authorWarnings := extractAuthor(s)
	rec.Author = author
	collect(authorOutcome, authorWarnings...)

	timestamp, timestampOutcome := extractTimestamp(s)
	rec.Timestamp = timestamp
	collect(timestampOutcome)

	metrics, metricsOutcome := extractMetrics(s)
	rec.Metrics = metrics
	collect(metricsOutcome)

	media, mediaOutcome := extractMedia(s)
	rec.Media = media
	collect(mediaOutcome)

	card, cardOutcome := extractLinkCard(s)
	rec.LinkCard = card
	collect(cardOutcome)

	permalink, permalinkOutcome, permalinkWarnings := extractPermalink(s, author)
	rec.URL = permalink
	collect(permalinkOutcome, permalinkWarnings...)

	tweetType, classOutcome := classify(s, quote)
	rec.TweetType = tweetType
	collect(classOutcome)

	if quote != nil && quote.Length() > 0 {
		// The quoted post's confidence is computed independently from
		// its own outcomes and never aggregated upward.
		rec.Parent = e.extractNode(quote)
	}

	if warnings == nil {
		warnings = []string{}
	}
	rec.Metadata = postcap.Metadata{
		Confidence:     postcap.Confidence(outcomes),
		CapturedAt:     e.now().UTC().Format(time.RFC3339),
		ExtractionTier: deepestTier(outcomes),
		Warnings:       warnings,
		Duration:       float64(time.Since(begin).Microseconds()) / 1000.0,
		CaptureID:      e.newID(),
	}
	return rec
}

// deepestTier returns the deepest fallback tier any successful field
// needed. With no successful fields at all it reports tertiary, the floor
// of the quality scale.
func deepestTier(outcomes []postcap.FieldOutcome) postcap.Tier {
	deepest := postcap.TierNone
	for _, o := range outcomes {
		if o.OK() && o.Tier.Deeper(deepest) {
			deepest = o.Tier
		}
	}
	if deepest == postcap.TierNone {
		return postcap.TierTertiary
	}
	return deepest
}
