package postcap

// Record is the structured output of one extraction pass over one post.
// A Record is a plain JSON-serializable tree; nullable fields are pointers
// so that "undetermined" survives serialization as JSON null, distinct from
// an empty string or zero.
//
// Invariants: URL and Author.ProfileURL are always non-empty (constructed
// from extracted identity fields when no DOM selector yields them), and the
// Author, Metrics, and Media containers always exist even when every
// individual value inside them is null.
type Record struct {
	Text      *string     `json:"text"`
	URL       string      `json:"url"`
	Author    Author      `json:"author"`
	Timestamp *string     `json:"timestamp"`
	Metrics   Metrics     `json:"metrics"`
	Media     []MediaItem `json:"media"`
	LinkCard  *LinkCard   `json:"linkCard"`
	TweetType TweetType   `json:"tweetType"`
	Parent    *Record     `json:"parent"`
	Metadata  Metadata    `json:"metadata"`
}

// Validate returns an error if the record violates its structural
// invariants.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Author.ProfileURL == "" {
		return Errorf(EINVALID, "record author profile URL required")
	}
	if r.Media == nil {
		return Errorf(EINVALID, "record media list must exist")
	}
	if r.Parent != nil {
		if err := r.Parent.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Author describes the identity of a post's author. Handle, when present,
// is the bare username without the leading @.
type Author struct {
	Handle          *string `json:"handle"`
	DisplayName     *string `json:"displayName"`
	IsVerified      bool    `json:"isVerified"`
	ProfileImageURL *string `json:"profileImageUrl"`
	ProfileURL      string  `json:"profileUrl"`
}

// Metrics holds the five engagement counts. Each count is independently
// nullable: nil means the count could not be determined, which is distinct
// from an extracted zero.
type Metrics struct {
	ReplyCount    *int `json:"replyCount"`
	RetweetCount  *int `json:"retweetCount"`
	LikeCount     *int `json:"likeCount"`
	BookmarkCount *int `json:"bookmarkCount"`
	ViewCount     *int `json:"viewCount"`
}

// MediaType tags a media item.
type MediaType string

// Media type tags. The type of an item is decided structurally, by which
// markup pattern matched it, not by an explicit source attribute.
const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaGIF   MediaType = "gif"
)

// MediaItem describes one attached image, video, or animated image.
// URL is always present when the item exists; everything else is optional.
type MediaItem struct {
	Type         MediaType `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	AltText      *string   `json:"altText"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
}

// LinkCard describes a link-preview card. A record carries either a
// complete card or none at all, never a partially null object: URL, Title,
// and Domain are always non-empty when the card exists. Description and
// ImageURL are empty strings when the card renders without them, which is
// a valid card layout, not a partial extraction.
type LinkCard struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Domain      string `json:"domain"`
}

// TweetType holds the post classification flags. The flags are independent
// and not mutually exclusive: a reply can quote, and a repost wraps
// whatever its inner post is.
type TweetType struct {
	IsRetweet bool `json:"isRetweet"`
	IsQuote   bool `json:"isQuote"`
	IsReply   bool `json:"isReply"`
}

// Metadata describes how a record was captured. It is created fresh per
// capture and never mutated afterwards; the engine retains nothing between
// calls.
type Metadata struct {
	// Confidence is the aggregate 0-1 quality score over all field tier
	// outcomes.
	Confidence float64 `json:"confidence"`

	// CapturedAt is the capture wall-clock time in RFC 3339 UTC.
	CapturedAt string `json:"capturedAt"`

	// ExtractionTier is the deepest fallback tier that supplied any
	// successful field.
	ExtractionTier Tier `json:"extractionTier"`

	// Warnings lists per-field degradations encountered during the
	// capture (tier misses and field misses).
	Warnings []string `json:"warnings"`

	// Duration is the wall-clock extraction time in milliseconds.
	Duration float64 `json:"duration"`

	// CaptureID uniquely identifies this capture.
	CaptureID string `json:"captureId"`
}
