package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/postcap"
)

// extractMedia enumerates attached media. An item's type is decided by
// which markup pattern matched it: an <img> inside a photo container is an
// image, a <video> inside a video player is a video, and a <video> inside
// a photo container is an animated image, which the markup renders as a
// looping video. The result is always a non-nil slice; a post with no
// media yields an empty one, counted as a primary-quality determination.
func extractMedia(s scope) ([]postcap.MediaItem, postcap.FieldOutcome) {
	items := []postcap.MediaItem{}
	seen := make(map[string]bool)
	outcome := postcap.FieldOutcome{Field: postcap.FieldMedia, Tier: postcap.TierPrimary}

	add := func(item postcap.MediaItem) {
		if item.URL == "" || seen[item.URL] {
			return
		}
		seen[item.URL] = true
		items = append(items, item)
	}

	players := s.Find(`div[data-testid="videoPlayer"], div[data-testid="videoComponent"]`)
	players.Each(func(_ int, player *goquery.Selection) {
		if item, ok := videoItem(player, postcap.MediaVideo); ok {
			add(item)
		}
	})

	photos := s.Find(`div[data-testid="tweetPhoto"]`)
	photos.Each(func(_ int, photo *goquery.Selection) {
		if photo.Find("video").Length() > 0 {
			// Inside an explicit player the video was already taken
			// as a real video above.
			if withinAny(photo.Nodes[0], players.Nodes) {
				return
			}
			if item, ok := videoItem(photo, postcap.MediaGIF); ok {
				add(item)
			}
			return
		}
		if item, ok := imageItem(photo.Find("img")); ok {
			add(item)
		}
	})

	hadContainers := players.Length() > 0 || photos.Length() > 0
	if !hadContainers {
		// Secondary tier: no structural containers, scan for raw media
		// elements carrying CDN URLs.
		s.Find(`img[src*="twimg.com/media"]`).Each(func(_ int, img *goquery.Selection) {
			if item, ok := imageItem(img); ok {
				add(item)
				outcome.Tier = postcap.TierSecondary
			}
		})
	}

	if hadContainers && len(items) == 0 {
		// Containers matched but nothing could be extracted from them.
		outcome.Tier = postcap.TierNone
	}
	return items, outcome
}

// videoItem builds a media item from a container holding a <video>.
func videoItem(container *goquery.Selection, typ postcap.MediaType) (postcap.MediaItem, bool) {
	video := container.Find("video").First()
	if video.Length() == 0 {
		return postcap.MediaItem{}, false
	}

	src, _ := video.Attr("src")
	if src == "" {
		src, _ = video.Find("source").First().Attr("src")
	}
	poster, _ := video.Attr("poster")
	if src == "" {
		// Streaming players expose only the poster; fall back to it so
		// the item still carries a usable URL.
		src = poster
	}
	if src == "" {
		return postcap.MediaItem{}, false
	}

	item := postcap.MediaItem{Type: typ, URL: src}
	if poster != "" && poster != src {
		item.ThumbnailURL = &poster
	}
	if alt, ok := video.Attr("aria-label"); ok && alt != "" {
		item.AltText = &alt
	}
	item.Width = attrInt(video, "width")
	item.Height = attrInt(video, "height")
	return item, true
}

// imageItem builds a media item from an <img> selection.
func imageItem(img *goquery.Selection) (postcap.MediaItem, bool) {
	img = img.First()
	if img.Length() == 0 {
		return postcap.MediaItem{}, false
	}
	src, _ := img.Attr("src")
	if src == "" {
		return postcap.MediaItem{}, false
	}
	item := postcap.MediaItem{Type: postcap.MediaImage, URL: src}
	if alt, ok := img.Attr("alt"); ok {
		alt = strings.TrimSpace(alt)
		// "Image" is the markup's placeholder, not a description.
		if alt != "" && alt != "Image" {
			item.AltText = &alt
		}
	}
	item.Width = attrInt(img, "width")
	item.Height = attrInt(img, "height")
	return item, true
}

// attrInt reads a numeric attribute, nil when absent or malformed.
func attrInt(sel *goquery.Selection, name string) *int {
	v, ok := sel.Attr(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}
