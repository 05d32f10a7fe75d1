package postcap

import (
	"regexp"
	"strings"
)

// DefaultDomain is the canonical origin used when constructing permalink
// and profile URLs from extracted identity fields.
const DefaultDomain = "https://x.com"

var (
	handleRe  = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)
	tweetIDRe = regexp.MustCompile(`^[0-9]+$`)
)

// ValidHandle reports whether s is a well-formed username: 1-15 characters
// of letters, digits, and underscores, without the leading @.
func ValidHandle(s string) bool {
	return handleRe.MatchString(s)
}

// ValidTweetID reports whether s is a well-formed numeric post ID.
func ValidTweetID(s string) bool {
	return tweetIDRe.MatchString(s)
}

// PermalinkURL constructs the canonical permalink for a post from its
// author handle and numeric ID. Returns the empty string if either input
// fails its format check; callers decide how to degrade.
func PermalinkURL(handle, id string) string {
	if !ValidHandle(handle) || !ValidTweetID(id) {
		return ""
	}
	return DefaultDomain + "/" + handle + "/status/" + id
}

// ProfileURL constructs the canonical profile URL for a handle.
// Returns the empty string if the handle fails its format check.
func ProfileURL(handle string) string {
	if !ValidHandle(handle) {
		return ""
	}
	return DefaultDomain + "/" + handle
}

// ParseStatusPath extracts the handle and post ID from a permalink path
// such as "/someone/status/1234567890123" or a full URL containing it.
// Trailing segments ("/photo/1", "/analytics") and query strings are
// ignored. Returns ok=false when the path does not contain a well-formed
// status reference.
func ParseStatusPath(path string) (handle, id string, ok bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	// Accept absolute URLs by stripping down to the path.
	if i := strings.Index(path, "://"); i >= 0 {
		rest := path[i+3:]
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			return "", "", false
		}
		path = rest[slash:]
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i+1] != "status" {
			continue
		}
		// "/i/status/..." is the platform's internal namespace, not an
		// author handle.
		if parts[i] == "i" {
			continue
		}
		if ValidHandle(parts[i]) && ValidTweetID(parts[i+2]) {
			return parts[i], parts[i+2], true
		}
	}
	return "", "", false
}
