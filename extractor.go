package postcap

// PostExtractor produces one Record from the rendered markup of a post.
type PostExtractor interface {
	// Extract parses html and returns the record for the first post
	// container found, including a nested parent record when the post
	// embeds a quoted post. A single field's failure never aborts the
	// capture; the field becomes null and a warning is recorded in the
	// metadata. Returns EINVALID when html does not contain a
	// recognizable post container. Extract never panics.
	Extract(html string) (*Record, error)
}
