package postcap

import (
	"math"
	"strconv"
	"strings"
)

// ParseCount parses an engagement count as rendered in a post's action bar.
// It accepts plain integers ("482"), grouped digits ("1,234"), and
// abbreviated forms ("1.2K", "3M", "1.1B", case-insensitive). Returns nil
// when the text does not describe a count, so that a missing metric stays
// "undetermined" rather than becoming zero.
func ParseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Digit grouping varies by locale: commas, thin spaces, NBSP.
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', ' ', ' ':
			return -1
		}
		return r
	}, s)
	if clean == "" {
		return nil
	}

	multiplier := 1.0
	switch clean[len(clean)-1] {
	case 'K', 'k':
		multiplier = 1_000
		clean = clean[:len(clean)-1]
	case 'M', 'm':
		multiplier = 1_000_000
		clean = clean[:len(clean)-1]
	case 'B', 'b':
		multiplier = 1_000_000_000
		clean = clean[:len(clean)-1]
	}

	if multiplier == 1 {
		n, err := strconv.Atoi(clean)
		if err != nil || n < 0 {
			return nil
		}
		return &n
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || f < 0 {
		return nil
	}
	// Round the product: values like 32.3 have no exact float
	// representation and truncation would land one unit low.
	n := int(math.Round(f * multiplier))
	return &n
}

// LeadingCount parses the leading integer of an accessibility label such as
// "1234 Replies. Reply". Returns nil when the label does not start with a
// count.
func LeadingCount(label string) *int {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) == 0 {
		return nil
	}
	return ParseCount(fields[0])
}
