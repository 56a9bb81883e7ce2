package volby

import (
	"strconv"
	"strings"
)

// ParseNumber converts locale-formatted numeric text like "1 234" or
// "1 234" to an integer. The source pads numbers with regular and
// non-breaking spaces and occasionally other stray characters; everything
// that is not a digit or a minus sign is discarded before parsing.
// Empty or malformed input degrades to 0, never to an error.
func ParseNumber(text string) int {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}
