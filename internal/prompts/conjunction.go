package prompts

import (
	"fmt"
	"strings"
)

// JoinNaturally joins items into an English list: "a", "a and b", "a, b, and c".
// An empty list returns ErrInvalidArgument.
func JoinNaturally(items []string) (string, error) {
	switch n := len(items); n {
	case 0:
		return "", fmt.Errorf("join naturally: empty list: %w", ErrInvalidArgument)
	case 1:
		return items[0], nil
	case 2:
		return items[0] + " and " + items[1], nil
	default:
		return strings.Join(items[:n-1], ", ") + ", and " + items[n-1], nil
	}
}
