/*
* Utility functions for formatting output.
 */
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if max < 1 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}

// Number with comma thousands separators.
func Number(n int) string {
	return humanize.Comma(int64(n))
}

// Epoch seconds as an RFC 3339 string in UTC.
func Timestamp(epoch int64) string {
	return Unix(epoch).UTC().Format(time.RFC3339)
}

func plural(n int64, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s ago", n, noun)
	}

	return fmt.Sprintf("%d %ss ago", n, noun)
}
