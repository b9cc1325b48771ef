// Package format derives human-readable strings from raw event fields.
// All functions are pure; inputs are assumed well-formed by the upstream
// parsing boundary.
package format

import (
	"strings"
	"time"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// DescriptionLimit is the default truncation length for compact views,
// counted in grapheme clusters.
const DescriptionLimit = 150

const ellipsis = "..."

// TimeRange renders "Sep 16, 2025 • 1:00 PM - 2:30 PM" for the given
// millisecond timestamps in the given zone.
func TimeRange(startMilli, endMilli int64, loc *time.Location) string {
	start := time.UnixMilli(startMilli).In(loc)
	end := time.UnixMilli(endMilli).In(loc)

	var b strings.Builder
	b.WriteString(start.Format("Jan 2, 2006"))
	b.WriteString(" • ")
	b.WriteString(start.Format("3:04 PM"))
	b.WriteString(" - ")
	b.WriteString(end.Format("3:04 PM"))

	return b.String()
}

// DateHeader renders the group label for a day, e.g.
// "Tuesday, September 16, 2025".
func DateHeader(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// EventType converts an underscore-delimited type value to a display
// label: "tech_talk" -> "Tech Talk".
func EventType(eventType string) string {
	words := strings.Split(eventType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Truncate returns s unchanged when it holds at most max grapheme
// clusters; otherwise the first max clusters, right-trimmed, with an
// ellipsis appended. Counting grapheme clusters rather than bytes or
// runes keeps multi-rune sequences (combining marks, emoji) intact.
func Truncate(s string, max int) string {
	g := graphemes.FromString(s)

	count := 0
	end := 0
	for g.Next() {
		count++
		if count > max {
			return strings.TrimRight(s[:end], " \t\n") + ellipsis
		}
		end += len(g.Value())
	}

	return s
}
