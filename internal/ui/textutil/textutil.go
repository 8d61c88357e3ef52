// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a string, accounting for unicode characters.
// This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
// The result will be at most maxWidth visual columns wide.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > available {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads a string to the right to reach targetWidth visual columns.
// If the string is already wider than targetWidth, it's truncated.
func PadRightVisual(s string, targetWidth int) string {
	current := VisualWidth(s)
	if current >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-current)
}

// SplitColumns divides total columns between a fixed gutter and n columns,
// giving each column its share of weights and the remainder to the last one.
// Columns never shrink below minWidth.
func SplitColumns(total, gutter, minWidth int, weights ...int) []int {
	if len(weights) == 0 {
		return nil
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	avail := total - gutter*(len(weights)-1)
	widths := make([]int, len(weights))
	used := 0
	for i, w := range weights {
		if i == len(weights)-1 {
			widths[i] = avail - used
		} else if sum > 0 {
			widths[i] = avail * w / sum
		}
		if widths[i] < minWidth {
			widths[i] = minWidth
		}
		used += widths[i]
	}
	return widths
}
