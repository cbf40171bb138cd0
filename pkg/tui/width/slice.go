// ABOUTME: Column-based slicing of styled text
// ABOUTME: SliceByColumn cuts a visual range while keeping every escape sequence

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// SliceByColumn returns the part of s covering visual columns
// [start, end). Escape sequences are all retained so styling active at
// the cut survives; clusters overlapping the boundary are included.
func SliceByColumn(s string, start, end int) string {
	if end <= start || s == "" {
		return ""
	}

	var b strings.Builder
	col := 0
	state := -1
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			j := seqEnd(s, i)
			b.WriteString(s[i:j])
			i = j
			continue
		}

		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[i:], state)
		w := clusterWidth(cluster)
		if col < end && col+w > start {
			b.WriteString(cluster)
		}
		col += w
		i += len(cluster)
	}
	return b.String()
}
