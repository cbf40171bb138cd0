// ABOUTME: Tests for the fuzzy matching wrapper.

package fuzzy

import "testing"

func TestFind(t *testing.T) {
	t.Parallel()

	items := []string{"mouse press", "key a", "resize", "focus gained"}

	tests := []struct {
		name    string
		pattern string
		wantTop string
		wantLen int
	}{
		{name: "exact substring", pattern: "resize", wantTop: "resize", wantLen: 1},
		{name: "scattered letters", pattern: "mse", wantTop: "mouse press", wantLen: 1},
		{name: "no match", pattern: "zzz", wantLen: 0},
		{name: "empty pattern", pattern: "", wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Find(tt.pattern, items)
			if len(got) != tt.wantLen {
				t.Fatalf("Find(%q) returned %d matches, want %d", tt.pattern, len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].Str != tt.wantTop {
				t.Errorf("best match = %q, want %q", got[0].Str, tt.wantTop)
			}
		})
	}
}

func TestFind_ReportsMatchedIndexes(t *testing.T) {
	t.Parallel()

	got := Find("ka", []string{"key a"})
	if len(got) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(got))
	}
	if len(got[0].MatchedIndexes) != 2 {
		t.Errorf("MatchedIndexes = %v, want 2 positions", got[0].MatchedIndexes)
	}
}
