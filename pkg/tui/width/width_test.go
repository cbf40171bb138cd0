// ABOUTME: Tests for visible width measurement across ASCII, ANSI, CJK, and emoji.

package width

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "plain ascii", in: "hello", want: 5},
		{name: "spaces", in: "a b", want: 3},
		{name: "sgr contributes nothing", in: "\x1b[31mred\x1b[0m", want: 3},
		{name: "osc contributes nothing", in: "\x1b]0;title\x07x", want: 1},
		{name: "cjk double width", in: "日本", want: 4},
		{name: "mixed ascii and cjk", in: "go言語", want: 6},
		{name: "emoji double width", in: "🎉", want: 2},
		{name: "styled cjk", in: "\x1b[1m日\x1b[0m", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := VisibleWidth(tt.in); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth_CacheStable(t *testing.T) {
	t.Parallel()

	// Same non-ASCII input repeatedly must measure identically.
	const in = "日本語テキスト"
	first := VisibleWidth(in)
	for i := 0; i < 10; i++ {
		if got := VisibleWidth(in); got != first {
			t.Fatalf("VisibleWidth(%q) = %d on repeat, want %d", in, got, first)
		}
	}
}

func TestCache_GenerationRotation(t *testing.T) {
	t.Parallel()

	c := newCache(2)
	c.put("a", 1)
	c.put("b", 2)
	c.put("c", 3) // rotates; a and b move to the previous generation

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if got, ok := c.get(key); !ok || got != want {
			t.Errorf("get(%q) = (%d, %v), want (%d, true)", key, got, ok, want)
		}
	}
}
