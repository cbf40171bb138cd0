// ABOUTME: VisibleWidth computes display width of styled strings, grapheme-aware
// ABOUTME: Pure-ASCII fast path; non-ASCII measurements memoized in a rotating cache

package width

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheCap = 512

// cache memoizes width measurements in two generations: lookups hit the
// current generation first, then the previous one (promoting on hit).
// When the current generation fills up it becomes the previous one, so
// stale entries age out without per-entry bookkeeping.
type cache struct {
	mu   sync.Mutex
	cap  int
	cur  map[string]int
	prev map[string]int
}

func newCache(capacity int) *cache {
	return &cache{
		cap:  capacity,
		cur:  make(map[string]int, capacity),
		prev: map[string]int{},
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if w, ok := c.cur[key]; ok {
		return w, true
	}
	if w, ok := c.prev[key]; ok {
		c.store(key, w)
		return w, true
	}
	return 0, false
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// store must be called with c.mu held.
func (c *cache) store(key string, value int) {
	if len(c.cur) >= c.cap {
		c.prev = c.cur
		c.cur = make(map[string]int, c.cap)
	}
	c.cur[key] = value
}

var widthCache = newCache(cacheCap)

// VisibleWidth returns the display width of s. ANSI escape sequences
// contribute zero width; grapheme clusters may span more than one cell
// (East Asian characters, emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := measure(StripANSI(s))
	widthCache.put(s, w)
	return w
}

// isPlainASCII reports whether s is printable ASCII (0x20-0x7E) with no
// escape sequences, so its width equals its byte length.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// measure sums grapheme-cluster widths of already-stripped text.
func measure(s string) int {
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// clusterWidth returns the display width of one grapheme cluster, taken
// from its leading rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
