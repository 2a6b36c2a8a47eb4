package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedLineHeight = 14
	feedPanelWidth = 330
)

// FeedEntry is one line of the rally feed.
type FeedEntry struct {
	Tick int
	Text string
}

// RallyFeed is a ring buffer of recent match events shown on screen with Tab.
type RallyFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewRallyFeed creates a feed that keeps the last capacity entries.
func NewRallyFeed(capacity int) *RallyFeed {
	if capacity < 1 {
		capacity = 1
	}
	return &RallyFeed{entries: make([]FeedEntry, capacity)}
}

// Add appends an entry, dropping the oldest when full.
func (f *RallyFeed) Add(tick int, text string) {
	n := len(f.entries)
	f.entries[f.head] = FeedEntry{Tick: tick, Text: text}
	f.head = (f.head + 1) % n
	if f.count < n {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *RallyFeed) Recent() []FeedEntry {
	n := len(f.entries)
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+n)%n]
	}
	return out
}

// Draw renders the feed as a translucent panel with its top-left at (x, y).
func (f *RallyFeed) Draw(screen *ebiten.Image, x, y int) {
	entries := f.Recent()
	h := float32(len(entries)*feedLineHeight + 8)
	vector.FillRect(screen, float32(x), float32(y), feedPanelWidth, h, color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), feedPanelWidth, h, 1, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, e := range entries {
		ebitenutil.DebugPrintAt(screen, e.Text, x+6, y+4+i*feedLineHeight)
	}
}
