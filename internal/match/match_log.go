package match

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded event of a headless match.
type LogEntry struct {
	Tick     int
	Side     string  // "left", "right" or "--"
	Category string  // ball, paddle, score, state
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // ball speed, or the scorer's points for score entries
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] left  paddle  paddle_hit      face rally=3
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-5s %-7s %-15s %s",
		e.Tick, e.Side, e.Category, e.Key, e.Value)
}

// MatchLog collects structured entries while a Sim runs. It is unbounded and
// meant to be filtered by tests and reports.
type MatchLog struct {
	entries []LogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. When verbose is true the ball position is
// also recorded every tick.
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records a new entry.
func (ml *MatchLog) Add(tick int, side, category, key, value string, numVal float64) {
	ml.entries = append(ml.entries, LogEntry{
		Tick:     tick,
		Side:     side,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only in verbose mode.
func (ml *MatchLog) AddVerbose(tick int, side, category, key, value string, numVal float64) {
	if !ml.verbose {
		return
	}
	ml.Add(tick, side, category, key, value, numVal)
}

// Record translates tick events into entries.
func (ml *MatchLog) Record(events []Event) {
	for _, e := range events {
		side := "--"
		if e.Side != SideNone {
			side = e.Side.String()
		}
		switch e.Kind {
		case EventWallBounce:
			ml.Add(e.Tick, side, "ball", e.Kind.String(), e.Wall.String(), e.Speed)
		case EventServe:
			ml.Add(e.Tick, side, "ball", e.Kind.String(), fmt.Sprintf("speed=%.2f", e.Speed), e.Speed)
		case EventPaddleHit, EventEdgeHit:
			ml.Add(e.Tick, side, "paddle", e.Kind.String(), fmt.Sprintf("%s rally=%d", e.Contact, e.Rally), e.Speed)
		case EventScore:
			ml.Add(e.Tick, side, "score", e.Kind.String(), fmt.Sprintf("%s rally=%d", e.Score, e.Rally), float64(e.Score.Of(e.Side)))
		case EventGameOver, EventRestart:
			ml.Add(e.Tick, side, "state", e.Kind.String(), e.Score.String(), 0)
		}
	}
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []LogEntry {
	return ml.entries
}

// Filter returns entries matching category and key. An empty string matches
// anything.
func (ml *MatchLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSide returns entries attributed to side ("left", "right", "--").
func (ml *MatchLog) FilterSide(side string) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if e.Side == side {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (ml *MatchLog) FilterTickRange(fromTick, toTick int) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match category and key.
func (ml *MatchLog) CountCategory(category, key string) int {
	return len(ml.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (ml *MatchLog) LastOf(category, key string) (LogEntry, bool) {
	entries := ml.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether any entry matches category, key and contains
// valueSubstr.
func (ml *MatchLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the whole log, one entry per line, for t.Log output.
func (ml *MatchLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns the log restricted to a tick range.
func (ml *MatchLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range ml.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary is a short description of where the match stands.
func (ml *MatchLog) Summary(s *State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d ---\n", s.Tick)
	fmt.Fprintf(&sb, "Phase: %s  Score: %s", s.Phase, s.Score)
	if s.Phase == PhaseGameOver {
		fmt.Fprintf(&sb, "  (%s)", s.ResultText())
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Contacts: face=%d edge=%d  Walls: %d  Serves: %d\n",
		ml.CountCategory("paddle", EventPaddleHit.String()),
		ml.CountCategory("paddle", EventEdgeHit.String()),
		ml.CountCategory("ball", EventWallBounce.String()),
		ml.CountCategory("ball", EventServe.String()))
	fmt.Fprintf(&sb, "Ball: %s\n", s.Ball)
	return sb.String()
}
