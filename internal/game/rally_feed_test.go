package game

import (
	"fmt"
	"testing"
)

func TestRallyFeed_KeepsNewestInOrder(t *testing.T) {
	f := NewRallyFeed(3)
	if len(f.Recent()) != 0 {
		t.Fatal("new feed should be empty")
	}
	for i := 1; i <= 5; i++ {
		f.Add(i, fmt.Sprintf("event %d", i))
	}
	got := f.Recent()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []int{3, 4, 5} {
		if got[i].Tick != want {
			t.Fatalf("entry %d: expected tick %d, got %d", i, want, got[i].Tick)
		}
	}
}

func TestRallyFeed_PartiallyFilled(t *testing.T) {
	f := NewRallyFeed(4)
	f.Add(1, "a")
	f.Add(2, "b")
	got := f.Recent()
	if len(got) != 2 || got[0].Text != "a" || got[1].Text != "b" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("mono").DashedNet {
		t.Fatal("mono theme draws a solid net")
	}
	if th := ThemeByName("neon"); th.Name != "table" || !th.Border {
		t.Fatalf("unknown themes fall back to table, got %q", th.Name)
	}
}
