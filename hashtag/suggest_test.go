package hashtag

import (
	"reflect"
	"strings"
	"testing"
)

func TestSuggestRankingAndExplicitOrder(t *testing.T) {
	title := "Go Routines"
	description := "Learn #GoLang tips #coding"
	freeTags := "golang, concurrency"

	got := Suggest(title, description, freeTags)
	want := []string{"#golang", "#coding", "#routines", "#learn", "#tips"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest() = %v; want %v", got, want)
	}
}

func TestSuggestProperties(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		freeTags    string
	}{
		{"empty", "", "", ""},
		{"plain words", "morning vlog routine", "daily routine walkthrough with coffee", "vlog, routine"},
		{"explicit heavy", "clip", "#one #two #three #four #five", ""},
		{"repeated text", strings.Repeat("skateboard tricks ", 10), "street session", "skate"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Suggest(c.title, c.description, c.freeTags)
			if len(got) > 8 {
				t.Fatalf("Suggest() returned %d entries; want at most 8", len(got))
			}
			seen := make(map[string]bool)
			for _, tag := range got {
				if !strings.HasPrefix(tag, "#") {
					t.Fatalf("entry %q does not start with #", tag)
				}
				if seen[tag] {
					t.Fatalf("duplicate entry %q", tag)
				}
				seen[tag] = true
			}

			// Same input text must yield the same ordered result.
			again := Suggest(c.title, c.description, c.freeTags)
			if !reflect.DeepEqual(got, again) {
				t.Fatalf("Suggest() is not deterministic: %v vs %v", got, again)
			}
		})
	}
}

func TestSuggestFillsAllEightSlots(t *testing.T) {
	title := "narrative framing pacing lighting editing"
	description := "#alpha #bravo #charlie"
	got := Suggest(title, description, "")

	want := []string{"#alpha", "#bravo", "#charlie", "#narrative", "#framing", "#pacing", "#lighting", "#editing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest() = %v; want %v", got, want)
	}
}

func TestSuggestDropsShortAndStopwordTokens(t *testing.T) {
	got := Suggest("the and a of", "this that with from when", "cat dog")
	if len(got) != 0 {
		t.Fatalf("Suggest() = %v; want no entries", got)
	}
}

func TestSuggestCapsExplicitAtThree(t *testing.T) {
	// Tokens this short never rank by frequency, so only the explicit
	// extraction (capped at three) can surface them.
	got := Suggest("", "#on #tw #th #fo", "")
	want := []string{"#on", "#tw", "#th"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest() = %v; want %v", got, want)
	}
}
