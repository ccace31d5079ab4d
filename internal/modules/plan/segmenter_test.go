// README: Day segmenter tests (markers, preamble, fallback, titles).
package plan

import (
	"reflect"
	"testing"
)

func TestSegmentDays_TwoDays(t *testing.T) {
	got := SegmentDays("Day 1\nVisit museum\nDay 2\nBeach day")
	want := Itinerary{Days: []DayBlock{
		{Title: "Day 1", Body: "Visit museum", Ordinal: 1},
		{Title: "Day 2", Body: "Beach day", Ordinal: 2},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSegmentDays_NoMarkers(t *testing.T) {
	got := SegmentDays("Just relax and explore.")
	if len(got.Days) != 0 {
		t.Fatalf("expected no day blocks, got %d", len(got.Days))
	}
	if got.Preamble != "Just relax and explore." {
		t.Errorf("preamble = %q", got.Preamble)
	}
}

func TestSegmentDays(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Itinerary
	}{
		{
			name: "single leading day",
			text: "Day 1\nArrive and check in.",
			want: Itinerary{Days: []DayBlock{{Title: "Day 1", Body: "Arrive and check in.", Ordinal: 1}}},
		},
		{
			name: "preamble before first day",
			text: "A gentle start to your trip.\n**Day 1: Arrival**\nSettle in.",
			want: Itinerary{
				Preamble: "A gentle start to your trip.",
				Days:     []DayBlock{{Title: "Day 1 Arrival", Body: "Settle in.", Ordinal: 1}},
			},
		},
		{
			name: "bold marker and noise characters stripped from title",
			text: "**Day 3** - #Old Town:\nWalk the walls.",
			want: Itinerary{Days: []DayBlock{{Title: "Day 3  Old Town", Body: "Walk the walls.", Ordinal: 3}}},
		},
		{
			name: "title only day without body",
			text: "Day 1\nMorning swim.\nDay 2",
			want: Itinerary{Days: []DayBlock{
				{Title: "Day 1", Body: "Morning swim.", Ordinal: 1},
				{Title: "Day 2", Body: "", Ordinal: 2},
			}},
		},
		{
			name: "non-sequential days preserved in source order",
			text: "Day 5\nLate start.\nDay 2\nBacktrack.",
			want: Itinerary{Days: []DayBlock{
				{Title: "Day 5", Body: "Late start.", Ordinal: 5},
				{Title: "Day 2", Body: "Backtrack.", Ordinal: 2},
			}},
		},
		{
			name: "case-insensitive marker",
			text: "day 1\nLowercase still counts.\nDAY 2\nShouting too.",
			want: Itinerary{Days: []DayBlock{
				{Title: "day 1", Body: "Lowercase still counts.", Ordinal: 1},
				{Title: "DAY 2", Body: "Shouting too.", Ordinal: 2},
			}},
		},
		{
			name: "mid-line Day mention is not a boundary",
			text: "Day 1\nOn Day 12 of the festival the parade passes.\nDay 2\nRest.",
			want: Itinerary{Days: []DayBlock{
				{Title: "Day 1", Body: "On Day 12 of the festival the parade passes.", Ordinal: 1},
				{Title: "Day 2", Body: "Rest.", Ordinal: 2},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDays(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
