// README: Section splitter tests (delimiter framing and edge cases).
package plan

import "testing"

func TestSplitSections_NoDelimiter(t *testing.T) {
	got := SplitSections("a plain answer with no sections at all")
	for _, name := range AllSections {
		v, ok := got[name]
		if !ok {
			t.Fatalf("section %s missing from map", name)
		}
		if v != "" {
			t.Errorf("section %s = %q, want empty", name, v)
		}
	}
}

func TestSplitSections_IsolatesValues(t *testing.T) {
	raw := "---SECTION: BUDGET---[1,2]---SECTION: PACKING---[]"
	got := SplitSections(raw)
	if got[SectionBudget] != "[1,2]" {
		t.Errorf("BUDGET = %q, want [1,2]", got[SectionBudget])
	}
	if got[SectionPacking] != "[]" {
		t.Errorf("PACKING = %q, want []", got[SectionPacking])
	}
}

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[SectionName]string
	}{
		{
			name: "full response with surrounding whitespace",
			raw:  "intro chatter\n---SECTION: ITINERARY---\nDay 1\nArrive.\n---SECTION: SECURITY---  stay alert  \n",
			want: map[SectionName]string{
				SectionItinerary: "Day 1\nArrive.",
				SectionSecurity:  "stay alert",
			},
		},
		{
			name: "unrecognized name is discarded",
			raw:  "---SECTION: SHOPPING---malls---SECTION: NIGHTLIFE---jazz bars",
			want: map[SectionName]string{SectionNightlife: "jazz bars"},
		},
		{
			name: "first duplicate wins",
			raw:  "---SECTION: BUDGET---[1]---SECTION: BUDGET---[2]",
			want: map[SectionName]string{SectionBudget: "[1]"},
		},
		{
			name: "name without trailing dashes claims nothing",
			raw:  "---SECTION: BUDGET [1]",
			want: map[SectionName]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSections(tt.raw)
			for _, name := range AllSections {
				want := tt.want[name]
				if got[name] != want {
					t.Errorf("section %s = %q, want %q", name, got[name], want)
				}
			}
		})
	}
}
