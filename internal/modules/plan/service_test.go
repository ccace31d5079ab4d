// README: Plan service tests (end-to-end assembly and stale discard).
package plan

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"wanderlust/internal/types"
)

// stubGenerator returns a canned raw response, optionally superseding the
// dispatcher mid-flight to simulate a newer request racing past this one.
type stubGenerator struct {
	raw       string
	err       error
	supersede func()
	calls     int
}

func (s *stubGenerator) GenerateTripPlan(_ context.Context, _ types.TripForm) (string, error) {
	s.calls++
	if s.supersede != nil {
		s.supersede()
	}
	return s.raw, s.err
}

type stubGrounder struct {
	refs []types.GroundingReference
	err  error
}

func (s *stubGrounder) Ground(_ context.Context, _ string, _ []string) ([]types.GroundingReference, error) {
	return s.refs, s.err
}

const sampleRaw = `---SECTION: ITINERARY---Day 1
Arrive and check in.---SECTION: BUDGET---[{"category":"Hotel","amount":500,"currency":"USD"}]`

func TestBuildPlan_EndToEnd(t *testing.T) {
	p := BuildPlan(sampleRaw, nil, "USD")

	it := SegmentDays(p.Itinerary)
	wantDays := []DayBlock{{Title: "Day 1", Body: "Arrive and check in.", Ordinal: 1}}
	if !reflect.DeepEqual(it.Days, wantDays) {
		t.Errorf("days = %+v, want %+v", it.Days, wantDays)
	}

	wantBudget := []BudgetItem{{Category: "Hotel", Amount: 500, Currency: "USD"}}
	if !reflect.DeepEqual(p.BudgetBreakdown, wantBudget) {
		t.Errorf("budget = %+v, want %+v", p.BudgetBreakdown, wantBudget)
	}

	// Sections the response omitted fall back, never error.
	if len(p.PackingList) == 0 {
		t.Error("expected default packing list for missing PACKING section")
	}
	if len(p.WeatherForecast) != 0 || len(p.RecommendedHotels) != 0 {
		t.Error("expected empty weather and hotels for missing sections")
	}
	if p.RawResponse != sampleRaw {
		t.Error("raw response not preserved")
	}
}

func TestBuildPlan_Normalization(t *testing.T) {
	raw := `---SECTION: BUDGET---[{"category":"Taxis","amount":-3}]---SECTION: HOTELS---[{"name":"Grand","stars":9,"pricePerNight":-1}]`
	p := BuildPlan(raw, nil, "EUR")

	if got := p.BudgetBreakdown[0]; got.Amount != 0 || got.Currency != "EUR" {
		t.Errorf("budget row not normalized: %+v", got)
	}
	if got := p.RecommendedHotels[0]; got.Stars != 5 || got.PricePerNight != 0 {
		t.Errorf("hotel not normalized: %+v", got)
	}
}

func TestGenerate_AttachesGrounding(t *testing.T) {
	refs := []types.GroundingReference{{Title: "Grand", URI: "http://g", Kind: types.ReferencePlace}}
	svc := NewService(&stubGenerator{raw: sampleRaw}, &stubGrounder{refs: refs})

	p, err := svc.Generate(context.Background(), types.TripForm{Destination: "Paris", Currency: "USD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.References, refs) {
		t.Errorf("references = %+v, want %+v", p.References, refs)
	}
}

func TestGenerate_GroundingFailureIsNonFatal(t *testing.T) {
	svc := NewService(&stubGenerator{raw: sampleRaw}, &stubGrounder{err: errors.New("places down")})

	p, err := svc.Generate(context.Background(), types.TripForm{Destination: "Paris", Currency: "USD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.References) != 0 {
		t.Errorf("expected no references, got %+v", p.References)
	}
}

func TestGenerate_MissingDestination(t *testing.T) {
	svc := NewService(&stubGenerator{raw: sampleRaw}, nil)
	if _, err := svc.Generate(context.Background(), types.TripForm{}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}

func TestGenerate_StaleResponseDiscarded(t *testing.T) {
	svc := NewService(nil, nil)
	gen := &stubGenerator{raw: sampleRaw, supersede: svc.Cancel}
	svc.gen = gen

	_, err := svc.Generate(context.Background(), types.TripForm{Destination: "Paris"})
	if !errors.Is(err, ErrStale) {
		t.Fatalf("expected ErrStale, got %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestGenerate_ProviderErrorSurfaces(t *testing.T) {
	boom := errors.New("model unavailable")
	svc := NewService(&stubGenerator{err: boom}, nil)
	if _, err := svc.Generate(context.Background(), types.TripForm{Destination: "Paris"}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestRenderItinerary_LinksBodiesNotTitles(t *testing.T) {
	refs := []types.GroundingReference{{Title: "Louvre", URI: "http://x"}}
	it := RenderItinerary("A note about the Louvre.\nDay 1\nSee the Louvre.", refs)

	if it.Preamble == "" || len(it.Days) != 1 {
		t.Fatalf("unexpected segmentation: %+v", it)
	}
	wantBody := `See the <a href="http://x" target="_blank" rel="noopener noreferrer">Louvre</a>.`
	if it.Days[0].Body != wantBody {
		t.Errorf("body = %q", it.Days[0].Body)
	}
	if it.Days[0].Title != "Day 1" {
		t.Errorf("title = %q, want plain text", it.Days[0].Title)
	}
}

func TestCategorizeReference(t *testing.T) {
	tests := []struct {
		title string
		want  ReferenceCategory
	}{
		{"Hotel Lutetia", CategoryHotel},
		{"Riverside Hostel", CategoryHotel},
		{"Bistro Paul Bert", CategoryDining},
		{"Musee d'Orsay Museum", CategoryCulture},
		{"Luxembourg Gardens Funfair", CategoryAttraction},
	}
	for _, tt := range tests {
		if got := CategorizeReference(tt.title); got != tt.want {
			t.Errorf("CategorizeReference(%q) = %s, want %s", tt.title, got, tt.want)
		}
	}
}
