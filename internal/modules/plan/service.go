// README: Plan service; orchestrates generation, parsing and grounding.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"wanderlust/internal/types"
)

var (
	// ErrStale marks a generation result that was superseded by a newer
	// request before it finished. Callers discard it silently.
	ErrStale = errors.New("generation superseded")

	// ErrBadRequest is returned for an unusable form.
	ErrBadRequest = errors.New("bad request")
)

// Generator produces the raw sectioned response for a trip form.
type Generator interface {
	GenerateTripPlan(ctx context.Context, form types.TripForm) (string, error)
}

// Grounder resolves recommended place names into citation references.
type Grounder interface {
	Ground(ctx context.Context, destination string, names []string) ([]types.GroundingReference, error)
}

type Service struct {
	gen        Generator
	grounder   Grounder
	dispatcher Dispatcher
}

func NewService(gen Generator, grounder Grounder) *Service {
	return &Service{gen: gen, grounder: grounder}
}

// BuildPlan assembles a TripPlan from one raw model response. Malformed or
// missing structured sections resolve to their documented fallbacks; this
// function cannot fail.
func BuildPlan(raw string, references []types.GroundingReference, currency string) TripPlan {
	sections := SplitSections(raw)
	p := TripPlan{
		Itinerary:         sections[SectionItinerary],
		BudgetBreakdown:   DecodeSection(sections[SectionBudget], defaultBudget(currency)),
		PackingList:       DecodeSection(sections[SectionPacking], defaultPackingList()),
		WeatherForecast:   DecodeSection(sections[SectionWeather], []WeatherDay{}),
		RecommendedHotels: DecodeSection(sections[SectionHotels], []Hotel{}),
		TransportInfo:     sections[SectionTransport],
		SecurityTips:      sections[SectionSecurity],
		Nightlife:         sections[SectionNightlife],
		DosAndDonts:       sections[SectionDosAndDont],
		RawResponse:       raw,
		References:        references,
	}
	normalize(&p, currency)
	return p
}

// normalize fills required fields the model left out and clamps values to
// their documented ranges. The decoder deliberately skips shape validation,
// so every structured field is treated as possibly absent here.
func normalize(p *TripPlan, currency string) {
	for i := range p.BudgetBreakdown {
		if p.BudgetBreakdown[i].Amount < 0 {
			p.BudgetBreakdown[i].Amount = 0
		}
		if p.BudgetBreakdown[i].Currency == "" {
			p.BudgetBreakdown[i].Currency = currency
		}
	}
	for i := range p.PackingList {
		if p.PackingList[i].Items == nil {
			p.PackingList[i].Items = []string{}
		}
	}
	for i := range p.RecommendedHotels {
		h := &p.RecommendedHotels[i]
		if h.Stars < 1 {
			h.Stars = 1
		}
		if h.Stars > 5 {
			h.Stars = 5
		}
		if h.PricePerNight < 0 {
			h.PricePerNight = 0
		}
		if h.Amenities == nil {
			h.Amenities = []string{}
		}
	}
}

// RenderItinerary segments itinerary text into day blocks and rewrites
// grounded place names in the preamble and day bodies into anchors. Titles
// are left as plain text.
func RenderItinerary(itineraryText string, references []types.GroundingReference) Itinerary {
	it := SegmentDays(itineraryText)
	it.Preamble = LinkEntities(it.Preamble, references)
	for i := range it.Days {
		it.Days[i].Body = LinkEntities(it.Days[i].Body, references)
	}
	return it
}

// Generate runs one tagged generation end to end: model call, section
// parsing, grounding enrichment. A request superseded while the model call
// was in flight returns ErrStale and its response is discarded unprocessed.
func (s *Service) Generate(ctx context.Context, form types.TripForm) (*TripPlan, error) {
	if strings.TrimSpace(form.Destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrBadRequest)
	}

	id := s.dispatcher.Next()

	raw, err := s.gen.GenerateTripPlan(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	if s.dispatcher.IsStale(id) {
		return nil, ErrStale
	}

	p := BuildPlan(raw, nil, form.Currency)

	// Grounding is enrichment: a failed lookup degrades to an unlinked plan.
	if s.grounder != nil {
		refs, err := s.grounder.Ground(ctx, form.Destination, hotelNames(p))
		if err != nil {
			log.Printf("grounding failed for %q: %v", form.Destination, err)
		} else {
			p.References = refs
		}
	}

	if s.dispatcher.IsStale(id) {
		return nil, ErrStale
	}
	return &p, nil
}

// Cancel invalidates any generation still in flight.
func (s *Service) Cancel() {
	s.dispatcher.Cancel()
}

func hotelNames(p TripPlan) []string {
	names := make([]string, 0, len(p.RecommendedHotels))
	for _, h := range p.RecommendedHotels {
		if h.Name != "" {
			names = append(names, h.Name)
		}
	}
	return names
}
