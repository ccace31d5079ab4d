package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"wanderlust/internal/types"
)

// placeURL is the canonical maps link for a verified place id.
const placeURL = "https://www.google.com/maps/place/?q=place_id:%s"

// maxReviewSnippets caps how many review snippets one reference carries.
const maxReviewSnippets = 2

// PlacesService verifies recommended locations against the Google Places API
// and turns them into grounding references for the entity linker and the
// booking-hub cards.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Ground resolves the destination plus each recommended place name to a
// verified map place. Names that resolve to nothing are skipped silently: an
// unverifiable recommendation simply stays unlinked in the rendered plan.
func (s *PlacesService) Ground(ctx context.Context, destination string, names []string) ([]types.GroundingReference, error) {
	refs := make([]types.GroundingReference, 0, len(names)+1)

	if destination != "" {
		if ref, ok := s.lookup(ctx, destination, ""); ok {
			refs = append(refs, ref)
		}
	}
	for _, name := range names {
		ref, ok := s.lookup(ctx, name, destination)
		if !ok {
			continue
		}
		ref.ReviewSnippets = s.reviewSnippets(ctx, ref.PlaceID)
		refs = append(refs, ref)
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("no places found for %q", destination)
	}
	return refs, nil
}

// lookup runs a text search and keeps the top result.
func (s *PlacesService) lookup(ctx context.Context, name, near string) (types.GroundingReference, bool) {
	query := name
	if near != "" {
		query = fmt.Sprintf("%s near %s", name, near)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil || len(resp.Results) == 0 {
		return types.GroundingReference{}, false
	}

	top := resp.Results[0]
	return types.GroundingReference{
		Title:   top.Name,
		URI:     fmt.Sprintf(placeURL, top.PlaceID),
		Kind:    types.ReferencePlace,
		PlaceID: top.PlaceID,
	}, true
}

// reviewSnippets pulls a couple of short reviews for a place. Best effort:
// any failure returns nil and the reference ships without snippets.
func (s *PlacesService) reviewSnippets(ctx context.Context, placeID string) []types.ReviewSnippet {
	if placeID == "" {
		return nil
	}
	details, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: placeID})
	if err != nil {
		return nil
	}

	var snippets []types.ReviewSnippet
	for _, review := range details.Reviews {
		if review.Text == "" {
			continue
		}
		snippets = append(snippets, types.ReviewSnippet{
			Text:   review.Text,
			Author: review.AuthorName,
		})
		if len(snippets) == maxReviewSnippets {
			break
		}
	}
	return snippets
}
