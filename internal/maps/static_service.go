package maps

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"

	"googlemaps.github.io/maps"
)

// StaticMapService fetches a destination overview image for offline viewing
// of a saved trip.
type StaticMapService struct {
	client *maps.Client
}

func NewStaticMapService(apiKey string) (*StaticMapService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &StaticMapService{client: client}, nil
}

// FetchOfflineAsset renders a static map of the destination and returns it as
// a PNG data URL, ready to be stored inline on a saved trip.
func (s *StaticMapService) FetchOfflineAsset(ctx context.Context, destination string) (string, error) {
	img, err := s.client.StaticMap(ctx, &maps.StaticMapRequest{
		Center: destination,
		Zoom:   12,
		Size:   "640x400",
	})
	if err != nil {
		return "", fmt.Errorf("static map fetch: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode static map: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
