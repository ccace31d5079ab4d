package ai

import (
	"context"

	"wanderlust/internal/types"
)

// Provider defines the contract for the generative backend.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type Provider interface {
	// GenerateTripPlan produces one raw sectioned response for the form.
	// The caller owns parsing; this returns the text exactly as generated.
	GenerateTripPlan(ctx context.Context, form types.TripForm) (string, error)

	// QuickTip returns a one-sentence local tip for a destination. Failures
	// degrade to an empty string; a tip is decoration, never load-bearing.
	QuickTip(ctx context.Context, destination string) (string, error)

	// Chat answers a concierge question given prior conversation turns.
	Chat(ctx context.Context, history []ChatMessage, message string) (string, error)
}
