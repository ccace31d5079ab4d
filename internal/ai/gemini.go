package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wanderlust/internal/types"
)

// systemInstruction fixes the response format the parsing pipeline depends
// on: every section framed by the ---SECTION: NAME--- delimiter, JSON-only
// bodies for the structured sections.
const systemInstruction = `You are "WanderLust", an elite AI travel designer. Your goal is to create high-integrity travel plans that are practical, safe, and easily bookable.

CORE MISSION:
1. SPECIFICITY: For every hotel and restaurant, you MUST provide a specific name.
2. PLATFORM AWARENESS: Mention platforms like Booking.com, TripAdvisor, Expedia, etc.
3. FORMAT: Use the exact delimiters below for parsing.

RESPONSE FORMAT:
---SECTION: ITINERARY---
(Day by day plan. Use Markdown. Start each day with "Day N".)

---SECTION: BUDGET---
(A strict JSON array ONLY.)
Example: [{"category": "Hotels", "amount": 1200, "currency": "USD"}]

---SECTION: HOTELS---
(A strict JSON array of objects with 'name', 'stars' (1-5), 'pricePerNight', 'amenities', 'description', 'locationVibe'.)

---SECTION: WEATHER---
(A strict JSON array of objects with 'date', 'condition', 'tempHigh', 'tempLow', 'icon' for the travel dates.)

---SECTION: PACKING---
(A strict JSON array of objects with 'category' and 'items' list. Tailor to duration, weather for the travel date, and activities.)
Example: [{"category": "Clothing", "items": ["5x Shirts", "Rain jacket"]}, {"category": "Essentials", "items": ["Passport", "Universal Adapter"]}]

---SECTION: TRANSPORT---
(Detailed logistics. Airport transfers, local transport.)

---SECTION: SECURITY---
(Safety status, neighborhood avoidances, emergency numbers.)

---SECTION: NIGHTLIFE---
(Evening experiences appropriate for the traveler type.)

---SECTION: DOS_AND_DONTS---
(Tipping, cultural etiquette, essential packing items, "Do NOT" behaviors.)
`

const chatInstruction = "You are WanderLust AI, the ultimate travel concierge. Answer questions about landmarks, booking tips, and local culture. Be elite, helpful, and concise."

// chatFallback is returned when the concierge call fails; the chat widget
// shows it instead of an error state.
const chatFallback = "I'm having a connection issue. Try again shortly!"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	planModel *genai.GenerativeModel
	tipModel  *genai.GenerativeModel
	chatModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	planModel := client.GenerativeModel("gemini-2.5-flash")
	planModel.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	// Creative enough for itinerary prose, stable enough for the JSON sections.
	planModel.SetTemperature(0.6)

	// A lighter model is plenty for one-line tips.
	tipModel := client.GenerativeModel("gemini-2.0-flash-lite")

	chatModel := client.GenerativeModel("gemini-2.5-flash")
	chatModel.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatInstruction)}}

	return &GeminiProvider{
		client:    client,
		planModel: planModel,
		tipModel:  tipModel,
		chatModel: chatModel,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateTripPlan asks for one complete sectioned plan. The raw text is
// returned untouched; section splitting and decoding happen in the plan
// package.
func (p *GeminiProvider) GenerateTripPlan(ctx context.Context, form types.TripForm) (string, error) {
	prompt := buildPlanPrompt(form)

	resp, err := p.planModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no response candidates from Gemini")
	}
	return text, nil
}

// QuickTip fetches a single punchy local tip. Any failure yields "", nil and
// the caller shows nothing rather than an error.
func (p *GeminiProvider) QuickTip(ctx context.Context, destination string) (string, error) {
	if destination == "" {
		return "", nil
	}
	prompt := fmt.Sprintf(`Give me a fascinating "secret" tip for %s in one punchy sentence. Include something that only locals know.`, destination)
	resp, err := p.tipModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(responseText(resp)), nil
}

// Chat continues the concierge conversation with the full prior history.
func (p *GeminiProvider) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	session := p.chatModel.StartChat()
	for _, msg := range history {
		session.History = append(session.History, &genai.Content{
			Role:  string(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return chatFallback, nil
	}
	text := responseText(resp)
	if text == "" {
		return "I'm processing that. One moment...", nil
	}
	return text, nil
}

func buildPlanPrompt(form types.TripForm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please design a high-integrity travel plan for %s.\n\n", form.Destination)
	b.WriteString("TRAVEL CONTEXT:\n")
	fmt.Fprintf(&b, "- Dates: %s (%d days)\n", form.TravelDate, form.Duration)
	fmt.Fprintf(&b, "- Group: %s\n", form.Travelers)
	fmt.Fprintf(&b, "- Budget: %s (%s)\n", form.Budget, form.Currency)
	fmt.Fprintf(&b, "- Accommodation Goals: %s\n", form.HotelPreferences)
	fmt.Fprintf(&b, "- Way of Travel: %s\n", form.TransportMode)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(form.Interests, ", "))
	if form.Notes != "" {
		fmt.Fprintf(&b, "- Extra Details: %s\n", form.Notes)
	}
	b.WriteString("\nProvide a complete guide with specific named locations and a tailored packing checklist.")
	return b.String()
}

// responseText flattens the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
