// README: Grounding references (citations) attached to a generated plan.
package types

// ReferenceKind distinguishes a plain web citation from a verified map place.
type ReferenceKind string

const (
	ReferenceWeb   ReferenceKind = "web"
	ReferencePlace ReferenceKind = "place"
)

// ReviewSnippet is a short user review carried by a place reference.
type ReviewSnippet struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// GroundingReference is a citation supplied alongside a generated plan. The
// parsing pipeline only reads these; it never creates or mutates them.
type GroundingReference struct {
	Title          string          `json:"title"`
	URI            string          `json:"uri"`
	Kind           ReferenceKind   `json:"kind"`
	PlaceID        string          `json:"placeId,omitempty"`
	ReviewSnippets []ReviewSnippet `json:"reviewSnippets,omitempty"`
}
