// README: Entity linker; rewrites grounded place names into anchors.
package plan

import (
	"fmt"
	"regexp"

	"wanderlust/internal/types"
)

// LinkEntities wraps every whole-word, case-insensitive occurrence of a
// reference title in an anchor pointing at the reference URI. The visible
// label is the stored title, so differently-cased matches are normalized to
// its canonical casing. References are applied strictly in the order given:
// when titles overlap, a later reference may rewrite markup injected by an
// earlier one. That best-effort behavior is pinned by tests; changing the
// order changes visible output. References without both a title and a URI are
// skipped, and an empty reference list returns the text unchanged.
func LinkEntities(text string, references []types.GroundingReference) string {
	linked := text
	for _, ref := range references {
		if ref.Title == "" || ref.URI == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(ref.Title) + `\b`)
		if err != nil {
			continue
		}
		anchor := fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, ref.URI, ref.Title)
		linked = pattern.ReplaceAllLiteralString(linked, anchor)
	}
	return linked
}
