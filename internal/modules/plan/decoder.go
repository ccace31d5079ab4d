// README: Tolerant JSON decoding for structured sections.
package plan

import (
	"encoding/json"
	"strings"
)

// stripCodeFences removes markdown code-fence markers the model sometimes
// wraps JSON sections in (```json ... ``` or bare ```).
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// DecodeSection parses a structured section into T. Empty sections and parse
// failures both resolve to the fallback; the decoder never reports an error
// to the caller. Shape is not validated beyond parse success; missing keys
// surface downstream as zero values, not as decode failures.
func DecodeSection[T any](sectionText string, fallback T) T {
	cleaned := stripCodeFences(sectionText)
	if cleaned == "" {
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return fallback
	}
	return out
}

// defaultPackingList is returned when the PACKING section is missing or
// unparseable, so the checklist view always has something to show.
func defaultPackingList() []PackingCategory {
	return []PackingCategory{
		{Category: "Clothing", Items: []string{"Daily outfits", "Comfortable shoes"}},
		{Category: "Toiletries", Items: []string{"Toothbrush", "Sunscreen"}},
		{Category: "Electronics", Items: []string{"Phone charger", "Power bank"}},
	}
}

// defaultBudget is the single-row placeholder used when the BUDGET section is
// missing or unparseable.
func defaultBudget(currency string) []BudgetItem {
	return []BudgetItem{{Category: "Estimated Total", Amount: 0, Currency: currency}}
}
