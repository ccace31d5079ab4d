// README: Reference categorization for the booking-hub location cards.
package plan

import "strings"

// ReferenceCategory labels a grounding reference for card display.
type ReferenceCategory string

const (
	CategoryHotel      ReferenceCategory = "hotel"
	CategoryDining     ReferenceCategory = "dining"
	CategoryCulture    ReferenceCategory = "culture"
	CategoryAttraction ReferenceCategory = "attraction"
)

var categoryKeywords = []struct {
	category ReferenceCategory
	words    []string
}{
	{CategoryHotel, []string{"hotel", "resort", "inn", "stay", "hostel", "lodging", "apartment"}},
	{CategoryDining, []string{"restaurant", "cafe", "bistro", "grill", "food", "dining", "kitchen", "bar"}},
	{CategoryCulture, []string{"museum", "art", "gallery", "theatre", "temple", "church", "cathedral", "park", "square"}},
}

// CategorizeReference buckets a reference title by keyword. Unmatched titles
// fall through to the generic attraction bucket.
func CategorizeReference(title string) ReferenceCategory {
	t := strings.ToLower(title)
	for _, group := range categoryKeywords {
		for _, w := range group.words {
			if strings.Contains(t, w) {
				return group.category
			}
		}
	}
	return CategoryAttraction
}
