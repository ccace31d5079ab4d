// README: Section splitter for the delimiter-framed model response.
package plan

import "strings"

// sectionDelimiter is the literal token the model is instructed to emit
// before each section name.
const sectionDelimiter = "---SECTION: "

// SplitSections divides a raw model response into named sections. Splitting is
// purely textual: the text is cut at every occurrence of the delimiter token,
// and a fragment claims a section only when it starts with a recognized name
// immediately followed by "---". The first occurrence of a name wins; later
// duplicates and unrecognized names are dropped. Every recognized name is
// present in the result, defaulting to "", so a response with no delimiter at
// all therefore yields an all-empty map, which downstream surfaces as an
// empty plan rather than an error.
func SplitSections(raw string) SectionMap {
	sections := make(SectionMap, len(AllSections))
	for _, name := range AllSections {
		sections[name] = ""
	}

	seen := make(map[SectionName]bool, len(AllSections))
	fragments := strings.Split(raw, sectionDelimiter)
	for _, fragment := range fragments {
		for _, name := range AllSections {
			prefix := string(name) + "---"
			if !strings.HasPrefix(fragment, prefix) {
				continue
			}
			if !seen[name] {
				seen[name] = true
				sections[name] = strings.TrimSpace(strings.TrimPrefix(fragment, prefix))
			}
			break
		}
	}
	return sections
}
