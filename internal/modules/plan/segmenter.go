// README: Itinerary day segmentation (preamble + ordered day blocks).
package plan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// dayBoundary matches the start of a day block: a line start, optional
	// markdown bold markers, then "Day <number>" case-insensitively. The
	// lookahead-free form keeps the marker text inside the fragment that
	// follows the split point.
	dayBoundary = regexp.MustCompile(`(?i)\n(?:\*+)?Day\s+\d+`)

	// dayMarker re-checks whether a trimmed fragment itself begins with a
	// day marker.
	dayMarker = regexp.MustCompile(`(?i)^\**Day\s+\d+`)

	// firstDigits extracts the ordinal from a title.
	firstDigits = regexp.MustCompile(`\d+`)

	// titleNoise strips colons, hashes and dashes from a title line.
	titleNoise = strings.NewReplacer(":", "", "#", "", "-", "")
)

// SegmentDays splits itinerary text into a narrative preamble and ordered day
// blocks. Day numbers are taken as the model produced them: not validated, not
// deduplicated, not reordered. Fewer than two fragments means no day markers
// were found; the whole text then becomes the preamble and Days stays empty,
// which callers render as flat prose. Whitespace-only fragments are dropped.
func SegmentDays(itineraryText string) Itinerary {
	fragments := splitAtDayBoundaries(itineraryText)
	if len(fragments) < 2 {
		return Itinerary{Preamble: strings.TrimSpace(itineraryText)}
	}

	var out Itinerary
	for _, fragment := range fragments {
		trimmed := strings.TrimSpace(fragment)
		if trimmed == "" {
			continue
		}
		if !dayMarker.MatchString(trimmed) {
			// Narrative content before the first explicit day.
			if out.Preamble == "" {
				out.Preamble = trimmed
			} else {
				out.Preamble += "\n\n" + trimmed
			}
			continue
		}
		out.Days = append(out.Days, buildDayBlock(trimmed))
	}
	return out
}

// splitAtDayBoundaries cuts the text immediately before each day marker found
// at a line start (or at the very start of the text).
func splitAtDayBoundaries(text string) []string {
	if text == "" {
		return nil
	}

	locs := dayBoundary.FindAllStringIndex("\n"+text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	// Sentinel newline above shifts match positions by one; loc[0] in the
	// prepended string is exactly the line start in the original text. A
	// marker at the very start yields an empty leading fragment, dropped
	// later by the caller.
	var fragments []string
	prev := 0
	for _, loc := range locs {
		fragments = append(fragments, text[prev:loc[0]])
		prev = loc[0]
	}
	fragments = append(fragments, text[prev:])
	return fragments
}

// buildDayBlock derives the title, body and ordinal of one day fragment. The
// title is the first line with bold markers and ":"/"#"/"-" stripped; without
// a line break the whole fragment is the title and the body stays empty.
func buildDayBlock(fragment string) DayBlock {
	title := fragment
	body := ""
	if i := strings.IndexByte(fragment, '\n'); i != -1 {
		title = fragment[:i]
		body = strings.TrimSpace(fragment[i+1:])
	}
	title = strings.TrimSpace(titleNoise.Replace(strings.ReplaceAll(title, "**", "")))

	ordinal := 0
	if m := firstDigits.FindString(title); m != "" {
		ordinal, _ = strconv.Atoi(m)
	}
	return DayBlock{Title: title, Body: body, Ordinal: ordinal}
}
