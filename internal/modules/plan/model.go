// README: Trip plan aggregate and the section contract for model responses.
package plan

import "wanderlust/internal/types"

// SectionName identifies one delimiter-bounded subset of a raw model response.
type SectionName string

const (
	SectionItinerary  SectionName = "ITINERARY"
	SectionBudget     SectionName = "BUDGET"
	SectionHotels     SectionName = "HOTELS"
	SectionWeather    SectionName = "WEATHER"
	SectionPacking    SectionName = "PACKING"
	SectionTransport  SectionName = "TRANSPORT"
	SectionSecurity   SectionName = "SECURITY"
	SectionNightlife  SectionName = "NIGHTLIFE"
	SectionDosAndDont SectionName = "DOS_AND_DONTS"
)

// AllSections lists every recognized section name. Names outside this set are
// discarded by the splitter.
var AllSections = []SectionName{
	SectionItinerary,
	SectionBudget,
	SectionHotels,
	SectionWeather,
	SectionPacking,
	SectionTransport,
	SectionSecurity,
	SectionNightlife,
	SectionDosAndDont,
}

// SectionMap maps every recognized section name to its raw text. A section the
// model did not emit maps to the empty string, never to a missing key.
type SectionMap map[SectionName]string

// BudgetItem is one row of the budget breakdown.
type BudgetItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PackingCategory groups packing items under a heading.
type PackingCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// WeatherDay is one day of the forecast.
type WeatherDay struct {
	Date      string  `json:"date"`
	Condition string  `json:"condition"`
	TempHigh  float64 `json:"tempHigh"`
	TempLow   float64 `json:"tempLow"`
	Icon      string  `json:"icon"`
}

// Hotel is one recommended stay.
type Hotel struct {
	Name          string   `json:"name"`
	Stars         int      `json:"stars"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	LocationVibe  string   `json:"locationVibe"`
}

// TripPlan is the fully decoded result of one generation. The itinerary is
// kept as raw markdown-like text; day segmentation and entity linking happen
// at render time, not here.
type TripPlan struct {
	Itinerary         string                     `json:"itinerary"`
	BudgetBreakdown   []BudgetItem               `json:"budgetBreakdown"`
	PackingList       []PackingCategory          `json:"packingList"`
	WeatherForecast   []WeatherDay               `json:"weatherForecast"`
	RecommendedHotels []Hotel                    `json:"recommendedHotels"`
	SecurityTips      string                     `json:"securityTips"`
	Advisories        string                     `json:"advisories"`
	Nightlife         string                     `json:"nightlife"`
	DosAndDonts       string                     `json:"dosAndDonts"`
	TransportInfo     string                     `json:"transportInfo"`
	RawResponse       string                     `json:"rawResponse"`
	References        []types.GroundingReference `json:"references,omitempty"`
}

// DayBlock is one segmented chunk of itinerary text covering a single day.
// Ordinal is the first digit run found in the title, 0 when the title carries
// no number.
type DayBlock struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Ordinal int    `json:"ordinal,omitempty"`
}

// Itinerary is the render-ready segmentation of the itinerary text. When the
// text contains no day markers at all, Days is empty and Preamble holds the
// whole text; callers render that as flat prose rather than day cards.
type Itinerary struct {
	Preamble string     `json:"preamble"`
	Days     []DayBlock `json:"days"`
}
