// README: Trip request form shared by the AI provider and the trips store.
package types

// TripForm is the snapshot of the planning form a generation request is built
// from. It is persisted verbatim inside a saved trip so a plan can be
// regenerated or re-rendered later.
type TripForm struct {
	Destination      string   `json:"destination"`
	Duration         int      `json:"duration"`
	TravelDate       string   `json:"travelDate"`
	Travelers        string   `json:"travelers"`
	Budget           string   `json:"budget"`
	BudgetAmount     string   `json:"budgetAmount,omitempty"`
	Currency         string   `json:"currency"`
	HotelPreferences string   `json:"hotelPreferences"`
	TransportMode    string   `json:"transportMode"`
	FlightClass      string   `json:"flightClass,omitempty"`
	AirportTransfer  string   `json:"airportTransfer,omitempty"`
	CarRental        bool     `json:"carRental,omitempty"`
	Interests        []string `json:"interests"`
	Notes            string   `json:"notes,omitempty"`

	Airline       string `json:"airline,omitempty"`
	FlightNumber  string `json:"flightNumber,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
}
