// Package domain contains the core business entities and rules for the itinerary search engine.
// These entities are backend-agnostic and form the foundation upon which all other components are built.
package domain

// Airport represents an airport with its IATA code, location, and timezone.
// Airports are created once at data-load time and never mutated afterwards.
type Airport struct {
	// Code is the 3-letter IATA airport code (e.g., "JFK"); unique key
	Code string `json:"code"`

	// Name is the full airport name (e.g., "John F. Kennedy International Airport")
	Name string `json:"name"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country the airport is located in
	Country string `json:"country"`

	// Timezone is the IANA timezone identifier (e.g., "America/New_York")
	Timezone string `json:"timezone"`
}

// SameCountry reports whether this airport is in the same country as another.
func (a Airport) SameCountry(other Airport) bool {
	return a.Country == other.Country
}
