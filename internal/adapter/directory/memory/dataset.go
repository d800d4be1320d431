package memory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// datasetTimeLayout is the wall-clock format used by the dataset
// (ISO 8601 local date-time, no zone).
const datasetTimeLayout = "2006-01-02T15:04:05"

// dataset mirrors the top-level shape of the JSON data file.
type dataset struct {
	Airports []airportRecord `json:"airports"`
	Flights  []flightRecord  `json:"flights"`
}

// airportRecord is the raw airport shape in the dataset.
type airportRecord struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// flightRecord is the raw flight shape in the dataset. Times stay strings
// here; they are parsed during conversion so one bad record cannot abort the
// whole load.
type flightRecord struct {
	FlightNumber string  `json:"flightNumber"`
	Airline      string  `json:"airline"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Departure    string  `json:"departureTime"`
	Arrival      string  `json:"arrivalTime"`
	Price        price   `json:"price"`
	Aircraft     string  `json:"aircraft"`
}

// price coerces dataset prices that appear either as JSON numbers or as
// numeric strings like "289.00".
type price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *price) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*p = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("price %q is not numeric: %w", raw, err)
	}

	*p = price(value)
	return nil
}

// parseDataset decodes the raw JSON document.
func parseDataset(raw []byte) (*dataset, error) {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// toAirport converts a raw airport record to the domain entity.
func (r airportRecord) toAirport() domain.Airport {
	return domain.Airport{
		Code:     r.Code,
		Name:     r.Name,
		City:     r.City,
		Country:  r.Country,
		Timezone: r.Timezone,
	}
}

// toFlight converts a raw flight record to the domain entity, parsing the
// local wall-clock times. The UTC instants are left zero; normalization
// happens during the directory build.
func (r flightRecord) toFlight() (domain.Flight, error) {
	departure, err := time.Parse(datasetTimeLayout, r.Departure)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("departure time: %w", err)
	}

	arrival, err := time.Parse(datasetTimeLayout, r.Arrival)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("arrival time: %w", err)
	}

	return domain.Flight{
		FlightNumber:   r.FlightNumber,
		Airline:        r.Airline,
		Origin:         r.Origin,
		Destination:    r.Destination,
		LocalDeparture: departure,
		LocalArrival:   arrival,
		Price:          float64(r.Price),
		Aircraft:       r.Aircraft,
	}, nil
}
