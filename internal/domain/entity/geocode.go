package entity

import "encoding/json"

// GeocodeMatch is the top candidate returned by the geocoder for one
// query. Latitude and Longitude are kept as the raw strings the
// upstream service returned; parsing them is the verifier's concern.
// Transient: only Raw is ever persisted (on the Location).
type GeocodeMatch struct {
	Latitude    string
	Longitude   string
	DisplayName string
	Address     *GeocodeAddress
	// Raw is the upstream response payload for this match, kept for
	// audit storage on the verified location.
	Raw json.RawMessage
}

// GeocodeAddress is the structured address breakdown attached to a
// geocoder match. Any field may be empty depending on the match type.
type GeocodeAddress struct {
	Country     string
	State       string
	Province    string
	County      string
	City        string
	Town        string
	Village     string
	Postcode    string
	Road        string
	HouseNumber string
}

// Locality returns the best available city-level component. The
// geocoder fills exactly one of city/town/village depending on the
// settlement size.
func (a *GeocodeAddress) Locality() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	default:
		return a.Village
	}
}

// StateOrProvince returns the province-level component, whichever the
// geocoder populated.
func (a *GeocodeAddress) StateOrProvince() string {
	if a.State != "" {
		return a.State
	}

	return a.Province
}
