// Package entity contains the core business objects of the project.
package entity

import "strings"

// Address is an advertiser-submitted physical address. It is free-form
// input with no guaranteed format; verification against the geocoder
// decides whether it becomes part of a Location.
type Address struct {
	Street     string // Street name and house number, e.g. "123 Main St".
	City       string
	Province   string // Province or state.
	Country    string
	PostalCode string
}

// Address field names used as diagnostic keys on verification failure.
const (
	FieldStreet     = "street"
	FieldCity       = "city"
	FieldProvince   = "province"
	FieldCountry    = "country"
	FieldPostalCode = "postalCode"
)

// CandidateQueries returns the ordered geocoder query strings for this
// address, from the most specific form to the loosest fallback. The
// order is fixed; callers try them front to back and stop at the first
// non-empty geocoder result. Duplicate query strings are skipped.
func (a Address) CandidateQueries() []string {
	forms := [][]string{
		{a.Street, a.City, a.Province, a.Country, a.PostalCode},
		{a.City, a.Province, a.Country, a.PostalCode},
		{a.City, a.Province, a.PostalCode, a.Country},
		{a.PostalCode, a.Country},
	}

	queries := make([]string, 0, len(forms))
	seen := make(map[string]struct{}, len(forms))
	for _, fields := range forms {
		query := joinFields(fields)
		if query == "" {
			continue
		}
		if _, dup := seen[query]; dup {
			continue
		}
		seen[query] = struct{}{}
		queries = append(queries, query)
	}

	return queries
}

// PostalQuery returns the loosest candidate (postal code + country),
// used as the diagnostic sub-query during verification.
func (a Address) PostalQuery() string {
	return joinFields([]string{a.PostalCode, a.Country})
}

func joinFields(fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}
