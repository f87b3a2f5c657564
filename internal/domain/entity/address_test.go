package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_CandidateQueries_FullAddress(t *testing.T) {
	addr := Address{
		Street:     "123 Main St",
		City:       "Springfield",
		Province:   "Illinois",
		Country:    "United States",
		PostalCode: "62701",
	}

	queries := addr.CandidateQueries()
	require.Len(t, queries, 4)
	assert.Equal(t, "123 Main St, Springfield, Illinois, United States, 62701", queries[0])
	assert.Equal(t, "Springfield, Illinois, United States, 62701", queries[1])
	assert.Equal(t, "Springfield, Illinois, 62701, United States", queries[2])
	assert.Equal(t, "62701, United States", queries[3])
}

func TestAddress_CandidateQueries_SkipsDuplicates(t *testing.T) {
	// Without a street the first two forms collapse to the same query.
	addr := Address{
		City:       "Springfield",
		Province:   "Illinois",
		Country:    "United States",
		PostalCode: "62701",
	}

	queries := addr.CandidateQueries()
	require.Len(t, queries, 3)
	assert.Equal(t, "Springfield, Illinois, United States, 62701", queries[0])
	assert.Equal(t, "Springfield, Illinois, 62701, United States", queries[1])
	assert.Equal(t, "62701, United States", queries[2])
}

func TestAddress_CandidateQueries_TrimsBlankFields(t *testing.T) {
	addr := Address{
		Street:     "  ",
		City:       "Lisbon",
		Country:    "Portugal",
		PostalCode: "1100-148",
	}

	queries := addr.CandidateQueries()
	require.NotEmpty(t, queries)
	assert.Equal(t, "Lisbon, Portugal, 1100-148", queries[0])
}

func TestAddress_PostalQuery(t *testing.T) {
	addr := Address{Country: "United States", PostalCode: "62701"}
	assert.Equal(t, "62701, United States", addr.PostalQuery())
}
