package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lower cases", input: "MAIN STREET", expected: "main street"},
		{name: "strips diacritics", input: "Zürich", expected: "zurich"},
		{name: "strips combined diacritics", input: "São Paulo", expected: "sao paulo"},
		{name: "collapses whitespace", input: "  123   Main\tSt  ", expected: "123 main st"},
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \t\n ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestTextEqual(t *testing.T) {
	assert.True(t, TextEqual("Québec", "quebec"))
	assert.True(t, TextEqual(" New  York ", "new york"))
	assert.False(t, TextEqual("Ontario", "Quebec"))
}
