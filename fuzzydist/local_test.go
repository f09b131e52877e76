package fuzzydist_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/Alfex4936/fuzzydist/fuzzydist"
)

func TestLocalLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		s, t string
		want int
	}{
		{"trivial substring match", "long", "A long sentence", 0},
		// Asymmetric: matching a long query into a short target deletes
		// almost the whole query.
		{"reversed is expensive", "A long sentence", "long", 11},
		{"one character query", "g", "A long sentence", 0},
		{"empty source", "", "A long sentence", 0},
		{"empty target", "A long sentence", "", 15},
		{"both empty", "", "", 0},
		{"suffix match", "car", "racecar", 0},
		{"search term with typos", "Piñata", "Pinecone tree", 4},
		{"non-english", "Dolphin", "El delfín español", 5},
		{"non-english reversed", "El delfín español", "Dolphin", 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzydist.LocalLevenshtein(tt.s, tt.t))
		})
	}
}

func TestLocalLevenshtein_BoundedBySourceLength(t *testing.T) {
	pairs := [][2]string{
		{"A long sentence", "long"},
		{"kitten", "sitting"},
		{"unrelated", "SCREAMING"},
		{"🧑‍🔬", "🧑"},
	}
	for _, p := range pairs {
		d := fuzzydist.LocalLevenshtein(p[0], p[1])
		if limit := utf8.RuneCountInString(p[0]); d > limit {
			t.Errorf("LocalLevenshtein(%q, %q) = %d, want <= %d", p[0], p[1], d, limit)
		}
	}
}

func TestLocalLevenshteinIgnoreASCIICase(t *testing.T) {
	tests := []struct {
		name string
		s, t string
		want int
	}{
		{"folded substring match", "LONG", "A long sentence", 0},
		{"slightly related", "SCREAMING", "unrelated", 7},
		{"shorter query gets closer", "SCREAM", "unrelated", 4},
		{"folded reversed", "A long sentence", "LONG", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzydist.LocalLevenshteinIgnoreASCIICase(tt.s, tt.t))
		})
	}
}
