package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Dogs", "dogs"},
		{"whitespace to hyphen", "Exotic Birds", "exotic-birds"},
		{"punctuation stripped", "Exotic Birds!", "exotic-birds"},
		{"mixed case and symbols", "  Cats & Kittens  ", "cats-kittens"},
		{"multiple spaces collapse", "a   b", "a-b"},
		{"numbers kept", "Top 10 Toys", "top-10-toys"},
		{"already a slug", "exotic-birds", "exotic-birds"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

// Slugify must be idempotent: applying it to its own output changes nothing.
func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Exotic Birds!", "  Cats & Kittens  ", "Top 10 Toys", "a---b"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}
