package challenge_test

import (
	"testing"

	"github.com/M-Muallim/ecosense-appv4/internal/challenge"
	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	cases := []struct {
		title    string
		category string
		required int
	}{
		{"Recycle 5 Plastics", "plastic", 5},
		{"Recycle 10 Glass Items", "glass", 10},
		{"Recycle 3 Bottles", "glass", 3},
		{"Recycle 7 Cans", "metal", 7},
		{"Recycle 4 Boxes", "cardboard", 4},
		{"recycle 12 paper", "paper", 12},
		{"Recycle 2 Clothing", "clothes", 2},
		{"Recycle 6 OrganicWaste", "organic", 6},
	}

	for _, c := range cases {
		got, ok := challenge.ParseTitle(c.title)
		assert.True(t, ok, "expected %q to parse", c.title)
		assert.Equal(t, c.category, got.Category, "category for %q", c.title)
		assert.Equal(t, c.required, got.Required, "required for %q", c.title)
	}
}

func TestParseTitleRejectsNonThresholdChallenges(t *testing.T) {
	titles := []string{
		"Recycle 3 days in a row",         // matche mais "days" reste inconnu
		"Visit a recycling center",
		"Invite a friend",
		"",
	}

	// "Recycle 3 days in a row" matche le motif : la catégorie extraite est
	// "days", qui ne correspondra jamais à un bucket de stats.
	got, ok := challenge.ParseTitle(titles[0])
	assert.True(t, ok)
	assert.Equal(t, "days", got.Category)

	for _, title := range titles[1:] {
		_, ok := challenge.ParseTitle(title)
		assert.False(t, ok, "expected %q not to parse", title)
	}
}
