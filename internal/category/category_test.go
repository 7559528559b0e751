package category_test

import (
	"testing"

	"github.com/M-Muallim/ecosense-appv4/internal/category"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"plastic", "plastic"},
		{"Plastics", "plastic"},
		{"Bottles", "glass"},
		{"bottle", "glass"},
		{"CANS", "metal"},
		{"can", "metal"},
		{"boxes", "cardboard"},
		{"Cardboards", "cardboard"},
		{"clothing", "clothes"},
		{"organicwaste", "organic"},
		{"waste", "organic"},
		{"papers", "paper"},
		{"glasses", "glass"},
		{"item", ""},
		{"Items", ""},
		// Les labels inconnus passent tels quels en minuscules
		{"unknownthing", "unknownthing"},
		{"Styrofoam", "styrofoam"},
	}

	for _, c := range cases {
		if got := category.Normalize(c.raw); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	inputs := []string{"Bottles", "plastic", "whatever", "Items"}
	for _, in := range inputs {
		first := category.Normalize(in)
		for i := 0; i < 3; i++ {
			if got := category.Normalize(in); got != first {
				t.Fatalf("Normalize(%q) not deterministic: %q then %q", in, first, got)
			}
		}
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"plastic", 10},
		{"Plastics", 10},
		{"clothing", 10},
		{"metal", 7},
		{"cans", 7},
		{"glass", 7},
		{"bottles", 7},
		{"paper", 4},
		{"cardboard", 4},
		{"organicwaste", 4},
		// Catégorie inconnue : 1 point par défaut
		{"styrofoam", 1},
		{"items", 1},
	}

	for _, c := range cases {
		if got := category.Points(c.raw); got != c.want {
			t.Errorf("Points(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}
