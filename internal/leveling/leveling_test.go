package leveling_test

import (
	"testing"

	"github.com/M-Muallim/ecosense-appv4/internal/leveling"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		total    int
		level    int
		progress int
		needed   int
	}{
		{0, 1, 0, 24},
		{23, 1, 23, 24},
		{24, 2, 0, 24},
		{47, 2, 23, 24},
		{215, 9, 23, 24},
		// Bascule sur le palier de 48
		{216, 10, 0, 48},
		{263, 10, 47, 48},
		{264, 11, 0, 48},
		{695, 19, 47, 48},
		// Palier de 86
		{696, 20, 0, 86},
		{781, 20, 85, 86},
		{782, 21, 0, 86},
		{1555, 29, 85, 86},
		// Plafond au niveau 30
		{1556, 30, 0, 88},
		{1643, 30, 87, 88},
		{1644, 30, 88, 88},
		{5000, 30, 3444, 88},
	}

	for _, c := range cases {
		got := leveling.Compute(c.total)
		if got.Level != c.level || got.Progress != c.progress || got.Needed != c.needed {
			t.Errorf("Compute(%d) = {level:%d progress:%d needed:%d}, want {level:%d progress:%d needed:%d}",
				c.total, got.Level, got.Progress, got.Needed, c.level, c.progress, c.needed)
		}
		if got.Total != c.total {
			t.Errorf("Compute(%d).Total = %d", c.total, got.Total)
		}
	}
}

func TestComputeLevelNeverExceedsCap(t *testing.T) {
	for total := 1500; total < 3000; total += 7 {
		if got := leveling.Compute(total); got.Level > 30 {
			t.Fatalf("Compute(%d).Level = %d, cap is 30", total, got.Level)
		}
	}
}

func TestComputeMonotonicLevel(t *testing.T) {
	prev := 0
	for total := 0; total <= 2000; total++ {
		got := leveling.Compute(total)
		if got.Level < prev {
			t.Fatalf("level decreased at total=%d: %d -> %d", total, prev, got.Level)
		}
		prev = got.Level
	}
}
