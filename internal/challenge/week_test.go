package challenge_test

import (
	"testing"
	"time"

	"github.com/M-Muallim/ecosense-appv4/internal/challenge"
)

func TestWeekStart(t *testing.T) {
	// Lundi 6 janvier 2025
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
	}{
		{"monday morning", time.Date(2025, 1, 6, 0, 0, 1, 0, time.UTC)},
		{"monday midnight", monday},
		{"wednesday", time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC)},
		{"saturday night", time.Date(2025, 1, 11, 23, 59, 59, 0, time.UTC)},
		// Le dimanche appartient à la semaine entamée 6 jours plus tôt
		{"sunday", time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := challenge.WeekStart(c.now)
			if !got.Equal(monday) {
				t.Errorf("WeekStart(%v) = %v, want %v", c.now, got, monday)
			}
		})
	}
}

func TestWeekStartIsMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	now := time.Date(2025, 3, 13, 18, 45, 12, 0, loc)
	got := challenge.WeekStart(now)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("WeekStart not at midnight: %v", got)
	}
	if got.Weekday() != time.Monday {
		t.Errorf("WeekStart not a Monday: %v", got.Weekday())
	}
	if got.Location() != loc {
		t.Errorf("WeekStart changed location: %v", got.Location())
	}
}

func TestWeekStartStableAcrossWeek(t *testing.T) {
	// Tous les instants d'une même semaine donnent le même week_start
	base := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC) // un lundi
	want := challenge.WeekStart(base)
	for hours := 0; hours < 7*24; hours++ {
		now := base.Add(time.Duration(hours) * time.Hour)
		if got := challenge.WeekStart(now); !got.Equal(want) {
			t.Fatalf("WeekStart(%v) = %v, want %v", now, got, want)
		}
	}
	// La première seconde du lundi suivant bascule sur la semaine d'après
	next := challenge.WeekStart(base.AddDate(0, 0, 7))
	if !next.Equal(want.AddDate(0, 0, 7)) {
		t.Errorf("next week start = %v, want %v", next, want.AddDate(0, 0, 7))
	}
}
