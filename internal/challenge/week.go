package challenge

import "time"

// WeekStart retourne le lundi 00:00 (heure locale) de la semaine de now.
// Le dimanche appartient à la semaine commencée 6 jours plus tôt.
func WeekStart(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := now.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}
