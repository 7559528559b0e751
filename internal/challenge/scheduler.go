package challenge

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/logger"
	"github.com/google/uuid"
)

// weeklyCount est le nombre de challenges tirés au sort chaque semaine.
const weeklyCount = 3

// AssignWeekly sélectionne les challenges de la semaine courante.
// Relancer le job dans la même semaine est sans danger : la sélection est
// supprimée puis recréée pour ce week_start, et seules les lignes
// user_challenges non complétées sont purgées.
func AssignWeekly(ctx context.Context) error {
	return AssignWeeklyAt(ctx, time.Now())
}

// AssignWeeklyAt fait la même chose pour un instant donné (testabilité).
func AssignWeeklyAt(ctx context.Context, now time.Time) error {
	weekStart := WeekStart(now)

	// Purge de la sélection précédente pour cette semaine
	if _, err := database.DB.Exec(ctx,
		`DELETE FROM current_week_challenges WHERE week_start = $1`, weekStart,
	); err != nil {
		return fmt.Errorf("could not clear current week challenges: %w", err)
	}

	// On repart d'une ardoise propre sans pénaliser ceux qui ont déjà fini
	if _, err := database.DB.Exec(ctx,
		`DELETE FROM user_challenges WHERE week_start = $1 AND completed = FALSE`, weekStart,
	); err != nil {
		return fmt.Errorf("could not clear stale user challenges: %w", err)
	}

	rows, err := database.DB.Query(ctx, `SELECT id FROM challenges`)
	if err != nil {
		return fmt.Errorf("could not query challenge catalog: %w", err)
	}
	defer rows.Close()

	var catalog []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("could not scan challenge id: %w", err)
		}
		catalog = append(catalog, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	selected := pickRandom(catalog, weeklyCount)

	for _, challengeID := range selected {
		if _, err := database.DB.Exec(ctx,
			`INSERT INTO current_week_challenges (id, challenge_id, week_start) VALUES ($1, $2, $3)`,
			uuid.NewString(), challengeID, weekStart,
		); err != nil {
			return fmt.Errorf("could not insert current week challenge: %w", err)
		}
	}

	logger.Success("Assigned %d challenges for week of %s", len(selected), weekStart.Format("2006-01-02"))
	return nil
}

// pickRandom tire n éléments distincts par shuffle complet.
// Le catalogue est petit, pas besoin de reservoir sampling.
func pickRandom(ids []string, n int) []string {
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
