package utils

import (
	"context"
	"fmt"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
)

// IncrementUserScore incrémente le weighted_score d'un utilisateur.
// L'incrément est fait côté base (jamais en lecture-modification-écriture
// applicative) pour rester correct sous requêtes concurrentes.
func IncrementUserScore(ctx context.Context, userID string, points int) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE leaderboard SET weighted_score = weighted_score + $1 WHERE user_id = $2`,
		points, userID,
	)
	if err != nil {
		return fmt.Errorf("impossible d'incrémenter le score: %w", err)
	}

	return nil
}
