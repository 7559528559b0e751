package model

import "time"

// LeaderboardEntry est la ligne de score d'un utilisateur, créée à
// l'inscription avec level=1 et weighted_score=0. Le score ne fait que
// monter ; leveled_up_at ancre la fenêtre de progression du niveau courant.
type LeaderboardEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Level         int       `json:"level"`
	WeightedScore int       `json:"weightedScore"`
	LeveledUpAt   time.Time `json:"leveledUpAt"`
}

// LeaderboardRow est une ligne du top 10 public, enrichie avec le profil.
type LeaderboardRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Level         int    `json:"level"`
	WeightedScore int    `json:"weightedScore"`
	Rank          int    `json:"rank"`
}
