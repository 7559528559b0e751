package model

import "time"

// Challenge est une définition du catalogue statique, créée hors bande.
// Titre au format "Recycle <N> <Catégorie>[s]" pour les challenges
// auto-évaluables.
type Challenge struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      int      `json:"points"`
	Tags        []string `json:"tags,omitempty"`
}

// CurrentWeekChallenge est la sélection hebdomadaire du scheduler :
// au plus 3 lignes par week_start, supprimées au run suivant.
type CurrentWeekChallenge struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challengeId"`
	WeekStart   time.Time `json:"weekStart"`
}

// UserChallenge matérialise la participation d'un utilisateur à un challenge
// de la semaine. Clé unique (user_id, challenge_id, week_start) ; une fois
// completed=true la ligne ne revient jamais en arrière.
type UserChallenge struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ChallengeID string     `json:"challengeId"`
	WeekStart   time.Time  `json:"weekStart"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// UserChallengeProgress est la vue renvoyée par GET /users/{uid}/challenges :
// le challenge annoté avec l'avancement réel de l'utilisateur, pour que le
// client affiche "x/y" sans recalculer.
type UserChallengeProgress struct {
	ID          string     `json:"id"`
	ChallengeID string     `json:"challengeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UserCount   int        `json:"userCount"`
	Required    int        `json:"required"`
}
