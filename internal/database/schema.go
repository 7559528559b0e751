package database

import "context"

// InitSchema crée les tables si elles n'existent pas encore.
// L'index unique sur user_challenges est indispensable : la création paresseuse
// des lignes s'appuie dessus pour résoudre les créations concurrentes.
func InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			firebase_uid TEXT UNIQUE NOT NULL,
			email TEXT NOT NULL,
			display_name TEXT,
			photo_url TEXT,
			bio TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS leaderboard (
			id UUID PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			level INT NOT NULL DEFAULT 1,
			weighted_score INT NOT NULL DEFAULT 0,
			leveled_up_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS recycled_items (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			type TEXT NOT NULL,
			location_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recycled_items_user_created
			ON recycled_items(user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS challenges (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			points INT NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS current_week_challenges (
			id UUID PRIMARY KEY,
			challenge_id UUID NOT NULL REFERENCES challenges(id),
			week_start TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_challenges (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			challenge_id UUID NOT NULL REFERENCES challenges(id),
			week_start TIMESTAMPTZ NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			UNIQUE (user_id, challenge_id, week_start)
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
