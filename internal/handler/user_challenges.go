package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/M-Muallim/ecosense-appv4/internal/challenge"
	"github.com/M-Muallim/ecosense-appv4/internal/database"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/scanner"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation est le code SQLSTATE d'une violation de contrainte unique.
const uniqueViolation = "23505"

// activeChallenge est un challenge de la semaine joint à sa définition.
type activeChallenge struct {
	ChallengeID string
	Title       string
	Description string
	Points      int
}

func getUserChallenge(ctx context.Context, userID, challengeID string, weekStart time.Time) (*model.UserChallenge, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT id, user_id, challenge_id, week_start, completed, completed_at
		 FROM user_challenges
		 WHERE user_id = $1 AND challenge_id = $2 AND week_start = $3`,
		userID, challengeID, weekStart,
	)
	return scanner.ScanUserChallenge(row)
}

// fetchOrCreateUserChallenge matérialise paresseusement la ligne
// user_challenges du triplet (user, challenge, semaine). Si un appel
// concurrent a créé la ligne entre temps, la violation d'unicité est
// rattrapée par une relecture — jamais remontée à l'appelant.
func fetchOrCreateUserChallenge(ctx context.Context, userID, challengeID string, weekStart time.Time) (*model.UserChallenge, error) {
	uc, err := getUserChallenge(ctx, userID, challengeID, weekStart)
	if err == nil {
		return uc, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	_, err = database.DB.Exec(ctx,
		`INSERT INTO user_challenges (id, user_id, challenge_id, week_start, completed)
		 VALUES ($1, $2, $3, $4, FALSE)`,
		uuid.NewString(), userID, challengeID, weekStart,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
			return nil, err
		}
		// Ligne créée par une requête concurrente, on la relit
	}

	return getUserChallenge(ctx, userID, challengeID, weekStart)
}

// GetUserChallenges renvoie les challenges de la semaine courante annotés
// avec l'avancement de l'utilisateur, en complétant au passage ceux dont le
// seuil est atteint. Les points d'un challenge ne sont crédités qu'une seule
// fois, même sous appels concurrents.
func GetUserChallenges(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	firebaseUID := vars["firebaseUid"]

	ctx := context.Background()

	user, err := utils.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get user", err)
		return
	}

	weekStart := challenge.WeekStart(time.Now())

	rows, err := database.DB.Query(ctx, `
		SELECT cwc.challenge_id, c.title, c.description, c.points
		FROM current_week_challenges cwc
		INNER JOIN challenges c ON c.id = cwc.challenge_id
		WHERE cwc.week_start = $1
	`, weekStart)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query current week challenges", err)
		return
	}
	defer rows.Close()

	var active []activeChallenge
	for rows.Next() {
		var ac activeChallenge
		if err := rows.Scan(&ac.ChallengeID, &ac.Title, &ac.Description, &ac.Points); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan challenge row", err)
			return
		}
		active = append(active, ac)
	}
	if err := rows.Err(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read challenge rows", err)
		return
	}

	stats, err := weeklyStats(ctx, user.ID, weekStart)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user stats", err)
		return
	}

	userChallenges := []model.UserChallengeProgress{}
	for _, ac := range active {
		uc, err := fetchOrCreateUserChallenge(ctx, user.ID, ac.ChallengeID, weekStart)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not load user challenge", err)
			return
		}

		// Seuls les titres "Recycle <N> <Catégorie>" sont auto-évalués ;
		// les autres restent affichés mais jamais complétés automatiquement.
		var userCount, required int
		criteria, parsed := challenge.ParseTitle(ac.Title)
		if parsed {
			required = criteria.Required
			userCount = stats[criteria.Category]
		}

		if parsed && !uc.Completed && userCount >= required {
			if err := completeUserChallenge(ctx, uc, user.ID, ac.Points); err != nil {
				utils.Error(w, http.StatusInternalServerError, "could not complete challenge", err)
				return
			}
		}

		userChallenges = append(userChallenges, model.UserChallengeProgress{
			ID:          uc.ID,
			ChallengeID: ac.ChallengeID,
			Title:       ac.Title,
			Description: ac.Description,
			Points:      ac.Points,
			Completed:   uc.Completed,
			CompletedAt: uc.CompletedAt,
			UserCount:   userCount,
			Required:    required,
		})
	}

	utils.Success(w, userChallenges)
}

// completeUserChallenge fait passer la ligne à completed=true et crédite les
// points. La garde "WHERE completed = FALSE" fait de la transition + crédit
// une opération au-plus-une-fois : l'appel concurrent qui perd la course ne
// touche aucune ligne et ne crédite rien.
func completeUserChallenge(ctx context.Context, uc *model.UserChallenge, userID string, points int) error {
	tag, err := database.DB.Exec(ctx,
		`UPDATE user_challenges
		 SET completed = TRUE, completed_at = NOW()
		 WHERE id = $1 AND completed = FALSE`,
		uc.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		if err := utils.IncrementUserScore(ctx, userID, points); err != nil {
			return err
		}
		now := time.Now()
		uc.Completed = true
		uc.CompletedAt = &now
		return nil
	}

	// Une autre requête a gagné la course : relire l'état final
	fresh, err := getUserChallenge(ctx, userID, uc.ChallengeID, uc.WeekStart)
	if err != nil {
		return err
	}
	*uc = *fresh
	return nil
}
