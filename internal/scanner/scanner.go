package scanner

import (
	"database/sql"

	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/lib/pq"
)

// rowScanner couvre pgx.Row et pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile.
// Utilise les types sql.Null* et les convertit automatiquement.
func ScanUserProfile(scanner rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var displayName, photoURL, bio sql.NullString

	err := scanner.Scan(
		&user.ID, &user.FirebaseUID, &user.Email,
		&displayName, &photoURL, &bio,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.DisplayName = utils.NullStringToString(displayName)
	user.PhotoURL = utils.NullStringToString(photoURL)
	user.Bio = utils.NullStringToString(bio)

	return &user, nil
}

// ScanChallenge scanne une ligne SQL vers un Challenge avec pq.Array pour les tags.
func ScanChallenge(scanner rowScanner) (*model.Challenge, error) {
	var c model.Challenge

	err := scanner.Scan(
		&c.ID, &c.Title, &c.Description, &c.Points, pq.Array(&c.Tags),
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ScanRecycledItem scanne une ligne SQL vers un RecycledItem.
func ScanRecycledItem(scanner rowScanner) (*model.RecycledItem, error) {
	var item model.RecycledItem
	var locationID sql.NullString

	err := scanner.Scan(
		&item.ID, &item.UserID, &item.Type, &locationID, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.LocationID = utils.NullStringToPointer(locationID)

	return &item, nil
}

// ScanUserChallenge scanne une ligne SQL vers un UserChallenge.
func ScanUserChallenge(scanner rowScanner) (*model.UserChallenge, error) {
	var uc model.UserChallenge
	var completedAt sql.NullTime

	err := scanner.Scan(
		&uc.ID, &uc.UserID, &uc.ChallengeID, &uc.WeekStart,
		&uc.Completed, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	uc.CompletedAt = utils.NullTimeToPointer(completedAt)

	return &uc, nil
}

// ScanLeaderboardEntry scanne une ligne SQL vers un LeaderboardEntry.
func ScanLeaderboardEntry(scanner rowScanner) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry

	err := scanner.Scan(
		&entry.ID, &entry.UserID, &entry.Level,
		&entry.WeightedScore, &entry.LeveledUpAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
