package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
)

// ProfileRepository manages the optional public handle joined into leaderboards.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Upsert inserts or updates a profile keyed by user id.
//
// Behavior:
//   - If user_id exists → handle and avatar are overwritten.
//   - If it doesn't exist → a new row is inserted.
//   - A handle already owned by another user → ErrWriteConflict.
func (r *ProfileRepository) Upsert(ctx context.Context, p *db.Profile) error {
	p.UserID = strings.TrimSpace(p.UserID)
	p.Handle = strings.TrimSpace(p.Handle)
	if p.UserID == "" {
		return svcErr.Invalid("user_id", "must not be empty")
	}
	if p.Handle == "" {
		return svcErr.Invalid("handle", "must not be empty")
	}
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpUpsertProfile)
	err = conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"handle", "avatar_url", "updated_at"}),
	}).Create(p).Error
	done(ignoreConflict(err))
	return asConflict(err)
}

// Get returns the profile for userID, or nil when the user has none.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*db.Profile, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var p db.Profile
	err = conn.Where("user_id = ?", userID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
