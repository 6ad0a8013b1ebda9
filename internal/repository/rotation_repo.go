package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
)

// RotationRepository is the append-only history log of daily picks.
type RotationRepository struct {
	db *gorm.DB
}

// NewRotationRepository creates a new repository bound to the given DB connection.
func NewRotationRepository(database *gorm.DB) *RotationRepository {
	return &RotationRepository{db: database}
}

// GetByDate returns the record for day with its topic preloaded, or nil when
// nothing has been shown that day.
func (r *RotationRepository) GetByDate(ctx context.Context, day string) (*db.RotationRecord, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpGetRotationByDate)
	var rec db.RotationRecord
	err = conn.Preload("Topic").Where("shown_date = ?", day).Take(&rec).Error
	done(ignoreNotFound(err))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert records topicID as shown on day.
//
// Behavior:
//   - Plain INSERT, no upsert: the unique shown_date index decides races.
//   - A losing writer gets ErrWriteConflict and is expected to re-read.
func (r *RotationRepository) Insert(ctx context.Context, topicID uint64, day string) (*db.RotationRecord, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	rec := db.RotationRecord{TopicID: topicID, ShownDate: day}
	done := metrics.ObserveDB(metrics.DBOpInsertRotation)
	err = conn.Omit("Topic").Create(&rec).Error
	done(ignoreConflict(err))
	if err != nil {
		return nil, asConflict(err)
	}
	return &rec, nil
}

// RecentlyShown returns the ids of topics shown on or after sinceDay.
func (r *RotationRepository) RecentlyShown(ctx context.Context, sinceDay string) (map[uint64]struct{}, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpRecentlyShown)
	var ids []uint64
	err = conn.Model(&db.RotationRecord{}).
		Where("shown_date >= ?", sinceDay).
		Distinct("topic_id").
		Pluck("topic_id", &ids).Error
	done(err)
	if err != nil {
		return nil, err
	}

	shown := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		shown[id] = struct{}{}
	}
	return shown, nil
}

// History returns the most recent records first, topics preloaded.
func (r *RotationRepository) History(ctx context.Context, limit int) ([]db.RotationRecord, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpRotationHistory)
	var recs []db.RotationRecord
	err = conn.Preload("Topic").Order("shown_date DESC").Limit(limit).Find(&recs).Error
	done(err)
	return recs, err
}
