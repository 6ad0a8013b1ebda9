package repository

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
	"github.com/colegottdank/debateai-engagement/internal/utils/pagination"
)

// TopicRepository manages the rotation pool.
// Topics are created, edited and disabled but never deleted, so history rows
// always resolve.
type TopicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new repository bound to the given DB connection.
func NewTopicRepository(database *gorm.DB) *TopicRepository {
	return &TopicRepository{db: database}
}

// TopicPatch is a partial topic update. Nil fields are left untouched.
type TopicPatch struct {
	Content       *string
	PresenterName *string
	PresenterID   *string
	Category      *string
	Weight        *float64
	Enabled       *bool
}

// TopicFilter narrows List.
type TopicFilter struct {
	EnabledOnly bool
	Category    string
}

// ValidateTopic enforces the write-time invariants of a pool item.
func ValidateTopic(t *db.Topic) error {
	if strings.TrimSpace(t.Content) == "" {
		return svcErr.Invalid("content", "must not be empty")
	}
	if strings.TrimSpace(t.PresenterName) == "" {
		return svcErr.Invalid("presenter_name", "must not be empty")
	}
	if math.IsNaN(t.Weight) || math.IsInf(t.Weight, 0) || t.Weight <= 0 {
		return svcErr.Invalid("weight", "must be a positive number")
	}
	return nil
}

// Create validates and inserts a topic.
//
// Behavior:
//   - Content and presenter are trimmed; empty category becomes "general".
//   - Non-positive weight or empty content → *ValidationError, nothing written.
func (r *TopicRepository) Create(ctx context.Context, t *db.Topic) error {
	normalizeTopic(t)
	if err := ValidateTopic(t); err != nil {
		return err
	}
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpCreateTopic)
	err = conn.Create(t).Error
	done(err)
	return err
}

// Get loads a topic by id. Missing ids return gorm.ErrRecordNotFound.
func (r *TopicRepository) Get(ctx context.Context, id uint64) (*db.Topic, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpGetTopic)
	var t db.Topic
	err = conn.First(&t, id).Error
	done(ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies a patch and re-validates the result before writing.
//
// Example:
//
//	w := 2.5
//	repo.Update(ctx, 7, TopicPatch{Weight: &w})
func (r *TopicRepository) Update(ctx context.Context, id uint64, patch TopicPatch) (*db.Topic, error) {
	t, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Content != nil {
		t.Content = *patch.Content
	}
	if patch.PresenterName != nil {
		t.PresenterName = *patch.PresenterName
	}
	if patch.PresenterID != nil {
		if *patch.PresenterID == "" {
			t.PresenterID = nil
		} else {
			pid := *patch.PresenterID
			t.PresenterID = &pid
		}
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Weight != nil {
		t.Weight = *patch.Weight
	}
	if patch.Enabled != nil {
		t.Enabled = *patch.Enabled
	}

	normalizeTopic(t)
	if err := ValidateTopic(t); err != nil {
		return nil, err
	}

	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	done := metrics.ObserveDB(metrics.DBOpUpdateTopic)
	err = conn.Model(&db.Topic{}).Where("id = ?", id).Updates(map[string]any{
		"content":        t.Content,
		"presenter_name": t.PresenterName,
		"presenter_id":   t.PresenterID,
		"category":       t.Category,
		"weight":         t.Weight,
		"enabled":        t.Enabled,
	}).Error
	done(err)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// SetEnabled flips the enabled flag. Disabling is the only way to retire a topic.
func (r *TopicRepository) SetEnabled(ctx context.Context, id uint64, enabled bool) error {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpUpdateTopic)
	res := conn.Model(&db.Topic{}).Where("id = ?", id).Update("enabled", enabled)
	done(res.Error)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// sqlite reports 0 rows when the value is unchanged; confirm existence
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// ListEnabled returns every selectable topic, ordered by id.
func (r *TopicRepository) ListEnabled(ctx context.Context) ([]db.Topic, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpListEnabledTopics)
	var topics []db.Topic
	err = conn.Where("enabled = ? AND weight > 0", true).Order("id ASC").Find(&topics).Error
	done(err)
	return topics, err
}

// List pages through the pool for admin screens.
//
// Behavior:
//   - Ordered by id ASC; the token resumes after the last id of the previous page.
//   - Optional enabled-only and category filters.
//   - Returns a next token only when more rows exist.
func (r *TopicRepository) List(
	ctx context.Context,
	filter TopicFilter,
	paginationToken *string,
	limit int,
) ([]db.Topic, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, svcErr.Invalid("pagination_token", err.Error())
	}
	if limit <= 0 {
		limit = 20
	}
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, nil, err
	}

	query := conn.Model(&db.Topic{}).Order("id ASC").Limit(limit + 1)
	if filter.EnabledOnly {
		query = query.Where("enabled = ?", true)
	}
	if category := strings.ToLower(strings.TrimSpace(filter.Category)); category != "" {
		query = query.Where("category = ?", category)
	}
	if cursor.AfterID > 0 {
		query = query.Where("id > ?", cursor.AfterID)
	}

	done := metrics.ObserveDB(metrics.DBOpListTopics)
	var topics []db.Topic
	err = query.Find(&topics).Error
	done(err)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(topics) > limit {
		topics = topics[:limit]
		token, _ := pagination.Encode(pagination.Cursor{AfterID: topics[limit-1].ID})
		nextToken = &token
	}
	return topics, nextToken, nil
}

// Count returns the pool size and how many of those topics are enabled.
func (r *TopicRepository) Count(ctx context.Context) (total, enabled int64, err error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return 0, 0, err
	}

	done := metrics.ObserveDB(metrics.DBOpCountTopics)
	defer func() { done(err) }()

	if err = conn.Model(&db.Topic{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = conn.Model(&db.Topic{}).Where("enabled = ?", true).Count(&enabled).Error; err != nil {
		return 0, 0, err
	}
	return total, enabled, nil
}

func normalizeTopic(t *db.Topic) {
	t.Content = strings.TrimSpace(t.Content)
	t.PresenterName = strings.TrimSpace(t.PresenterName)
	t.Category = strings.ToLower(strings.TrimSpace(t.Category))
	if t.Category == "" {
		t.Category = "general"
	}
}
