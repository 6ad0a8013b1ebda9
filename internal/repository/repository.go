// Package repository owns the engagement schema's access patterns. Every
// repository accepts a nil *gorm.DB and then reports ErrNotConfigured, which
// lets read paths degrade instead of crashing when the store is absent.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
)

func conn(ctx context.Context, database *gorm.DB) (*gorm.DB, error) {
	if database == nil {
		return nil, svcErr.ErrNotConfigured
	}
	return database.WithContext(ctx), nil
}

// asConflict turns a unique-key violation into ErrWriteConflict.
func asConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", svcErr.ErrWriteConflict, err)
	}
	return err
}

// ignoreNotFound keeps expected misses out of the error metrics.
func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ignoreConflict keeps lost insert races out of the error metrics.
func ignoreConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
