package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", fmt.Errorf("add topic: %w", Invalid("weight", "must be positive")), codes.InvalidArgument},
		{"not found", gorm.ErrRecordNotFound, codes.NotFound},
		{"no candidates", fmt.Errorf("select: %w", ErrNoCandidates), codes.FailedPrecondition},
		{"not configured", ErrNotConfigured, codes.Unavailable},
		{"duplicate", gorm.ErrDuplicatedKey, codes.AlreadyExists},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"other", fmt.Errorf("boom"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.Code(Map(tc.err)))
		})
	}

	assert.Nil(t, Map(nil))
}

func TestMap_PassesThroughStatus(t *testing.T) {
	in := InvalidArgument("limit out of range")
	assert.Equal(t, in, Map(in))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Invalid("content", "must not be empty"))

	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrNoCandidates))
	assert.EqualError(t, Invalid("content", "must not be empty"), "invalid content: must not be empty")
}
