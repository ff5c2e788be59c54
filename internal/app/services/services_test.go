package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
)

func TestMapStudentNotFound(t *testing.T) {
	assert.Equal(t, apperrors.ErrStudentNotFound, mapStudentNotFound(repositories.ErrStudentNotFound))

	wrapped := fmt.Errorf("loading student: %w", repositories.ErrStudentNotFound)
	assert.Equal(t, apperrors.ErrStudentNotFound, mapStudentNotFound(wrapped))

	// Infrastructure failures pass through untouched
	queryErr := errors.New("connection reset")
	assert.Equal(t, queryErr, mapStudentNotFound(queryErr))
	assert.Nil(t, mapStudentNotFound(nil))
}
