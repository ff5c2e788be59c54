package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunBulkTallies(t *testing.T) {
	failing := map[int64]bool{2: true, 4: true}
	var applied []int64

	result := runBulk("record", []int64{1, 2, 3, 4, 5}, func(id int64) error {
		if failing[id] {
			return errors.New("not found")
		}
		applied = append(applied, id)
		return nil
	})

	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "record 2")

	// Failures do not roll back ids that already succeeded
	assert.Equal(t, []int64{1, 3, 5}, applied)
	assert.Equal(t, 5, result.Succeeded+result.Failed)
}

func TestRunBulkAllSucceed(t *testing.T) {
	result := runBulk("record", []int64{10, 11}, func(int64) error { return nil })
	assert.Equal(t, 2, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)
}

func TestRunBulkEmpty(t *testing.T) {
	result := runBulk("record", nil, func(int64) error { return nil })
	assert.Zero(t, result.Succeeded)
	assert.Zero(t, result.Failed)
}
