package services

import (
	"fmt"

	"github.com/meridian/campusops/internal/app/models/dto"
)

// runBulk applies an operation to each id independently and tallies the
// outcome. A failed id never rolls back the ids that already succeeded.
func runBulk(label string, ids []int64, apply func(id int64) error) *dto.BulkResultResponse {
	result := &dto.BulkResultResponse{}
	for _, id := range ids {
		if err := apply(id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s %d: %v", label, id, err))
			continue
		}
		result.Succeeded++
	}
	return result
}
