package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentNumberPrefix(t *testing.T) {
	assert.Equal(t, "2026-", studentNumberPrefix(2026))
	assert.Equal(t, "2030-", studentNumberPrefix(2030))
}

func TestStudentCreateAllocatesNumberInInsert(t *testing.T) {
	// The number must come from MAX(sequence)+1 inside the insert itself,
	// not from a separately read count that can go stale between
	// concurrent enrollments.
	assert.True(t, strings.Contains(studentInsertQuery, "MAX(split_part(student_number, '-', 2)::int)"))
	assert.True(t, strings.Contains(studentInsertQuery, "RETURNING id, student_number"))
	assert.False(t, strings.Contains(studentInsertQuery, "COUNT(*)"))
}
