package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/pkg/csvkit"
)

func exportTestStudent() *models.Student {
	campusID := int64(1)
	return &models.Student{
		ID:            7,
		StudentNumber: "2026-0007",
		FirstName:     "Maya",
		LastName:      "Okafor",
		Email:         "maya@example.com",
		Status:        models.StudentActive,
		CampusID:      &campusID,
		StartDate:     time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		TotalHours:    412.5,
		SapStatus:     models.SapSatisfactory,
	}
}

func TestStudentInfoTable(t *testing.T) {
	student := exportTestStudent()
	refs := &referenceMaps{
		campuses:  map[int64]string{1: "Downtown Campus"},
		programs:  map[int64]string{},
		schedules: map[int64]string{},
	}

	table := studentInfoTable([]*models.Student{student}, refs)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], `"Student Number"`)
	assert.Contains(t, lines[1], `"2026-0007"`)
	assert.Contains(t, lines[1], `"Downtown Campus"`)
	assert.Contains(t, lines[1], `"412.5"`)
	// Unset program and schedule render as empty cells
	assert.Contains(t, lines[1], `"",""`)
}

func TestAttendanceTableFlags(t *testing.T) {
	student := exportTestStudent()
	out := time.Date(2026, 2, 3, 16, 30, 0, 0, time.UTC)
	approver := int64(3)
	sessions := []*models.AttendanceSession{
		{
			ClockIn:        time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC),
			ClockOut:       &out,
			TotalHours:     7.5,
			TheoryHours:    1.88,
			PracticalHours: 5.62,
			IsCorrection:   true,
			ApprovedBy:     &approver,
		},
		{
			ClockIn: time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC),
		},
	}

	table := attendanceTable(student, sessions)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[1], `"2026-02-03 09:00"`)
	assert.Contains(t, lines[1], `"Yes","Yes"`)
	// Open session: no clock-out, not a correction
	assert.Contains(t, lines[2], `"No","No"`)
	assert.Contains(t, lines[2], `"",`)
}

func TestLedgerTableKeepsVoidedRows(t *testing.T) {
	student := exportTestStudent()
	reason := "posted twice"
	entries := []*models.LedgerEntry{
		{Kind: models.LedgerCharge, Description: "Kit fee", Amount: 250, CreatedAt: time.Now()},
		{Kind: models.LedgerCharge, Description: "Kit fee", Amount: 250, Voided: true, VoidReason: &reason, CreatedAt: time.Now()},
	}

	table := ledgerTable(student, entries)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[1], `"No",""`)
	assert.Contains(t, lines[2], `"Yes","posted twice"`)
}

func TestAuditTable(t *testing.T) {
	userID := int64(2)
	trail := []*models.AuditLogEntry{
		{
			Action:    models.AuditActionExportPacket,
			Target:    models.SchoolWideTarget,
			UserID:    &userID,
			Metadata:  []byte(`{"rowCount":12}`),
			CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	table := auditTable(trail)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[1], `"EXPORT_AUDIT_PACKET"`)
	assert.Contains(t, lines[1], `"school-wide"`)
	assert.Contains(t, lines[1], `"{""rowCount"":12}"`)
}

func TestAuditRowsMergeAcrossStudents(t *testing.T) {
	userID := int64(2)
	trailA := []*models.AuditLogEntry{
		{Action: models.AuditActionEnrollment, Target: "student", UserID: &userID, CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Action: models.AuditActionDocumentReview, Target: "student", UserID: &userID, CreatedAt: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)},
	}
	trailB := []*models.AuditLogEntry{
		{Action: models.AuditActionSapEvaluation, Target: "student", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	// The school-wide extract concatenates per-student trails
	merged := append(auditRows(trailA), auditRows(trailB)...)
	doc := csvkit.Document(auditHeaders, merged)
	lines := strings.Split(doc, "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[1], `"ENROLLMENT"`)
	assert.Contains(t, lines[3], `"SAP_EVALUATION"`)
}
