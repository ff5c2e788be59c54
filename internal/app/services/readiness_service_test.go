package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridian/campusops/internal/app/models"
)

func TestDocumentScore(t *testing.T) {
	tests := []struct {
		name     string
		approved int
		required int
		expected int
	}{
		{"all approved", 5, 5, 40},
		{"four of five", 4, 5, 32},
		{"none approved", 0, 5, 0},
		{"over-complete capped", 7, 5, 40},
		{"no required types", 0, 0, 40},
		{"one of three", 1, 3, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DocumentScore(tt.approved, tt.required))
		})
	}
}

func TestDocumentScoreMonotonic(t *testing.T) {
	// More approved documents never lower the score
	for required := 1; required <= 10; required++ {
		prev := -1
		for approved := 0; approved <= required+3; approved++ {
			score := DocumentScore(approved, required)
			assert.GreaterOrEqual(t, score, prev,
				"score dropped at approved=%d required=%d", approved, required)
			assert.LessOrEqual(t, score, 40)
			prev = score
		}
	}
}

func TestAttendanceScore(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("on pace student scores full", func(t *testing.T) {
		// 200 days in, 1200 actual vs ~1153.8 expected, capped at 100%
		start := now.AddDate(0, 0, -200)
		assert.Equal(t, 20, AttendanceScore(1200, 1500, 52, start, now))
	})

	t.Run("half pace student scores half", func(t *testing.T) {
		// 100 days in, expected ~576.9, actual 288.45 is 50%
		start := now.AddDate(0, 0, -100)
		assert.Equal(t, 10, AttendanceScore(288.45, 1500, 52, start, now))
	})

	t.Run("no hours scores zero", func(t *testing.T) {
		start := now.AddDate(0, 0, -30)
		assert.Equal(t, 0, AttendanceScore(0, 1500, 52, start, now))
	})

	t.Run("first day clamps to one elapsed day", func(t *testing.T) {
		// avg 5.769 hours/day expected, 6 attended caps at 100%
		assert.Equal(t, 20, AttendanceScore(6, 1500, 52, now, now))
	})

	t.Run("expected hours capped at program total", func(t *testing.T) {
		// Far past the program end the projection stops at total hours
		start := now.AddDate(-3, 0, 0)
		assert.Equal(t, 20, AttendanceScore(1500, 1500, 52, start, now))
		assert.Equal(t, 10, AttendanceScore(750, 1500, 52, start, now))
	})
}

func TestSapScore(t *testing.T) {
	tests := []struct {
		name       string
		status     models.SapStatus
		hoursSince float64
		interval   int
		expected   int
	}{
		{"satisfactory current", models.SapSatisfactory, 100, 450, 20},
		{"satisfactory overdue", models.SapSatisfactory, 450, 450, 17},
		{"warning current", models.SapWarning, 100, 450, 15},
		{"warning overdue", models.SapWarning, 500, 450, 12},
		{"probation current", models.SapProbation, 100, 450, 10},
		{"probation overdue", models.SapProbation, 450, 450, 7},
		{"appeal pending current", models.SapAppealPending, 0, 450, 10},
		{"appeal approved current", models.SapAppealApproved, 0, 450, 10},
		{"suspension floors at zero", models.SapSuspension, 450, 450, 0},
		{"appeal denied", models.SapAppealDenied, 0, 450, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SapScore(tt.status, tt.hoursSince, tt.interval))
		})
	}
}

func TestFinancialScore(t *testing.T) {
	assert.Equal(t, 20, FinancialScore(false, ""))
	assert.Equal(t, 20, FinancialScore(true, models.VerificationComplete))
	assert.Equal(t, 10, FinancialScore(true, models.VerificationInProgress))
	assert.Equal(t, 0, FinancialScore(true, "not_started"))
	assert.Equal(t, 0, FinancialScore(true, ""))
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, models.BucketReady, BucketFor(100))
	assert.Equal(t, models.BucketReady, BucketFor(90))
	assert.Equal(t, models.BucketAttention, BucketFor(89))
	assert.Equal(t, models.BucketAttention, BucketFor(70))
	assert.Equal(t, models.BucketCritical, BucketFor(69))
	assert.Equal(t, models.BucketCritical, BucketFor(0))
}

func TestCompositeScoreWorkedExamples(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -200)

	t.Run("ready student", func(t *testing.T) {
		doc := DocumentScore(4, 5)
		att := AttendanceScore(1200, 1500, 52, start, now)
		sap := SapScore(models.SapSatisfactory, 100, 450)
		fin := FinancialScore(false, "")

		assert.Equal(t, 32, doc)
		assert.Equal(t, 20, att)
		assert.Equal(t, 20, sap)
		assert.Equal(t, 20, fin)

		overall := doc + att + sap + fin
		assert.Equal(t, 92, overall)
		assert.Equal(t, models.BucketReady, BucketFor(overall))
	})

	t.Run("probation overdue drops to attention", func(t *testing.T) {
		doc := DocumentScore(4, 5)
		att := AttendanceScore(1200, 1500, 52, start, now)
		sap := SapScore(models.SapProbation, 450, 450)
		fin := FinancialScore(false, "")

		assert.Equal(t, 7, sap)

		overall := doc + att + sap + fin
		assert.Equal(t, 79, overall)
		assert.Equal(t, models.BucketAttention, BucketFor(overall))
	})
}

func TestCompositeScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	statuses := []models.SapStatus{
		models.SapSatisfactory, models.SapWarning, models.SapProbation,
		models.SapSuspension, models.SapAppealPending, models.SapAppealApproved,
		models.SapAppealDenied,
	}
	verStatuses := []string{models.VerificationComplete, models.VerificationInProgress, "not_started", ""}

	for i := 0; i < 500; i++ {
		required := rng.Intn(8)
		approved := rng.Intn(12)
		programHours := 300 + rng.Intn(2000)
		weeks := 10 + rng.Intn(90)
		start := now.AddDate(0, 0, -rng.Intn(800))
		actual := rng.Float64() * 2200
		status := statuses[rng.Intn(len(statuses))]
		hoursSince := rng.Float64() * 900
		interval := 100 + rng.Intn(600)
		verRequired := rng.Intn(2) == 0
		verStatus := verStatuses[rng.Intn(len(verStatuses))]

		doc := DocumentScore(approved, required)
		att := AttendanceScore(actual, programHours, weeks, start, now)
		sap := SapScore(status, hoursSince, interval)
		fin := FinancialScore(verRequired, verStatus)
		overall := doc + att + sap + fin

		assert.GreaterOrEqual(t, doc, 0)
		assert.LessOrEqual(t, doc, 40)
		assert.GreaterOrEqual(t, att, 0)
		assert.LessOrEqual(t, att, 20)
		assert.GreaterOrEqual(t, sap, 0)
		assert.LessOrEqual(t, sap, 20)
		assert.GreaterOrEqual(t, fin, 0)
		assert.LessOrEqual(t, fin, 20)
		assert.GreaterOrEqual(t, overall, 0)
		assert.LessOrEqual(t, overall, 100)

		bucket := BucketFor(overall)
		switch {
		case overall >= 90:
			assert.Equal(t, models.BucketReady, bucket)
		case overall >= 70:
			assert.Equal(t, models.BucketAttention, bucket)
		default:
			assert.Equal(t, models.BucketCritical, bucket)
		}
	}
}
