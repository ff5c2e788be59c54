package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationDecision(t *testing.T) {
	accepted := ApplicationDecision("Maya", "Cosmetology", true, "")
	assert.Equal(t, "Your Application Has Been Accepted", accepted.Subject)
	assert.Contains(t, accepted.HTML, "Maya")
	assert.Contains(t, accepted.HTML, "Cosmetology")
	assert.Contains(t, accepted.HTML, "Congratulations")

	denied := ApplicationDecision("Maya", "Cosmetology", false, "Incomplete transcript")
	assert.Equal(t, "Update on Your Application", denied.Subject)
	assert.Contains(t, denied.HTML, "Incomplete transcript")
}

func TestAllTemplatesUseLayout(t *testing.T) {
	messages := []Message{
		ApplicationDecision("A", "P", true, ""),
		EnrollmentConfirmation("A", "2026-0001", "P", "2026-09-01"),
		SapAlert("A", "WARNING", 82.5),
		DisbursementNotice("A", 1849.50, "PELL"),
		DocumentRequest("A", "Government ID"),
		DocumentRejection("A", "Government ID", "illegible scan"),
		PaymentConfirmation("A", 250, "card"),
		AttendanceAlert("A", 300, 450),
		Milestone("A", 500),
		Graduation("A", "P"),
		LeadNurture("A", "P", 2),
	}

	for _, m := range messages {
		assert.NotEmpty(t, m.Subject)
		assert.Contains(t, m.HTML, "CampusOps")
		assert.Contains(t, m.HTML, "Best regards")
		assert.True(t, strings.Contains(m.HTML, "<html>"))
	}
}

func TestLeadNurtureStepClamping(t *testing.T) {
	first := LeadNurture("A", "Cosmetology", 0)
	assert.Contains(t, first.Subject, "Part 1")

	last := LeadNurture("A", "Cosmetology", 99)
	assert.Contains(t, last.Subject, "Part 3")
}
