package email

import "fmt"

// Message is a rendered notification: subject plus HTML body. Rendering is
// output-only; dispatch is the Service's job.
type Message struct {
	Subject string
	HTML    string
}

// layout wraps body content in the shared header/footer
func layout(body string) string {
	return fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">CampusOps</h2>
				%s
				<p>Best regards,<br>The CampusOps Team</p>
			</div>
		</body>
		</html>
	`, body)
}

// ApplicationDecision renders the accept/deny notice for an applicant
func ApplicationDecision(firstName, programName string, accepted bool, reason string) Message {
	if accepted {
		return Message{
			Subject: "Your Application Has Been Accepted",
			HTML: layout(fmt.Sprintf(`
				<p>Hello %s,</p>
				<p>Congratulations! Your application to the <strong>%s</strong> program has been accepted. Our registrar will reach out with enrollment details shortly.</p>
			`, firstName, programName)),
		}
	}
	return Message{
		Subject: "Update on Your Application",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>We are sorry to inform you that your application to the <strong>%s</strong> program was not accepted.</p>
			<p>Reason: %s</p>
		`, firstName, programName, reason)),
	}
}

// EnrollmentConfirmation renders the welcome notice for a new student
func EnrollmentConfirmation(firstName, studentNumber, programName, startDate string) Message {
	return Message{
		Subject: "Enrollment Confirmation - Welcome!",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Your enrollment in the <strong>%s</strong> program is confirmed. Your student number is <strong>%s</strong> and your start date is %s.</p>
			<p>Please bring a government-issued ID on your first day.</p>
		`, firstName, programName, studentNumber, startDate)),
	}
}

// SapAlert renders a Satisfactory Academic Progress status notice
func SapAlert(firstName, status string, completionRate float64) Message {
	return Message{
		Subject: "Satisfactory Academic Progress Notice",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Your Satisfactory Academic Progress status has been updated to <strong>%s</strong> with a completion rate of %.1f%%.</p>
			<p>Please contact the registrar's office to discuss what this means for your financial aid eligibility.</p>
		`, firstName, status, completionRate)),
	}
}

// DisbursementNotice renders a financial aid disbursement confirmation
func DisbursementNotice(firstName string, amount float64, source string) Message {
	return Message{
		Subject: "Financial Aid Disbursement Posted",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>A financial aid disbursement of <strong>$%.2f</strong> from %s has been posted to your student account.</p>
		`, firstName, amount, source)),
	}
}

// DocumentRequest renders a missing-document reminder
func DocumentRequest(firstName, documentName string) Message {
	return Message{
		Subject: "Document Needed for Your File",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Our records show we are still missing your <strong>%s</strong>. Please upload it at your earliest convenience to keep your file in good standing.</p>
		`, firstName, documentName)),
	}
}

// DocumentRejection renders a rejected-document notice with the reason
func DocumentRejection(firstName, documentName, reason string) Message {
	return Message{
		Subject: "Document Rejected - Action Needed",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Your <strong>%s</strong> could not be accepted.</p>
			<p>Reason: %s</p>
			<p>Please upload a corrected copy.</p>
		`, firstName, documentName, reason)),
	}
}

// PaymentConfirmation renders a payment receipt notice
func PaymentConfirmation(firstName string, amount float64, method string) Message {
	return Message{
		Subject: "Payment Received - Thank You",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>We received your payment of <strong>$%.2f</strong> (%s). Thank you!</p>
		`, firstName, amount, method)),
	}
}

// AttendanceAlert renders a falling-behind-on-hours warning
func AttendanceAlert(firstName string, actualHours, expectedHours float64) Message {
	return Message{
		Subject: "Attendance Alert - Hours Behind Schedule",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>You have completed %.1f hours against an expected %.1f at this point in your program. Falling behind on clock hours can affect your graduation date and aid eligibility.</p>
		`, firstName, actualHours, expectedHours)),
	}
}

// Milestone renders an hours-milestone congratulation
func Milestone(firstName string, hours int) Message {
	return Message{
		Subject: fmt.Sprintf("Congratulations on %d Hours!", hours),
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>You just passed <strong>%d clock hours</strong>. Keep up the great work!</p>
		`, firstName, hours)),
	}
}

// Graduation renders the program-completion notice
func Graduation(firstName, programName string) Message {
	return Message{
		Subject: "Congratulations, Graduate!",
		HTML: layout(fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>You have completed the <strong>%s</strong> program. Your certificate and final transcripts are being prepared.</p>
		`, firstName, programName)),
	}
}

// LeadNurture renders one step of the pre-application drip sequence
func LeadNurture(firstName, programName string, step int) Message {
	bodies := []string{
		fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Thanks for your interest in our <strong>%s</strong> program. Here is what a typical week looks like for our students.</p>
		`, firstName, programName),
		fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Did you know financial aid is available for the <strong>%s</strong> program? Our team can walk you through the options.</p>
		`, firstName, programName),
		fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>Spots in the next <strong>%s</strong> start date are filling up. Apply today to reserve yours.</p>
		`, firstName, programName),
	}

	idx := step - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(bodies) {
		idx = len(bodies) - 1
	}

	return Message{
		Subject: fmt.Sprintf("Your Path to %s - Part %d", programName, idx+1),
		HTML:    layout(bodies[idx]),
	}
}
