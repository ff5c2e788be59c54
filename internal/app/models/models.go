package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin        RoleType = "ADMIN"
	RoleRegistrar    RoleType = "REGISTRAR"
	RoleFinancialAid RoleType = "FINANCIAL_AID"
	RoleInstructor   RoleType = "INSTRUCTOR"
	RoleAuditor      RoleType = "AUDITOR"
)

// StudentStatus defines the enrollment lifecycle of a student.
// Students are never deleted, only status-transitioned.
type StudentStatus string

const (
	StudentActive     StudentStatus = "ACTIVE"
	StudentOnLeave    StudentStatus = "ON_LEAVE"
	StudentWithdrawn  StudentStatus = "WITHDRAWN"
	StudentGraduated  StudentStatus = "GRADUATED"
	StudentTerminated StudentStatus = "TERMINATED"
)

// SapStatus defines the Satisfactory Academic Progress status enum
type SapStatus string

const (
	SapSatisfactory   SapStatus = "SATISFACTORY"
	SapWarning        SapStatus = "WARNING"
	SapProbation      SapStatus = "PROBATION"
	SapSuspension     SapStatus = "SUSPENSION"
	SapAppealPending  SapStatus = "APPEAL_PENDING"
	SapAppealApproved SapStatus = "APPEAL_APPROVED"
	SapAppealDenied   SapStatus = "APPEAL_DENIED"
)

// DocumentStatus defines the review lifecycle of a document record
type DocumentStatus string

const (
	DocumentUploaded    DocumentStatus = "UPLOADED"
	DocumentUnderReview DocumentStatus = "UNDER_REVIEW"
	DocumentApproved    DocumentStatus = "APPROVED"
	DocumentRejected    DocumentStatus = "REJECTED"
	DocumentExpired     DocumentStatus = "EXPIRED"
)

// ApplicationStatus defines the admissions decision state
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationDenied   ApplicationStatus = "DENIED"
)

// VerificationStatus values for financial aid verification
const (
	VerificationComplete   = "complete"
	VerificationInProgress = "in_progress"
)

// DisbursementStatus defines the release state of a scheduled disbursement
type DisbursementStatus string

const (
	DisbursementScheduled DisbursementStatus = "SCHEDULED"
	DisbursementReleased  DisbursementStatus = "RELEASED"
	DisbursementCancelled DisbursementStatus = "CANCELLED"
)

// ReadinessBucket classifies students by overall readiness score
type ReadinessBucket string

const (
	BucketReady     ReadinessBucket = "ready"
	BucketAttention ReadinessBucket = "attention"
	BucketCritical  ReadinessBucket = "critical"
)
