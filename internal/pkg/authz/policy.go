package authz

import "github.com/meridian/campusops/internal/app/models"

// Action names every permission-gated operation in the API. Route wiring
// and any in-service checks both go through CanPerform so the policy lives
// in exactly one place.
type Action string

const (
	ActionReviewApplications Action = "applications.review"
	ActionManageEnrollment   Action = "enrollment.manage"
	ActionPostAttendance     Action = "attendance.post"
	ActionManageCorrections  Action = "attendance.corrections"
	ActionReviewDocuments    Action = "documents.review"
	ActionManageFinancialAid Action = "financial.manage"
	ActionRecordPayments     Action = "payments.record"
	ActionEvaluateSap        Action = "sap.evaluate"
	ActionViewReadiness      Action = "readiness.view"
	ActionExportAuditPackets Action = "audit.export"
	ActionViewAuditLog       Action = "audit.view"
	ActionManageSettings     Action = "settings.manage"
	ActionManageUsers        Action = "users.manage"
)

// Resource carries the context of a permission check. CampusID lets a
// campus-scoped role be restricted to its own campus; zero means the check
// is not campus-scoped.
type Resource struct {
	CampusID     int64
	UserCampusID int64
}

// policy maps each role to the actions it may perform. Admin is handled
// separately as an allow-all.
var policy = map[models.RoleType]map[Action]bool{
	models.RoleRegistrar: {
		ActionReviewApplications: true,
		ActionManageEnrollment:   true,
		ActionPostAttendance:     true,
		ActionManageCorrections:  true,
		ActionReviewDocuments:    true,
		ActionEvaluateSap:        true,
		ActionViewReadiness:      true,
		ActionExportAuditPackets: true,
	},
	models.RoleFinancialAid: {
		ActionManageFinancialAid: true,
		ActionRecordPayments:     true,
		ActionReviewDocuments:    true,
		ActionViewReadiness:      true,
		ActionExportAuditPackets: true,
	},
	models.RoleInstructor: {
		ActionPostAttendance: true,
	},
	models.RoleAuditor: {
		ActionViewReadiness:      true,
		ActionExportAuditPackets: true,
		ActionViewAuditLog:       true,
	},
}

// CanPerform reports whether a role may perform an action in the given
// resource context. Pure function, no I/O.
func CanPerform(role models.RoleType, action Action, resource Resource) bool {
	if role == models.RoleAdmin {
		return true
	}

	allowed, ok := policy[role]
	if !ok || !allowed[action] {
		return false
	}

	// Campus-scoped roles may only act on their own campus
	if resource.CampusID != 0 && resource.UserCampusID != 0 && resource.CampusID != resource.UserCampusID {
		return false
	}

	return true
}
