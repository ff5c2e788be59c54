package authz

import (
	"testing"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name     string
		role     models.RoleType
		action   Action
		resource Resource
		want     bool
	}{
		{name: "admin can do anything", role: models.RoleAdmin, action: ActionManageUsers, want: true},
		{name: "admin can manage settings", role: models.RoleAdmin, action: ActionManageSettings, want: true},
		{name: "registrar reviews applications", role: models.RoleRegistrar, action: ActionReviewApplications, want: true},
		{name: "registrar manages corrections", role: models.RoleRegistrar, action: ActionManageCorrections, want: true},
		{name: "registrar cannot manage aid", role: models.RoleRegistrar, action: ActionManageFinancialAid, want: false},
		{name: "registrar cannot manage users", role: models.RoleRegistrar, action: ActionManageUsers, want: false},
		{name: "financial aid records payments", role: models.RoleFinancialAid, action: ActionRecordPayments, want: true},
		{name: "financial aid cannot enroll", role: models.RoleFinancialAid, action: ActionManageEnrollment, want: false},
		{name: "instructor posts attendance", role: models.RoleInstructor, action: ActionPostAttendance, want: true},
		{name: "instructor cannot approve corrections", role: models.RoleInstructor, action: ActionManageCorrections, want: false},
		{name: "instructor cannot export packets", role: models.RoleInstructor, action: ActionExportAuditPackets, want: false},
		{name: "auditor views audit log", role: models.RoleAuditor, action: ActionViewAuditLog, want: true},
		{name: "auditor exports packets", role: models.RoleAuditor, action: ActionExportAuditPackets, want: true},
		{name: "auditor cannot post attendance", role: models.RoleAuditor, action: ActionPostAttendance, want: false},
		{name: "unknown role denied", role: models.RoleType("VISITOR"), action: ActionViewReadiness, want: false},
		{
			name:     "campus scoped role on own campus",
			role:     models.RoleRegistrar,
			action:   ActionReviewApplications,
			resource: Resource{CampusID: 3, UserCampusID: 3},
			want:     true,
		},
		{
			name:     "campus scoped role on other campus",
			role:     models.RoleRegistrar,
			action:   ActionReviewApplications,
			resource: Resource{CampusID: 3, UserCampusID: 7},
			want:     false,
		},
		{
			name:     "admin ignores campus scope",
			role:     models.RoleAdmin,
			action:   ActionReviewApplications,
			resource: Resource{CampusID: 3, UserCampusID: 7},
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanPerform(tt.role, tt.action, tt.resource)
			assert.Equal(t, tt.want, got)
		})
	}
}
