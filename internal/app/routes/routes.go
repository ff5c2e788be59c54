package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/controllers"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/middleware"
	"github.com/meridian/campusops/internal/pkg/authz"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicationController *controllers.ApplicationController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	documentController *controllers.DocumentController,
	financialController *controllers.FinancialController,
	sapController *controllers.SapController,
	readinessController *controllers.ReadinessController,
	exportController *controllers.ExportController,
	auditController *controllers.AuditController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Application intake is public: prospects submit without an account
	v1.POST("/applications", applicationController.CreateApplication)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Staff account administration
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RequirePermission(authz.ActionManageUsers))
		{
			users.POST("", authController.CreateUser)
			users.GET("", authController.ListUsers)
			users.PUT("/:id/active", authController.SetUserActive)
		}

		// Admissions
		applications := authenticated.Group("/applications")
		applications.Use(authMiddleware.RequirePermission(authz.ActionReviewApplications))
		{
			applications.GET("", applicationController.GetAllApplications)
			applications.GET("/:id", applicationController.GetApplicationByID)
			applications.POST("/:id/review", applicationController.ReviewApplication)
			applications.POST("/:id/nurture", applicationController.SendNurtureStep)
		}

		// Students
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetActiveStudents)
			students.GET("/:id", studentController.GetStudentByID)

			studentsManage := students.Group("")
			studentsManage.Use(authMiddleware.RequirePermission(authz.ActionManageEnrollment))
			{
				studentsManage.PUT("/:id/status", studentController.UpdateStudentStatus)
				studentsManage.POST("/:id/attendance-alert", studentController.SendAttendanceAlert)
			}
		}

		// Attendance
		attendance := authenticated.Group("/attendance")
		{
			attendancePost := attendance.Group("")
			attendancePost.Use(authMiddleware.RequirePermission(authz.ActionPostAttendance))
			{
				attendancePost.POST("/clock-in", attendanceController.ClockIn)
				attendancePost.POST("/clock-out/:studentId", attendanceController.ClockOut)
				attendancePost.GET("/students/:studentId", attendanceController.GetStudentSessions)
			}

			corrections := attendance.Group("/corrections")
			corrections.Use(authMiddleware.RequirePermission(authz.ActionManageCorrections))
			{
				corrections.POST("", attendanceController.RequestCorrection)
				corrections.GET("", attendanceController.GetPendingCorrections)
				corrections.POST("/:id/approve", attendanceController.ApproveCorrection)
			}
		}

		// Documents
		documents := authenticated.Group("/documents")
		documents.Use(authMiddleware.RequirePermission(authz.ActionReviewDocuments))
		{
			documents.POST("", documentController.UploadDocument)
			documents.GET("/students/:studentId", documentController.GetStudentDocuments)
			documents.POST("/:id/review", documentController.ReviewDocument)
			documents.POST("/bulk-status", documentController.BulkUpdateStatus)
			documents.POST("/students/:studentId/request/:typeId", documentController.RequestDocument)
		}

		// Financial aid and ledger
		financial := authenticated.Group("/financial")
		{
			aid := financial.Group("")
			aid.Use(authMiddleware.RequirePermission(authz.ActionManageFinancialAid))
			{
				aid.PUT("/verifications", financialController.UpsertVerification)
				aid.GET("/verifications/:studentId", financialController.GetLatestVerification)
				aid.POST("/awards", financialController.CreateAward)
				aid.POST("/disbursements", financialController.ScheduleDisbursement)
				aid.POST("/disbursements/:id/release", financialController.ReleaseDisbursement)
				aid.POST("/disbursements/batch-release", financialController.BatchRelease)
			}

			ledger := financial.Group("/ledger")
			ledger.Use(authMiddleware.RequirePermission(authz.ActionRecordPayments))
			{
				ledger.POST("/charges", financialController.PostCharge)
				ledger.POST("/payments", financialController.PostPayment)
				ledger.POST("/:id/void", financialController.VoidLedgerEntry)
				ledger.GET("/students/:studentId", financialController.GetLedger)
			}

			financial.GET("/balance/:studentId", financialController.GetBalance)
		}

		// SAP evaluations
		sap := authenticated.Group("/sap")
		sap.Use(authMiddleware.RequirePermission(authz.ActionEvaluateSap))
		{
			sap.POST("/evaluations", sapController.Evaluate)
			sap.GET("/students/:studentId", sapController.GetHistory)
			sap.GET("/students/:studentId/latest", sapController.GetLatest)
		}

		// Readiness scoring
		readiness := authenticated.Group("/readiness")
		readiness.Use(authMiddleware.RequirePermission(authz.ActionViewReadiness))
		{
			readiness.GET("/students/:studentId", readinessController.GetStudentReadiness)
			readiness.GET("/cohort", readinessController.GetCohortReadiness)
		}

		// Audit packet exports
		exports := authenticated.Group("/exports")
		exports.Use(authMiddleware.RequirePermission(authz.ActionExportAuditPackets))
		{
			exports.GET("/students/:studentId", exportController.ExportStudentPacket)
			exports.GET("/cohort", exportController.ExportCohortPacket)
		}

		// Audit trail
		auditLog := authenticated.Group("/audit-log")
		auditLog.Use(authMiddleware.RequirePermission(authz.ActionViewAuditLog))
		{
			auditLog.GET("", auditController.ListAuditLog)
		}

		// Settings
		settings := authenticated.Group("/settings")
		settings.Use(authMiddleware.RequirePermission(authz.ActionManageSettings))
		{
			settings.POST("/campuses", settingsController.CreateCampus)
			settings.GET("/campuses", settingsController.GetAllCampuses)
			settings.PUT("/campuses/:id", settingsController.UpdateCampus)
			settings.DELETE("/campuses/:id", settingsController.DeleteCampus)

			settings.POST("/programs", settingsController.CreateProgram)
			settings.GET("/programs", settingsController.GetAllPrograms)
			settings.PUT("/programs/:id", settingsController.UpdateProgram)
			settings.DELETE("/programs/:id", settingsController.DeleteProgram)

			settings.POST("/schedules", settingsController.CreateSchedule)
			settings.GET("/schedules", settingsController.GetAllSchedules)
			settings.PUT("/schedules/:id", settingsController.UpdateSchedule)
			settings.DELETE("/schedules/:id", settingsController.DeleteSchedule)

			settings.POST("/document-types", settingsController.CreateDocumentType)
			settings.GET("/document-types", settingsController.GetAllDocumentTypes)
			settings.PUT("/document-types/:id", settingsController.UpdateDocumentType)
			settings.DELETE("/document-types/:id", settingsController.DeleteDocumentType)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
