package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/csvkit"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// auditTrailLimit bounds the audit rows pulled into a packet
const auditTrailLimit = 1000

// ExportService assembles audit packets: denormalized CSV extracts of a
// student's (or a cohort's) records, bundled into a zip when more than one
// file is produced.
type ExportService struct {
	studentRepo    *repositories.StudentRepository
	documentRepo   *repositories.DocumentRepository
	sapRepo        *repositories.SapRepository
	financialRepo  *repositories.FinancialRepository
	attendanceRepo *repositories.AttendanceRepository
	auditRepo      *repositories.AuditLogRepository
	settingsRepo   *repositories.SettingsRepository
	auditService   *AuditService
}

// NewExportService creates a new export service instance
func NewExportService(
	studentRepo *repositories.StudentRepository,
	documentRepo *repositories.DocumentRepository,
	sapRepo *repositories.SapRepository,
	financialRepo *repositories.FinancialRepository,
	attendanceRepo *repositories.AttendanceRepository,
	auditRepo *repositories.AuditLogRepository,
	settingsRepo *repositories.SettingsRepository,
	auditService *AuditService,
) *ExportService {
	return &ExportService{
		studentRepo:    studentRepo,
		documentRepo:   documentRepo,
		sapRepo:        sapRepo,
		financialRepo:  financialRepo,
		attendanceRepo: attendanceRepo,
		auditRepo:      auditRepo,
		settingsRepo:   settingsRepo,
		auditService:   auditService,
	}
}

// Packet is an assembled export: the individual CSV files plus, when more
// than one file was produced, a zip bundle. Zipped is nil when bundling
// failed or was unnecessary; callers then serve the files individually.
type Packet struct {
	Files    []csvkit.File
	Zipped   []byte
	ZipName  string
	Students int
	Rows     int
}

// studentRows holds one student's fetched related rows
type studentRows struct {
	documents  []*models.DocumentRecord
	sessions   []*models.AttendanceSession
	sapHistory []*models.SapEvaluation
	ledger     []*models.LedgerEntry
	auditTrail []*models.AuditLogEntry
}

// StudentPacket assembles the single-student audit packet
func (s *ExportService) StudentPacket(ctx context.Context, studentID int64, requestedBy *int64) (*Packet, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, mapStudentNotFound(err)
	}

	refs, err := s.loadReferenceMaps(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.fetchStudentRows(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	subject := student.StudentNumber
	files := []csvkit.File{
		{Name: csvkit.FileName("student-info", subject, now), Content: studentInfoTable([]*models.Student{student}, refs)},
		{Name: csvkit.FileName("documents", subject, now), Content: documentTable(student, rows.documents)},
		{Name: csvkit.FileName("attendance", subject, now), Content: attendanceTable(student, rows.sessions)},
		{Name: csvkit.FileName("sap-history", subject, now), Content: sapTable(student, rows.sapHistory)},
		{Name: csvkit.FileName("ledger", subject, now), Content: ledgerTable(student, rows.ledger)},
		{Name: csvkit.FileName("audit-trail", subject, now), Content: auditTable(rows.auditTrail)},
	}

	packet := s.bundle(files, subject, now)
	packet.Students = 1
	packet.Rows = len(rows.documents) + len(rows.sessions) + len(rows.sapHistory) + len(rows.ledger) + len(rows.auditTrail)

	s.auditService.Record(models.AuditActionExportPacket, requestedBy, &student.ID, "student", map[string]interface{}{
		"exportType": "student-packet",
		"rowCount":   packet.Rows,
	})

	return packet, nil
}

// CohortPacket assembles the school-wide packet over active students,
// optionally filtered by campus and/or program
func (s *ExportService) CohortPacket(ctx context.Context, campusID, programID int64, requestedBy *int64) (*Packet, error) {
	students, err := s.studentRepo.GetActive(ctx, campusID, programID)
	if err != nil {
		return nil, err
	}

	refs, err := s.loadReferenceMaps(ctx)
	if err != nil {
		return nil, err
	}

	perStudent := make([]*studentRows, len(students))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, student := range students {
		g.Go(func() error {
			rows, err := s.fetchStudentRows(gctx, student.ID)
			if err != nil {
				return err
			}
			perStudent[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docRows, attRows, sapRows, ledgerRows, trailRows [][]interface{}
	totalRows := 0
	for i, student := range students {
		rows := perStudent[i]
		docRows = append(docRows, documentRows(student, rows.documents)...)
		attRows = append(attRows, attendanceRows(student, rows.sessions)...)
		sapRows = append(sapRows, sapEvaluationRows(student, rows.sapHistory)...)
		ledgerRows = append(ledgerRows, ledgerEntryRows(student, rows.ledger)...)
		trailRows = append(trailRows, auditRows(rows.auditTrail)...)
		totalRows += len(rows.documents) + len(rows.sessions) + len(rows.sapHistory) + len(rows.ledger) + len(rows.auditTrail)
	}

	now := time.Now()
	files := []csvkit.File{
		{Name: csvkit.FileName("student-info", "cohort", now), Content: studentInfoTable(students, refs)},
		{Name: csvkit.FileName("documents", "cohort", now), Content: csvkit.Document(documentHeaders, docRows)},
		{Name: csvkit.FileName("attendance", "cohort", now), Content: csvkit.Document(attendanceHeaders, attRows)},
		{Name: csvkit.FileName("sap-history", "cohort", now), Content: csvkit.Document(sapHeaders, sapRows)},
		{Name: csvkit.FileName("ledger", "cohort", now), Content: csvkit.Document(ledgerHeaders, ledgerRows)},
		{Name: csvkit.FileName("audit-trail", "cohort", now), Content: csvkit.Document(auditHeaders, trailRows)},
	}

	packet := s.bundle(files, "cohort", now)
	packet.Students = len(students)
	packet.Rows = totalRows

	s.auditService.Record(models.AuditActionExportPacket, requestedBy, nil, models.SchoolWideTarget, map[string]interface{}{
		"exportType":   "cohort-packet",
		"studentCount": len(students),
		"rowCount":     totalRows,
	})

	return packet, nil
}

// fetchStudentRows pulls one student's related rows with a fan-out
func (s *ExportService) fetchStudentRows(ctx context.Context, studentID int64) (*studentRows, error) {
	rows := &studentRows{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := s.documentRepo.GetByStudentID(gctx, studentID)
		if err != nil {
			return err
		}
		rows.documents = docs
		return nil
	})
	g.Go(func() error {
		sessions, err := s.attendanceRepo.GetByStudentID(gctx, studentID)
		if err != nil {
			return err
		}
		rows.sessions = sessions
		return nil
	})
	g.Go(func() error {
		history, err := s.sapRepo.GetByStudentID(gctx, studentID)
		if err != nil {
			return err
		}
		rows.sapHistory = history
		return nil
	})
	g.Go(func() error {
		ledger, err := s.financialRepo.GetLedgerByStudentID(gctx, studentID)
		if err != nil {
			return err
		}
		rows.ledger = ledger
		return nil
	})
	g.Go(func() error {
		trail, _, err := s.auditRepo.List(gctx, "", &studentID, 0, auditTrailLimit)
		if err != nil {
			return err
		}
		rows.auditTrail = trail
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// referenceMaps inlines campus/program/schedule names into student rows
type referenceMaps struct {
	campuses  map[int64]string
	programs  map[int64]string
	schedules map[int64]string
}

func (s *ExportService) loadReferenceMaps(ctx context.Context) (*referenceMaps, error) {
	refs := &referenceMaps{
		campuses:  map[int64]string{},
		programs:  map[int64]string{},
		schedules: map[int64]string{},
	}

	campuses, err := s.settingsRepo.GetAllCampuses(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range campuses {
		refs.campuses[c.ID] = c.Name
	}

	programs, err := s.settingsRepo.GetAllPrograms(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range programs {
		refs.programs[p.ID] = p.Name
	}

	schedules, err := s.settingsRepo.GetAllSchedules(ctx)
	if err != nil {
		return nil, err
	}
	for _, sch := range schedules {
		refs.schedules[sch.ID] = sch.Name
	}

	return refs, nil
}

// bundle zips the files, falling back to individual files when zipping fails
func (s *ExportService) bundle(files []csvkit.File, subject string, now time.Time) *Packet {
	packet := &Packet{Files: files}
	if len(files) < 2 {
		return packet
	}

	zipped, err := csvkit.Bundle(files)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to bundle export files, serving individually")
		return packet
	}

	packet.Zipped = zipped
	packet.ZipName = "audit-packet-" + subject + "-" + now.Format("2006-01-02") + ".zip"
	return packet
}

var studentInfoHeaders = []string{
	"Student Number", "First Name", "Last Name", "Email", "Phone", "Status",
	"Campus", "Program", "Schedule", "Start Date", "Total Hours",
	"Theory Hours", "Practical Hours", "SAP Status",
}

func studentInfoTable(students []*models.Student, refs *referenceMaps) string {
	rows := make([][]interface{}, 0, len(students))
	for _, st := range students {
		var campus, program, schedule interface{}
		if st.CampusID != nil {
			campus = refs.campuses[*st.CampusID]
		}
		if st.ProgramID != nil {
			program = refs.programs[*st.ProgramID]
		}
		if st.ScheduleID != nil {
			schedule = refs.schedules[*st.ScheduleID]
		}
		rows = append(rows, []interface{}{
			st.StudentNumber, st.FirstName, st.LastName, st.Email, st.Phone,
			string(st.Status), campus, program, schedule, st.StartDate,
			st.TotalHours, st.TheoryHours, st.PracticalHours, string(st.SapStatus),
		})
	}
	return csvkit.Document(studentInfoHeaders, rows)
}

var documentHeaders = []string{
	"Student Number", "Document Type", "Status", "File Name",
	"Expires", "Rejection Reason", "Reviewed At", "Uploaded At",
}

func documentRows(student *models.Student, docs []*models.DocumentRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(docs))
	for _, d := range docs {
		var typeName interface{}
		if d.DocumentType != nil {
			typeName = d.DocumentType.Name
		}
		rows = append(rows, []interface{}{
			student.StudentNumber, typeName, string(d.Status), d.FileName,
			d.ExpiresAt, d.RejectionReason, d.ReviewedAt, d.UploadedAt,
		})
	}
	return rows
}

func documentTable(student *models.Student, docs []*models.DocumentRecord) string {
	return csvkit.Document(documentHeaders, documentRows(student, docs))
}

var attendanceHeaders = []string{
	"Student Number", "Clock In", "Clock Out", "Total Hours",
	"Theory Hours", "Practical Hours", "Correction", "Approved",
}

func attendanceRows(student *models.Student, sessions []*models.AttendanceSession) [][]interface{} {
	rows := make([][]interface{}, 0, len(sessions))
	for _, sess := range sessions {
		var clockOut interface{}
		if sess.ClockOut != nil {
			clockOut = sess.ClockOut.Format("2006-01-02 15:04")
		}
		rows = append(rows, []interface{}{
			student.StudentNumber, sess.ClockIn.Format("2006-01-02 15:04"), clockOut,
			sess.TotalHours, sess.TheoryHours, sess.PracticalHours,
			sess.IsCorrection, sess.ApprovedBy != nil,
		})
	}
	return rows
}

func attendanceTable(student *models.Student, sessions []*models.AttendanceSession) string {
	return csvkit.Document(attendanceHeaders, attendanceRows(student, sessions))
}

var sapHeaders = []string{
	"Student Number", "Status", "Completion Rate",
	"Hours Attempted", "Hours Completed", "Notes", "Evaluated At",
}

func sapEvaluationRows(student *models.Student, history []*models.SapEvaluation) [][]interface{} {
	rows := make([][]interface{}, 0, len(history))
	for _, e := range history {
		rows = append(rows, []interface{}{
			student.StudentNumber, string(e.Status), e.CompletionRate,
			e.HoursAttempted, e.HoursCompleted, e.Notes, e.EvaluatedAt,
		})
	}
	return rows
}

func sapTable(student *models.Student, history []*models.SapEvaluation) string {
	return csvkit.Document(sapHeaders, sapEvaluationRows(student, history))
}

var ledgerHeaders = []string{
	"Student Number", "Kind", "Description", "Amount", "Method",
	"Voided", "Void Reason", "Created At",
}

func ledgerEntryRows(student *models.Student, entries []*models.LedgerEntry) [][]interface{} {
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			student.StudentNumber, e.Kind, e.Description, e.Amount, e.Method,
			e.Voided, e.VoidReason, e.CreatedAt,
		})
	}
	return rows
}

func ledgerTable(student *models.Student, entries []*models.LedgerEntry) string {
	return csvkit.Document(ledgerHeaders, ledgerEntryRows(student, entries))
}

var auditHeaders = []string{"Action", "Target", "User ID", "Metadata", "Created At"}

func auditRows(trail []*models.AuditLogEntry) [][]interface{} {
	rows := make([][]interface{}, 0, len(trail))
	for _, e := range trail {
		var userID interface{}
		if e.UserID != nil {
			userID = *e.UserID
		}
		var metadata interface{}
		if len(e.Metadata) > 0 {
			metadata = string(e.Metadata)
		}
		rows = append(rows, []interface{}{e.Action, e.Target, userID, metadata, e.CreatedAt})
	}
	return rows
}

func auditTable(trail []*models.AuditLogEntry) string {
	return csvkit.Document(auditHeaders, auditRows(trail))
}
