package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-api/internal/models"
	"github.com/noah-isme/sma-adp-api/internal/repository"
	"github.com/noah-isme/sma-adp-api/pkg/export"
	"github.com/noah-isme/sma-adp-api/pkg/storage"
)

type exportScheduleRepository interface {
	ListByTermClass(ctx context.Context, termID, classID string) ([]models.SemesterSchedule, error)
}

type exportSlotRepository interface {
	ListBySchedule(ctx context.Context, scheduleID string) ([]models.SemesterScheduleSlot, error)
	ListPublishedByTermAndTeacher(ctx context.Context, termID, teacherID string) ([]repository.TeacherScheduleRow, error)
}

type exportSubjectReader interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
}

type exportTeacherReader interface {
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService renders a published timetable (class or teacher view) into
// CSV/PDF and persists the rendered file behind a signed download token.
type ExportService struct {
	schedules exportScheduleRepository
	slots     exportSlotRepository
	subjects  exportSubjectReader
	teachers  exportTeacherReader
	storage   fileStorage
	csv       csvRenderer
	pdf       pdfRenderer
	signer    *storage.SignedURLSigner
	logger    *zap.Logger
	cfg       ExportConfig
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// NewExportService constructs an ExportService.
func NewExportService(schedules exportScheduleRepository, slots exportSlotRepository, subjects exportSubjectReader, teachers exportTeacherReader, storage fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		schedules: schedules,
		slots:     slots,
		subjects:  subjects,
		teachers:  teachers,
		storage:   storage,
		csv:       csv,
		pdf:       pdf,
		signer:    signer,
		logger:    logger,
		cfg:       cfg,
	}
}

// Generate builds the dataset for the job's report type and renders it.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	dataset, title, err := s.buildDataset(ctx, job)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Params.Format {
	case models.ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		err = fmt.Errorf("unsupported format %s", job.Params.Format)
	}
	if err != nil {
		return nil, err
	}

	filename := s.buildFilename(job)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	signedURL := strings.TrimRight(s.cfg.APIPrefix, "/")
	if signedURL == "" {
		signedURL = "/api/v1"
	}
	signedURL = fmt.Sprintf("%s/export/%s", signedURL, token)

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          signedURL,
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildFilename(job *models.ReportJob) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	termPart := sanitizeFilename(job.Params.TermID)
	name := fmt.Sprintf("%s_%s_%s.%s", strings.ToLower(string(job.Type)), termPart, timestamp, job.Params.Format)
	return name
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func (s *ExportService) buildDataset(ctx context.Context, job *models.ReportJob) (export.Dataset, string, error) {
	switch job.Type {
	case models.ReportTypeClassTimetable:
		return s.buildClassTimetableDataset(ctx, job.Params)
	case models.ReportTypeTeacherSchedule:
		return s.buildTeacherScheduleDataset(ctx, job.Params)
	default:
		return export.Dataset{}, "", fmt.Errorf("unsupported report type %s", job.Type)
	}
}

// buildClassTimetableDataset renders the latest published schedule for a
// class, falling back to the newest version if nothing has been published.
func (s *ExportService) buildClassTimetableDataset(ctx context.Context, params models.ReportJobParams) (export.Dataset, string, error) {
	if params.ClassID == nil || *params.ClassID == "" {
		return export.Dataset{}, "", fmt.Errorf("classId is required for a class timetable export")
	}
	versions, err := s.schedules.ListByTermClass(ctx, params.TermID, *params.ClassID)
	if err != nil {
		return export.Dataset{}, "", err
	}
	schedule := selectExportSchedule(versions)
	if schedule == nil {
		return export.Dataset{}, "", fmt.Errorf("no schedule available for class %s in term %s", *params.ClassID, params.TermID)
	}

	slots, err := s.slots.ListBySchedule(ctx, schedule.ID)
	if err != nil {
		return export.Dataset{}, "", err
	}

	dataRows := make([]map[string]string, 0, len(slots))
	for _, slot := range slots {
		dataRows = append(dataRows, map[string]string{
			"Day":      dayName(slot.DayOfWeek),
			"Period":   strconv.Itoa(slot.TimeSlot),
			"Subject":  s.subjectName(ctx, slot.SubjectID),
			"Teacher":  s.teacherName(ctx, slot.TeacherID),
			"Room":     roomValue(slot.Room),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Day", "Period", "Subject", "Teacher", "Room"},
		Rows:    dataRows,
	}
	title := fmt.Sprintf("Class Timetable %s", *params.ClassID)
	return dataset, title, nil
}

// buildTeacherScheduleDataset aggregates a teacher's slots across every
// published schedule in the term, grouped by the class they belong to.
func (s *ExportService) buildTeacherScheduleDataset(ctx context.Context, params models.ReportJobParams) (export.Dataset, string, error) {
	if params.TeacherID == nil || *params.TeacherID == "" {
		return export.Dataset{}, "", fmt.Errorf("teacherId is required for a teacher schedule export")
	}
	rows, err := s.slots.ListPublishedByTermAndTeacher(ctx, params.TermID, *params.TeacherID)
	if err != nil {
		return export.Dataset{}, "", err
	}

	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		dataRows = append(dataRows, map[string]string{
			"Day":     dayName(row.DayOfWeek),
			"Period":  strconv.Itoa(row.TimeSlot),
			"Class":   row.ClassName,
			"Subject": s.subjectName(ctx, row.SubjectID),
			"Room":    roomValue(row.Room),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Day", "Period", "Class", "Subject", "Room"},
		Rows:    dataRows,
	}
	title := fmt.Sprintf("Teacher Schedule %s", *params.TeacherID)
	return dataset, title, nil
}

func (s *ExportService) subjectName(ctx context.Context, id string) string {
	if id == "" || s.subjects == nil {
		return id
	}
	subject, err := s.subjects.FindByID(ctx, id)
	if err != nil || subject == nil {
		return id
	}
	return subject.Name
}

func (s *ExportService) teacherName(ctx context.Context, id string) string {
	if id == "" || id == "-" || s.teachers == nil {
		return "-"
	}
	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil || teacher == nil {
		return id
	}
	return teacher.FullName
}

// selectExportSchedule prefers the newest PUBLISHED version; falls back to
// the newest version of any status so drafts remain exportable for review.
func selectExportSchedule(versions []models.SemesterSchedule) *models.SemesterSchedule {
	if len(versions) == 0 {
		return nil
	}
	sorted := make([]models.SemesterSchedule, len(versions))
	copy(sorted, versions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Version > sorted[j].Version })

	for _, candidate := range sorted {
		if candidate.Status == models.SemesterScheduleStatusPublished {
			schedule := candidate
			return &schedule
		}
	}
	schedule := sorted[0]
	return &schedule
}

func roomValue(room *string) string {
	if room == nil {
		return ""
	}
	return *room
}

func dayName(dayOfWeek int) string {
	names := []string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if dayOfWeek < 1 || dayOfWeek >= len(names) {
		return fmt.Sprintf("Day %d", dayOfWeek)
	}
	return names[dayOfWeek]
}
