package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-api/internal/models"
	"github.com/noah-isme/sma-adp-api/internal/repository"
	"github.com/noah-isme/sma-adp-api/pkg/export"
	"github.com/noah-isme/sma-adp-api/pkg/storage"
)

type exportScheduleRepoStub struct {
	byTermClass map[string][]models.SemesterSchedule
}

func (s *exportScheduleRepoStub) ListByTermClass(ctx context.Context, termID, classID string) ([]models.SemesterSchedule, error) {
	return s.byTermClass[termID+"|"+classID], nil
}

type exportSlotRepoStub struct {
	bySchedule map[string][]models.SemesterScheduleSlot
	byTeacher  map[string][]repository.TeacherScheduleRow
}

func (s *exportSlotRepoStub) ListBySchedule(ctx context.Context, scheduleID string) ([]models.SemesterScheduleSlot, error) {
	return s.bySchedule[scheduleID], nil
}

func (s *exportSlotRepoStub) ListPublishedByTermAndTeacher(ctx context.Context, termID, teacherID string) ([]repository.TeacherScheduleRow, error) {
	return s.byTeacher[termID+"|"+teacherID], nil
}

type exportSubjectReaderStub struct{}

func (exportSubjectReaderStub) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	if id == "" {
		return nil, errors.New("not found")
	}
	return &models.Subject{ID: id, Name: "Physics"}, nil
}

type exportTeacherReaderStub struct{}

func (exportTeacherReaderStub) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	if id == "" {
		return nil, errors.New("not found")
	}
	return &models.Teacher{ID: id, FullName: "Jane Doe"}, nil
}

func newExportServiceForTest(t *testing.T) (*ExportService, *storage.LocalStorage) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	cfg := ExportConfig{APIPrefix: "/api/v1", ResultTTL: time.Hour}

	scheduleRepo := &exportScheduleRepoStub{byTermClass: map[string][]models.SemesterSchedule{
		"term-1|class-1": {
			{ID: "sched-1", TermID: "term-1", ClassID: "class-1", Version: 1, Status: models.SemesterScheduleStatusPublished},
		},
	}}
	room := "Lab 1"
	slotRepo := &exportSlotRepoStub{
		bySchedule: map[string][]models.SemesterScheduleSlot{
			"sched-1": {
				{DayOfWeek: 1, TimeSlot: 1, SubjectID: "physics", TeacherID: "teacher-1", Room: &room},
				{DayOfWeek: 1, TimeSlot: 2, SubjectID: "FREE HOUR", TeacherID: "-"},
			},
		},
		byTeacher: map[string][]repository.TeacherScheduleRow{
			"term-1|teacher-1": {
				{ClassID: "class-1", ClassName: "X-A", DayOfWeek: 1, TimeSlot: 1, SubjectID: "physics", Room: &room},
			},
		},
	}

	svc := NewExportService(scheduleRepo, slotRepo, exportSubjectReaderStub{}, exportTeacherReaderStub{}, store, signer, cfg, zap.NewNop(), export.NewCSVExporter(), export.NewPDFExporter())
	return svc, store
}

func TestExportServiceGenerateClassTimetableCSV(t *testing.T) {
	svc, store := newExportServiceForTest(t)
	classID := "class-1"
	job := &models.ReportJob{
		ID:   "job-1",
		Type: models.ReportTypeClassTimetable,
		Params: models.ReportJobParams{
			TermID:  "term-1",
			ClassID: &classID,
			Format:  models.ReportFormatCSV,
		},
		CreatedBy: "admin",
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	require.NotEmpty(t, result.RelativePath)
	require.Contains(t, result.URL, "/export/")

	path := store.Path(result.RelativePath)
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestExportServiceGenerateTeacherSchedulePDF(t *testing.T) {
	svc, store := newExportServiceForTest(t)
	teacherID := "teacher-1"
	job := &models.ReportJob{
		ID:   "job-2",
		Type: models.ReportTypeTeacherSchedule,
		Params: models.ReportJobParams{
			TermID:    "term-1",
			TeacherID: &teacherID,
			Format:    models.ReportFormatPDF,
		},
		CreatedBy: "admin",
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	require.Equal(t, models.ReportFormatPDF, result.Format)

	path := filepath.Clean(store.Path(result.RelativePath))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestExportServiceGenerateMissingClassIDFails(t *testing.T) {
	svc, _ := newExportServiceForTest(t)
	job := &models.ReportJob{
		ID:        "job-3",
		Type:      models.ReportTypeClassTimetable,
		Params:    models.ReportJobParams{TermID: "term-1", Format: models.ReportFormatCSV},
		CreatedBy: "admin",
	}
	_, err := svc.Generate(context.Background(), job)
	require.Error(t, err)
}

func TestExportServiceGenerateNoScheduleFails(t *testing.T) {
	svc, _ := newExportServiceForTest(t)
	classID := "class-missing"
	job := &models.ReportJob{
		ID:   "job-4",
		Type: models.ReportTypeClassTimetable,
		Params: models.ReportJobParams{
			TermID:  "term-1",
			ClassID: &classID,
			Format:  models.ReportFormatCSV,
		},
		CreatedBy: "admin",
	}
	_, err := svc.Generate(context.Background(), job)
	require.Error(t, err)
}
