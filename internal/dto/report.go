package dto

import "github.com/noah-isme/sma-adp-api/internal/models"

// ReportRequest captures POST /reports/generate payload: a class timetable
// or a teacher's aggregated schedule, rendered to CSV or PDF.
type ReportRequest struct {
	Type      models.ReportType   `json:"type" validate:"required,oneof=class_timetable teacher_schedule"`
	TermID    string              `json:"termId" validate:"required"`
	ClassID   *string             `json:"classId,omitempty"`
	TeacherID *string             `json:"teacherId,omitempty"`
	Format    models.ReportFormat `json:"format" validate:"required,oneof=csv pdf"`
}

// ReportJobResponse is returned after enqueueing a report.
type ReportJobResponse struct {
	ID       string              `json:"id"`
	Status   models.ReportStatus `json:"status"`
	Progress int                 `json:"progress"`
}

// ReportStatusResponse exposes job progress metadata.
type ReportStatusResponse struct {
	ID        string              `json:"id"`
	Status    models.ReportStatus `json:"status"`
	Progress  int                 `json:"progress"`
	ResultURL *string             `json:"resultUrl,omitempty"`
	Error     *string             `json:"error,omitempty"`
}
