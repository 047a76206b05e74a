package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-api/internal/models"
	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

var emptyUnavailableSlots = types.JSONText("[]")

type teacherPreferenceRepo interface {
	GetByTeacher(ctx context.Context, teacherID string) (*models.TeacherPreference, error)
	Upsert(ctx context.Context, pref *models.TeacherPreference) error
}

// UpsertTeacherPreferenceRequest captures the day/period constraints a
// teacher operates under: a weekly and per-day load ceiling plus a set of
// unavailable slots. ScheduleGeneratorService does not read this (see
// DESIGN.md); TeacherAssignmentService enforces the weekly load ceiling
// when binding new assignments, and the per-day ceiling is stored only.
type UpsertTeacherPreferenceRequest struct {
	MaxLoadPerDay  int                             `json:"max_load_per_day" validate:"min=0"`
	MaxLoadPerWeek int                             `json:"max_load_per_week" validate:"min=0"`
	Unavailable    []models.TeacherUnavailableSlot `json:"unavailable"`
}

// TeacherPreferenceService reads and stores a teacher's scheduling
// preferences.
type TeacherPreferenceService struct {
	teachers  teacherRepository
	repo      teacherPreferenceRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherPreferenceService wires a TeacherPreferenceService.
func NewTeacherPreferenceService(teachers teacherRepository, repo teacherPreferenceRepo, validate *validator.Validate, logger *zap.Logger) *TeacherPreferenceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherPreferenceService{
		teachers:  teachers,
		repo:      repo,
		validator: validate,
		logger:    logger,
	}
}

// Get returns the teacher's stored preferences, or a zero-value set of
// defaults (no load cap, no unavailability) when none have been saved yet.
func (s *TeacherPreferenceService) Get(ctx context.Context, teacherID string) (*models.TeacherPreference, error) {
	if err := s.requireTeacherExists(ctx, teacherID); err != nil {
		return nil, err
	}

	pref, err := s.repo.GetByTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultTeacherPreference(teacherID), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher preferences")
	}
	return pref, nil
}

// Upsert replaces the teacher's stored preferences, preserving the row's
// identity and creation timestamp if one already exists.
func (s *TeacherPreferenceService) Upsert(ctx context.Context, teacherID string, req UpsertTeacherPreferenceRequest) (*models.TeacherPreference, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preference payload")
	}
	if err := s.requireTeacherExists(ctx, teacherID); err != nil {
		return nil, err
	}

	unavailable, err := encodeUnavailableSlots(req.Unavailable)
	if err != nil {
		return nil, err
	}

	payload := &models.TeacherPreference{
		TeacherID:      teacherID,
		MaxLoadPerDay:  req.MaxLoadPerDay,
		MaxLoadPerWeek: req.MaxLoadPerWeek,
		Unavailable:    unavailable,
	}

	existing, err := s.repo.GetByTeacher(ctx, teacherID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher preferences")
	}
	if existing != nil {
		payload.ID = existing.ID
		payload.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(ctx, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to upsert teacher preferences")
	}
	return payload, nil
}

func (s *TeacherPreferenceService) requireTeacherExists(ctx context.Context, teacherID string) error {
	if _, err := s.teachers.FindByID(ctx, teacherID); err != nil {
		return wrapLookupErr(err, "teacher")
	}
	return nil
}

func defaultTeacherPreference(teacherID string) *models.TeacherPreference {
	return &models.TeacherPreference{
		TeacherID:      teacherID,
		MaxLoadPerDay:  0,
		MaxLoadPerWeek: 0,
		Unavailable:    emptyUnavailableSlots,
	}
}

func encodeUnavailableSlots(slots []models.TeacherUnavailableSlot) (types.JSONText, error) {
	if len(slots) == 0 {
		return emptyUnavailableSlots, nil
	}
	encoded, err := json.Marshal(slots)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid unavailable payload")
	}
	return types.JSONText(encoded), nil
}
