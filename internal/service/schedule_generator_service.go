package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-api/internal/dto"
	"github.com/noah-isme/sma-adp-api/internal/models"
	"github.com/noah-isme/sma-adp-api/internal/scheduler"
	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

type semesterScheduleRepository interface {
	CreateVersioned(ctx context.Context, exec sqlx.ExtContext, schedule *models.SemesterSchedule) error
	ListByTermClass(ctx context.Context, termID, classID string) ([]models.SemesterSchedule, error)
	FindByID(ctx context.Context, id string) (*models.SemesterSchedule, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id string, status models.SemesterScheduleStatus, meta types.JSONText) error
}

type semesterScheduleSlotRepository interface {
	UpsertBatch(ctx context.Context, exec sqlx.ExtContext, slots []models.SemesterScheduleSlot) error
	ListBySchedule(ctx context.Context, scheduleID string) ([]models.SemesterScheduleSlot, error)
}

type teacherAssignmentFetcher interface {
	ListByClassAndTerm(ctx context.Context, classID, termID string) ([]models.TeacherAssignment, error)
}

type scheduleFeeder interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Schedule, error)
	ListByClass(ctx context.Context, classID string) ([]models.Schedule, error)
	FindConflicts(ctx context.Context, termID, dayOfWeek, timeSlot string) ([]models.Schedule, error)
	BulkCreateWithTx(ctx context.Context, tx *sqlx.Tx, schedules []models.Schedule) error
}

type schedulerClassReader interface {
	FindByID(ctx context.Context, id string) (*models.Class, error)
}

type schedulerTermReader interface {
	FindByID(ctx context.Context, id string) (*models.Term, error)
}

type schedulerSubjectReader interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type scheduleConflictChecker interface {
	Check(ctx context.Context, termID, classID string, slots []dto.ScheduleSlotProposal) ([]models.ScheduleConflict, error)
}

// ScheduleGeneratorService builds timetable proposals with the
// constraint-satisfaction engine in internal/scheduler and persists
// accepted proposals as semester schedules.
type ScheduleGeneratorService struct {
	terms       schedulerTermReader
	classes     schedulerClassReader
	subjects    schedulerSubjectReader
	assignments teacherAssignmentFetcher
	schedules   scheduleFeeder
	semesters   semesterScheduleRepository
	slots       semesterScheduleSlotRepository
	conflicts   scheduleConflictChecker
	tx          txProvider
	validator   *validator.Validate
	logger      *zap.Logger
	store       proposalStore
}

// ScheduleGeneratorConfig governs generator behaviour.
type ScheduleGeneratorConfig struct {
	ProposalTTL time.Duration
}

// NewScheduleGeneratorService wires scheduler dependencies.
func NewScheduleGeneratorService(
	terms schedulerTermReader,
	classes schedulerClassReader,
	subjects schedulerSubjectReader,
	assignments teacherAssignmentFetcher,
	schedules scheduleFeeder,
	semesters semesterScheduleRepository,
	slots semesterScheduleSlotRepository,
	conflictChecker scheduleConflictChecker,
	tx txProvider,
	validate *validator.Validate,
	logger *zap.Logger,
	store proposalStore,
	cfg ScheduleGeneratorConfig,
) *ScheduleGeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ProposalTTL <= 0 {
		cfg.ProposalTTL = 30 * time.Minute
	}
	if conflictChecker == nil && schedules != nil {
		conflictChecker = &defaultScheduleConflictChecker{repo: schedules}
	}
	if store == nil {
		store = newInMemoryProposalStore(cfg.ProposalTTL)
	}
	return &ScheduleGeneratorService{
		terms:       terms,
		classes:     classes,
		subjects:    subjects,
		assignments: assignments,
		schedules:   schedules,
		semesters:   semesters,
		slots:       slots,
		conflicts:   conflictChecker,
		tx:          tx,
		validator:   validate,
		logger:      logger,
		store:       store,
	}
}

// Generate runs the CSP engine for a single class and caches the result as
// a pending proposal.
func (s *ScheduleGeneratorService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule generation payload")
	}
	if err := s.ensureTermAndClass(ctx, req.TermID, req.ClassID); err != nil {
		return nil, err
	}
	if err := s.ensureSubjectsExist(ctx, req.SubjectLoads); err != nil {
		return nil, err
	}

	assignments, err := s.assignments.ListByClassAndTerm(ctx, req.ClassID, req.TermID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher assignments")
	}
	if len(assignments) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no teacher assignments defined for this class and term")
	}
	if err := validateSubjectLoads(req.SubjectLoads, mapAssignments(assignments)); err != nil {
		return nil, err
	}

	dayList := normalizeDays(req.Days)
	if len(dayList) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "days must contain at least one entry between 1-7")
	}

	input := buildInputModel(req.ClassID, len(dayList), req.TimeSlotsPerDay, req.SubjectLoads)

	timetables, solveErr := scheduler.Solve(input, func(index, total int, className string, success bool) {
		s.logger.Debug("schedule generator progress",
			zap.Int("index", index), zap.Int("total", total),
			zap.String("class", className), zap.Bool("success", success),
		)
	})
	if solveErr != nil {
		return nil, mapSolveError(solveErr)
	}

	classTimetable := timetables[req.ClassID]
	generatedSlots, stats := exportGeneratedSlots(classTimetable, dayList, req.TimeSlotsPerDay)
	conflicts := unmetDemand(generatedSlots, req.SubjectLoads)

	score := 0.0
	if stats.TotalSlots > 0 {
		score = 100 * float64(stats.AssignedSlots) / float64(stats.TotalSlots)
	}

	proposal := scheduleProposal{
		ProposalID:      uuid.NewString(),
		TermID:          req.TermID,
		ClassID:         req.ClassID,
		Score:           score,
		Slots:           generatedSlots,
		Conflicts:       conflicts,
		Stats:           stats,
		TimeSlotsPerDay: req.TimeSlotsPerDay,
		Days:            dayList,
		SubjectLoads:    req.SubjectLoads,
		RequestedAt:     time.Now().UTC(),
		Meta: map[string]any{
			"hardConstraints": req.HardConstraints,
			"softConstraints": req.SoftConstraints,
		},
	}
	if err := s.store.Save(ctx, proposal); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cache schedule proposal")
	}

	return &dto.GenerateScheduleResponse{
		ProposalID: proposal.ProposalID,
		Score:      score,
		Slots:      generatedSlots,
		Conflicts:  conflicts,
		Stats:      stats,
	}, nil
}

// Save persists a validated proposal as a semester schedule and optionally daily schedules.
func (s *ScheduleGeneratorService) Save(ctx context.Context, req dto.SaveScheduleRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid save schedule payload")
	}
	proposal, ok, err := s.store.Get(ctx, req.ProposalID)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load cached proposal")
	}
	if !ok {
		return "", appErrors.Clone(appErrors.ErrNotFound, "proposal not found or expired")
	}
	if s.tx == nil {
		return "", appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	metaPayload := map[string]any{
		"score":      proposal.Score,
		"stats":      proposal.Stats,
		"generated":  proposal.RequestedAt,
		"days":       proposal.Days,
		"timeSlots":  proposal.TimeSlotsPerDay,
		"algorithm":  "csp_backtracking_v1",
		"subjectMap": proposal.SubjectLoads,
	}
	metaBytes, marshalErr := json.Marshal(metaPayload)
	if marshalErr != nil {
		err = appErrors.Wrap(marshalErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode schedule metadata")
		return "", err
	}

	record := &models.SemesterSchedule{
		TermID:  proposal.TermID,
		ClassID: proposal.ClassID,
		Status:  models.SemesterScheduleStatusDraft,
		Meta:    types.JSONText(metaBytes),
	}

	if err = s.semesters.CreateVersioned(ctx, tx, record); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create semester schedule")
		return "", err
	}

	slotModels := make([]models.SemesterScheduleSlot, 0, len(proposal.Slots))
	for _, slot := range proposal.Slots {
		slotModels = append(slotModels, models.SemesterScheduleSlot{
			SemesterScheduleID: record.ID,
			DayOfWeek:          slot.DayOfWeek,
			TimeSlot:           slot.TimeSlot,
			SubjectID:          slot.SubjectID,
			TeacherID:          slot.TeacherID,
			Room:               slot.Room,
		})
	}

	if err = s.slots.UpsertBatch(ctx, tx, slotModels); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist semester schedule slots")
		return "", err
	}

	if req.CommitToDaily {
		if s.conflicts == nil {
			err = appErrors.Clone(appErrors.ErrInternal, "schedule conflict checker unavailable")
			return "", err
		}
		conflicts, conflictErr := s.conflicts.Check(ctx, proposal.TermID, proposal.ClassID, proposal.Slots)
		if conflictErr != nil {
			err = conflictErr
			return "", err
		}
		if len(conflicts) > 0 {
			err = appErrors.Wrap(&models.ScheduleConflictError{Type: "CONFLICT", Message: "detected conflicts when committing to daily schedules", Errors: conflicts}, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "conflict detected")
			return "", err
		}

		daily := make([]models.Schedule, 0, len(proposal.Slots))
		for _, slot := range proposal.Slots {
			daily = append(daily, models.Schedule{
				TermID:    proposal.TermID,
				ClassID:   proposal.ClassID,
				SubjectID: slot.SubjectID,
				TeacherID: slot.TeacherID,
				DayOfWeek: dayIndexToName(slot.DayOfWeek),
				TimeSlot:  strconv.Itoa(slot.TimeSlot),
				Room:      slotRoomValue(slot),
			})
		}
		if err = s.schedules.BulkCreateWithTx(ctx, tx, daily); err != nil {
			err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit daily schedules")
			return "", err
		}
		if err = s.semesters.UpdateStatus(ctx, tx, record.ID, models.SemesterScheduleStatusPublished, nil); err != nil {
			err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update schedule status")
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit schedule transaction")
		return "", err
	}

	if delErr := s.store.Delete(ctx, req.ProposalID); delErr != nil {
		s.logger.Warn("failed to evict cached proposal after save", zap.String("proposalId", req.ProposalID), zap.Error(delErr))
	}
	return record.ID, nil
}

// List returns semester schedules for a class-term tuple.
func (s *ScheduleGeneratorService) List(ctx context.Context, query dto.SemesterScheduleQuery) ([]models.SemesterSchedule, error) {
	if query.TermID == "" || query.ClassID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "termId and classId are required")
	}
	list, err := s.semesters.ListByTermClass(ctx, query.TermID, query.ClassID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semester schedules")
	}
	return list, nil
}

// GetSlots returns slot detail for a stored schedule.
func (s *ScheduleGeneratorService) GetSlots(ctx context.Context, scheduleID string) ([]models.SemesterScheduleSlot, error) {
	if scheduleID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "schedule id is required")
	}
	if _, err := s.semesters.FindByID(ctx, scheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester schedule")
	}
	slots, err := s.slots.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semester schedule slots")
	}
	return slots, nil
}

// Delete removes a draft schedule version.
func (s *ScheduleGeneratorService) Delete(ctx context.Context, scheduleID string) error {
	record, err := s.semesters.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "semester schedule not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester schedule")
	}
	if record.Status != models.SemesterScheduleStatusDraft {
		return appErrors.Clone(appErrors.ErrConflict, "only draft schedules can be deleted")
	}
	if err := s.semesters.Delete(ctx, scheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "semester schedule not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete semester schedule")
	}
	return nil
}

func (s *ScheduleGeneratorService) ensureTermAndClass(ctx context.Context, termID, classID string) error {
	if s.terms != nil {
		if _, err := s.terms.FindByID(ctx, termID); err != nil {
			if err == sql.ErrNoRows {
				return appErrors.Clone(appErrors.ErrNotFound, "term not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load term")
		}
	}
	if s.classes != nil {
		if _, err := s.classes.FindByID(ctx, classID); err != nil {
			if err == sql.ErrNoRows {
				return appErrors.Clone(appErrors.ErrNotFound, "class not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
		}
	}
	return nil
}

func (s *ScheduleGeneratorService) ensureSubjectsExist(ctx context.Context, loads []dto.SubjectLoadRequest) error {
	if s.subjects == nil {
		return nil
	}
	checked := make(map[string]bool, len(loads))
	for _, load := range loads {
		if checked[load.SubjectID] {
			continue
		}
		if _, err := s.subjects.FindByID(ctx, load.SubjectID); err != nil {
			if err == sql.ErrNoRows {
				return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("subject %s not found", load.SubjectID))
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
		}
		checked[load.SubjectID] = true
	}
	return nil
}

// buildInputModel translates the request's subject loads into the engine's
// InputModel for a single class: one scheduler.Class carrying every
// subject's credit, lab and room constraints plus the morning/afternoon
// preference sets derived from each load's Preference field.
func buildInputModel(classID string, days, periods int, loads []dto.SubjectLoadRequest) scheduler.InputModel {
	subjects := make([]scheduler.Subject, 0, len(loads))
	var morning, afternoon []string
	for _, load := range loads {
		subjects = append(subjects, scheduler.Subject{
			Name:          load.SubjectID,
			Teacher:       load.TeacherID,
			Credit:        load.Credit,
			Lab:           load.Lab,
			LabContinuous: load.LabContinuous,
			Rooms:         load.Rooms,
		})
		switch strings.ToUpper(strings.TrimSpace(load.Preference)) {
		case "MORNING":
			morning = append(morning, load.SubjectID)
		case "AFTERNOON":
			afternoon = append(afternoon, load.SubjectID)
		}
	}

	return scheduler.InputModel{
		Days:    days,
		Periods: periods,
		Classes: []scheduler.Class{
			{Name: classID, Subjects: subjects, Morning: morning, Afternoon: afternoon},
		},
	}
}

func mapSolveError(err *scheduler.SolveError) error {
	switch err.Kind {
	case scheduler.KindInvalidInput:
		return appErrors.Clone(appErrors.ErrValidation, err.Error())
	default:
		return appErrors.Clone(appErrors.ErrPreconditionFailed, err.Error())
	}
}

// exportGeneratedSlots flattens one class's engine timetable back into the
// day-of-week-keyed slot shape the rest of the system expects. Engine day
// index i (1-based) maps onto dayList[i-1], the caller's actual weekday.
func exportGeneratedSlots(tt scheduler.ClassTimetable, dayList []int, periods int) ([]dto.ScheduleSlotProposal, dto.ScheduleFulfillmentStats) {
	stats := dto.ScheduleFulfillmentStats{TotalSlots: len(dayList) * periods}
	slots := make([]dto.ScheduleSlotProposal, 0, stats.TotalSlots)

	for i, weekday := range dayList {
		seq := tt[fmt.Sprintf("Day %d", i+1)]
		for period := 0; period < periods && period < len(seq); period++ {
			assignment := seq[period]
			if assignment.IsFree() {
				stats.FreeHours++
				continue
			}
			stats.AssignedSlots++

			var room *string
			if r := assignment.Room; r != "" && r != "-" {
				room = &r
			}
			slots = append(slots, dto.ScheduleSlotProposal{
				DayOfWeek: weekday,
				TimeSlot:  period + 1,
				SubjectID: assignment.Subject,
				TeacherID: assignmentTeacherID(assignment.Teacher),
				Room:      room,
			})
		}
	}
	return slots, stats
}

// assignmentTeacherID converts the engine's "-" untracked-teacher sentinel
// back into an empty string for the external slot representation.
func assignmentTeacherID(teacher string) string {
	if teacher == "-" {
		return ""
	}
	return teacher
}

// unmetDemand reports, per subject, how much credit-derived demand the
// engine could not place -- the FREE HOUR fallback never fails the solve,
// so residual demand surfaces here instead of as a hard error.
func unmetDemand(slots []dto.ScheduleSlotProposal, loads []dto.SubjectLoadRequest) []dto.ProposalConflict {
	assigned := make(map[string]int, len(loads))
	for _, slot := range slots {
		assigned[slot.SubjectID]++
	}

	conflicts := make([]dto.ProposalConflict, 0)
	for _, load := range loads {
		required := scheduler.CreditToPeriods(load.Credit)
		got := assigned[load.SubjectID]
		if got >= required {
			continue
		}
		conflicts = append(conflicts, dto.ProposalConflict{
			Type:    "UNFULFILLED_DEMAND",
			Message: fmt.Sprintf("subject %s scheduled %d/%d required periods", load.SubjectID, got, required),
			Meta: map[string]any{
				"subjectId": load.SubjectID,
				"teacherId": load.TeacherID,
				"required":  required,
				"assigned":  got,
			},
		})
	}
	return conflicts
}

func mapAssignments(items []models.TeacherAssignment) map[string]map[string]bool {
	result := make(map[string]map[string]bool)
	for _, item := range items {
		if result[item.SubjectID] == nil {
			result[item.SubjectID] = make(map[string]bool)
		}
		result[item.SubjectID][item.TeacherID] = true
	}
	return result
}

func validateSubjectLoads(loads []dto.SubjectLoadRequest, assignments map[string]map[string]bool) error {
	for _, load := range loads {
		if load.SubjectID == "" {
			return appErrors.Clone(appErrors.ErrValidation, "subjectId is required for subjectLoads")
		}
		if load.TeacherID == "" {
			continue
		}
		if teachers, ok := assignments[load.SubjectID]; ok {
			if !teachers[load.TeacherID] {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("teacher %s is not assigned to subject %s", load.TeacherID, load.SubjectID))
			}
		}
	}
	return nil
}

// --- Proposal cache ---

type scheduleProposal struct {
	ProposalID      string
	TermID          string
	ClassID         string
	Score           float64
	Slots           []dto.ScheduleSlotProposal
	Conflicts       []dto.ProposalConflict
	Stats           dto.ScheduleFulfillmentStats
	TimeSlotsPerDay int
	Days            []int
	SubjectLoads    []dto.SubjectLoadRequest
	RequestedAt     time.Time
	Meta            map[string]any
}

// proposalStore caches pending proposals between Generate and Save. The
// default implementation is in-memory; NewScheduleGeneratorService accepts
// a redis-backed implementation (see CacheService) for multi-instance
// deployments.
type proposalStore interface {
	Save(ctx context.Context, proposal scheduleProposal) error
	Get(ctx context.Context, id string) (scheduleProposal, bool, error)
	Delete(ctx context.Context, id string) error
}

type inMemoryProposalStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]scheduleProposal
}

func newInMemoryProposalStore(ttl time.Duration) *inMemoryProposalStore {
	return &inMemoryProposalStore{
		ttl:   ttl,
		items: make(map[string]scheduleProposal),
	}
}

func (s *inMemoryProposalStore) Save(_ context.Context, proposal scheduleProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[proposal.ProposalID] = proposal
	return nil
}

func (s *inMemoryProposalStore) Get(_ context.Context, id string) (scheduleProposal, bool, error) {
	s.mu.RLock()
	proposal, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return scheduleProposal{}, false, nil
	}
	if time.Since(proposal.RequestedAt) > s.ttl {
		_ = s.Delete(context.Background(), id)
		return scheduleProposal{}, false, nil
	}
	return proposal, true, nil
}

func (s *inMemoryProposalStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}

// --- day/week helpers ---

func normalizeDays(days []int) []int {
	unique := make(map[int]struct{})
	for _, day := range days {
		if day < 1 || day > 7 {
			continue
		}
		unique[day] = struct{}{}
	}
	result := make([]int, 0, len(unique))
	for day := range unique {
		result = append(result, day)
	}
	sort.Ints(result)
	return result
}

var dayIndexMap = map[int]string{
	1: "MONDAY",
	2: "TUESDAY",
	3: "WEDNESDAY",
	4: "THURSDAY",
	5: "FRIDAY",
	6: "SATURDAY",
	7: "SUNDAY",
}

func dayIndexToName(day int) string {
	if name, ok := dayIndexMap[day]; ok {
		return name
	}
	return "MONDAY"
}

func slotRoomValue(slot dto.ScheduleSlotProposal) string {
	if slot.Room == nil {
		return ""
	}
	return *slot.Room
}

// --- Conflict checker ---

type defaultScheduleConflictChecker struct {
	repo scheduleFeeder
}

func (d *defaultScheduleConflictChecker) Check(ctx context.Context, termID, classID string, slots []dto.ScheduleSlotProposal) ([]models.ScheduleConflict, error) {
	var conflicts []models.ScheduleConflict
	for _, slot := range slots {
		existing, err := d.repo.FindConflicts(ctx, termID, dayIndexToName(slot.DayOfWeek), strconv.Itoa(slot.TimeSlot))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check conflicts")
		}
		for _, sched := range existing {
			if sched.ClassID == classID {
				conflicts = append(conflicts, models.ScheduleConflict{
					ScheduleID: sched.ID,
					TermID:     sched.TermID,
					ClassID:    sched.ClassID,
					SubjectID:  sched.SubjectID,
					TeacherID:  sched.TeacherID,
					DayOfWeek:  sched.DayOfWeek,
					TimeSlot:   sched.TimeSlot,
					Room:       sched.Room,
					Dimension:  "CLASS",
				})
			}
			if sched.TeacherID == slot.TeacherID {
				conflicts = append(conflicts, models.ScheduleConflict{
					ScheduleID: sched.ID,
					TermID:     sched.TermID,
					ClassID:    sched.ClassID,
					SubjectID:  sched.SubjectID,
					TeacherID:  sched.TeacherID,
					DayOfWeek:  sched.DayOfWeek,
					TimeSlot:   sched.TimeSlot,
					Room:       sched.Room,
					Dimension:  "TEACHER",
				})
			}
			if sched.Room != "" && slot.Room != nil && *slot.Room != "" && sched.Room == *slot.Room {
				conflicts = append(conflicts, models.ScheduleConflict{
					ScheduleID: sched.ID,
					TermID:     sched.TermID,
					ClassID:    sched.ClassID,
					SubjectID:  sched.SubjectID,
					TeacherID:  sched.TeacherID,
					DayOfWeek:  sched.DayOfWeek,
					TimeSlot:   sched.TimeSlot,
					Room:       sched.Room,
					Dimension:  "ROOM",
				})
			}
		}
	}
	return conflicts, nil
}
