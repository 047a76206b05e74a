package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-adp-api/internal/models"
)

// SemesterScheduleSlotRepository manages slots for semester schedules.
type SemesterScheduleSlotRepository struct {
	db *sqlx.DB
}

// NewSemesterScheduleSlotRepository builds repository.
func NewSemesterScheduleSlotRepository(db *sqlx.DB) *SemesterScheduleSlotRepository {
	return &SemesterScheduleSlotRepository{db: db}
}

func (r *SemesterScheduleSlotRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// UpsertBatch inserts or updates slots for a semester schedule.
func (r *SemesterScheduleSlotRepository) UpsertBatch(ctx context.Context, exec sqlx.ExtContext, slots []models.SemesterScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}
	target := r.exec(exec)
	now := time.Now().UTC()

	const query = `
INSERT INTO semester_schedule_slots (id, semester_schedule_id, day_of_week, time_slot, subject_id, teacher_id, room, created_at)
VALUES (:id, :semester_schedule_id, :day_of_week, :time_slot, :subject_id, :teacher_id, :room, :created_at)
ON CONFLICT (semester_schedule_id, day_of_week, time_slot) DO UPDATE
SET subject_id = EXCLUDED.subject_id,
    teacher_id = EXCLUDED.teacher_id,
    room = EXCLUDED.room`

	for i := range slots {
		slot := &slots[i]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}
		if slot.CreatedAt.IsZero() {
			slot.CreatedAt = now
		}
		if _, err := sqlx.NamedExecContext(ctx, target, query, slot); err != nil {
			return fmt.Errorf("upsert semester schedule slot: %w", err)
		}
	}
	return nil
}

// ListBySchedule returns slots ordered by day/time for a schedule.
func (r *SemesterScheduleSlotRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]models.SemesterScheduleSlot, error) {
	const query = `SELECT id, semester_schedule_id, day_of_week, time_slot, subject_id, teacher_id, room, created_at
FROM semester_schedule_slots WHERE semester_schedule_id = $1 ORDER BY day_of_week ASC, time_slot ASC`
	var slots []models.SemesterScheduleSlot
	if err := r.db.SelectContext(ctx, &slots, query, scheduleID); err != nil {
		return nil, fmt.Errorf("list semester schedule slots: %w", err)
	}
	return slots, nil
}

// TeacherScheduleRow is a slot projected across every published schedule a
// teacher appears in for a term, carrying the class it belongs to.
type TeacherScheduleRow struct {
	ClassID   string  `db:"class_id"`
	ClassName string  `db:"class_name"`
	DayOfWeek int     `db:"day_of_week"`
	TimeSlot  int     `db:"time_slot"`
	SubjectID string  `db:"subject_id"`
	Room      *string `db:"room"`
}

// ListPublishedByTermAndTeacher aggregates a teacher's slots across every
// published schedule in the term, for the teacher-schedule export.
func (r *SemesterScheduleSlotRepository) ListPublishedByTermAndTeacher(ctx context.Context, termID, teacherID string) ([]TeacherScheduleRow, error) {
	const query = `
SELECT c.id AS class_id, c.name AS class_name,
       sl.day_of_week, sl.time_slot, sl.subject_id, sl.room
FROM semester_schedule_slots sl
JOIN semester_schedules ss ON ss.id = sl.semester_schedule_id
JOIN classes c ON c.id = ss.class_id
WHERE ss.term_id = $1 AND ss.status = 'PUBLISHED' AND sl.teacher_id = $2
ORDER BY c.name ASC, sl.day_of_week ASC, sl.time_slot ASC`
	var rows []TeacherScheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, termID, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher schedule rows: %w", err)
	}
	return rows, nil
}
