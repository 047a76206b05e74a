package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// TeacherUnavailableSlot records a day/time-range in which a teacher is
// unavailable. It is stored and returned as part of TeacherPreference; the
// schedule generator does not read it.
type TeacherUnavailableSlot struct {
	DayOfWeek string `json:"day_of_week"`
	TimeRange string `json:"time_range"`
}

// TeacherPreference carries the per-teacher load caps and blocked windows.
// TeacherAssignmentService checks MaxLoadPerWeek when binding a new
// assignment; MaxLoadPerDay and Unavailable are stored only, and the
// schedule generator reads none of these fields. Unavailable is stored as raw JSON ([]TeacherUnavailableSlot)
// rather than a typed column so the slot shape can evolve without a
// migration.
type TeacherPreference struct {
	ID             string         `db:"id" json:"id"`
	TeacherID      string         `db:"teacher_id" json:"teacher_id"`
	MaxLoadPerDay  int            `db:"max_load_per_day" json:"max_load_per_day"`
	MaxLoadPerWeek int            `db:"max_load_per_week" json:"max_load_per_week"`
	Unavailable    types.JSONText `db:"unavailable" json:"unavailable"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}
