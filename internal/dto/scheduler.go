package dto

// SubjectLoadRequest describes one subject taught within the class being
// scheduled: its credit-derived weekly period demand, teacher, and the
// constraints the generator must honour while placing it.
type SubjectLoadRequest struct {
	SubjectID string `json:"subjectId" validate:"required"`
	TeacherID string `json:"teacherId"`
	// Credit drives the required weekly period count; see scheduler.CreditToPeriods.
	Credit int `json:"credit" validate:"required,min=1"`
	// Lab marks this subject as requiring a contiguous block of LabContinuous periods.
	Lab bool `json:"lab"`
	LabContinuous int `json:"labContinuous" validate:"omitempty,min=1,max=12"`
	// Rooms lists candidate rooms; empty means unconstrained.
	Rooms []string `json:"rooms"`
	// Preference pins the subject to the morning or afternoon half of the day.
	Preference string `json:"preference" validate:"omitempty,oneof=MORNING AFTERNOON"`
}

// GenerateScheduleRequest instructs the generator to build a proposal for the class/term.
type GenerateScheduleRequest struct {
	TermID          string               `json:"termId" validate:"required"`
	ClassID         string               `json:"classId" validate:"required"`
	TimeSlotsPerDay int                  `json:"timeSlotsPerDay" validate:"required,min=1,max=12"`
	Days            []int                `json:"days" validate:"required,min=1,dive,min=1,max=7"`
	SubjectLoads    []SubjectLoadRequest `json:"subjectLoads" validate:"required,min=1,dive"`
	HardConstraints []string             `json:"hardConstraints"`
	SoftConstraints []string             `json:"softConstraints"`
	Meta            map[string]any       `json:"meta"`
}

// ScheduleSlotProposal represents a generated slot.
type ScheduleSlotProposal struct {
	DayOfWeek int     `json:"dayOfWeek"`
	TimeSlot  int     `json:"timeSlot"`
	SubjectID string  `json:"subjectId"`
	TeacherID string  `json:"teacherId"`
	Room      *string `json:"room,omitempty"`
}

// ProposalConflict captures unmet demand or hard constraint violations.
type ProposalConflict struct {
	Type    string                `json:"type"`
	Message string                `json:"message"`
	Slot    *ScheduleSlotProposal `json:"slot,omitempty"`
	Meta    map[string]any        `json:"meta,omitempty"`
}

// ScheduleFulfillmentStats summarises how much of the day grid the
// generator filled versus left as FREE HOUR.
type ScheduleFulfillmentStats struct {
	TotalSlots    int `json:"totalSlots"`
	AssignedSlots int `json:"assignedSlots"`
	FreeHours     int `json:"freeHours"`
}

// GenerateScheduleResponse returns the built timetable proposal.
type GenerateScheduleResponse struct {
	ProposalID string                   `json:"proposalId"`
	Score      float64                  `json:"score"`
	Slots      []ScheduleSlotProposal   `json:"slots"`
	Conflicts  []ProposalConflict       `json:"conflicts"`
	Stats      ScheduleFulfillmentStats `json:"stats"`
}

// SaveScheduleRequest persists a proposal into semester schedules.
type SaveScheduleRequest struct {
	ProposalID    string `json:"proposalId" validate:"required"`
	CommitToDaily bool   `json:"commitToDaily"`
}

// SemesterScheduleQuery filters schedule summaries by class and term.
type SemesterScheduleQuery struct {
	TermID  string `form:"termId" json:"termId"`
	ClassID string `form:"classId" json:"classId"`
}
