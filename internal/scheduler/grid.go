package scheduler

// classState is the mutable solve-state for one class: its timetable grid
// under construction, the remaining-periods ledger, and lookup tables
// derived once from the class's input. It is owned by a single solve
// invocation; nothing here is shared across classes except through the
// conflictIndex passed into every method.
type classState struct {
	name    string
	periods int
	days    int

	// grid[day-1][period] is the current assignment for that slot.
	grid [][]Assignment

	subjects       []Subject
	subjectsByName map[string]Subject
	remaining      map[string]int
	morning        map[string]struct{}
	afternoon      map[string]struct{}
}

func newClassState(class Class, days, periods int) *classState {
	grid := make([][]Assignment, days)
	for d := range grid {
		row := make([]Assignment, periods)
		for p := range row {
			row[p] = freeAssignment()
		}
		grid[d] = row
	}

	subjectsByName := make(map[string]Subject, len(class.Subjects))
	remaining := make(map[string]int, len(class.Subjects))
	for _, subject := range class.Subjects {
		subjectsByName[subject.Name] = subject
		remaining[subject.Name] = CreditToPeriods(subject.Credit)
	}

	morning := make(map[string]struct{}, len(class.Morning))
	for _, name := range class.Morning {
		morning[name] = struct{}{}
	}
	afternoon := make(map[string]struct{}, len(class.Afternoon))
	for _, name := range class.Afternoon {
		afternoon[name] = struct{}{}
	}

	return &classState{
		name:           class.Name,
		periods:        periods,
		days:           days,
		grid:           grid,
		subjects:       class.Subjects,
		subjectsByName: subjectsByName,
		remaining:      remaining,
		morning:        morning,
		afternoon:      afternoon,
	}
}

func (s *classState) slot(day, period int) Assignment {
	return s.grid[day-1][period]
}

func (s *classState) setSlot(day, period int, a Assignment) {
	s.grid[day-1][period] = a
}

// placedToday reports whether subject already occupies some period of day.
// Rule 4.D(4) applies uniformly to labs and non-labs: a lab block counts as
// one placement for this purpose even though it spans several periods.
func (s *classState) placedToday(day int, subject string) bool {
	for _, a := range s.grid[day-1] {
		if a.Subject == subject {
			return true
		}
	}
	return false
}

// export renders the grid into the external Timetables representation,
// "Day n" keyed and 1-indexed.
func (s *classState) export() ClassTimetable {
	out := make(ClassTimetable, s.days)
	for day := 1; day <= s.days; day++ {
		seq := make(DaySequence, s.periods)
		copy(seq, s.grid[day-1])
		out[dayKey(day)] = seq
	}
	return out
}

// totalRequiredPeriods sums the credit-derived requirement across all subjects.
func (s *classState) totalRequiredPeriods() int {
	total := 0
	for _, subject := range s.subjects {
		total += CreditToPeriods(subject.Credit)
	}
	return total
}
