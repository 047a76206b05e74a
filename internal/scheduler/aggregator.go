package scheduler

// TeacherSlot is the projection of an Assignment onto a specific teacher:
// which subject, room and class occupied their time at that slot.
type TeacherSlot struct {
	Subject string
	Room    string
	Class   string
}

func freeTeacherSlot() TeacherSlot {
	return TeacherSlot{Subject: FreeHour, Room: freeSlotMarker, Class: freeSlotMarker}
}

// TeacherSchedules is the derived teacher -> day -> slot sequence view
// described in §4.H, keyed by teacher identifier.
type TeacherSchedules map[string]map[string][]TeacherSlot

// AggregateTeacherSchedules is a pure projection over a finished Timetables
// result: it does not read conflict-index or solver state, only the final
// assignments, so it is safe to call repeatedly on the same input.
func AggregateTeacherSchedules(timetables Timetables, days, periods int) TeacherSchedules {
	out := make(TeacherSchedules)

	for className, classTimetable := range timetables {
		for day := 1; day <= days; day++ {
			key := dayKey(day)
			sequence := classTimetable[key]
			for period := 0; period < periods && period < len(sequence); period++ {
				assignment := sequence[period]
				if assignment.IsFree() || assignment.Teacher == "" || assignment.Teacher == freeSlotMarker {
					continue
				}
				ensureTeacherGrid(out, assignment.Teacher, days, periods)
				out[assignment.Teacher][key][period] = TeacherSlot{
					Subject: assignment.Subject,
					Room:    assignment.Room,
					Class:   className,
				}
			}
		}
	}

	return out
}

func ensureTeacherGrid(out TeacherSchedules, teacher string, days, periods int) {
	if _, exists := out[teacher]; exists {
		return
	}
	grid := make(map[string][]TeacherSlot, days)
	for day := 1; day <= days; day++ {
		row := make([]TeacherSlot, periods)
		for p := range row {
			row[p] = freeTeacherSlot()
		}
		grid[dayKey(day)] = row
	}
	out[teacher] = grid
}
