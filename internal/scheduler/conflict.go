package scheduler

// conflictIndex is the shared occupancy table preventing a teacher or room
// from being assigned to two slots at the same (day, period) across all
// classes. It is the sole arbiter of cross-class conflicts; flat arrays
// indexed by (day-1)*periods+period beat nested maps at the small fan-in this
// problem sees (1-10 busy resources per slot).
type conflictIndex struct {
	periods  int
	teachers []map[string]struct{}
	rooms    []map[string]struct{}
}

func newConflictIndex(days, periods int) *conflictIndex {
	size := days * periods
	idx := &conflictIndex{
		periods:  periods,
		teachers: make([]map[string]struct{}, size),
		rooms:    make([]map[string]struct{}, size),
	}
	for i := range idx.teachers {
		idx.teachers[i] = make(map[string]struct{})
		idx.rooms[i] = make(map[string]struct{})
	}
	return idx
}

func (c *conflictIndex) cell(day, period int) int {
	return (day-1)*c.periods + period
}

func (c *conflictIndex) isTeacherBusy(day, period int, teacher string) bool {
	if teacher == "" {
		return false
	}
	_, busy := c.teachers[c.cell(day, period)][teacher]
	return busy
}

// isRoomFree returns the first room from the candidate list not currently
// occupied at that slot, or "" if all are occupied.
func (c *conflictIndex) isRoomFree(day, period int, rooms []string) string {
	busy := c.rooms[c.cell(day, period)]
	for _, room := range rooms {
		if _, taken := busy[room]; !taken {
			return room
		}
	}
	return ""
}

func (c *conflictIndex) reserve(day, period int, teacher, room string) {
	cell := c.cell(day, period)
	if teacher != "" {
		c.teachers[cell][teacher] = struct{}{}
	}
	if room != "" && room != freeSlotMarker {
		c.rooms[cell][room] = struct{}{}
	}
}

func (c *conflictIndex) release(day, period int, teacher, room string) {
	cell := c.cell(day, period)
	if teacher != "" {
		delete(c.teachers[cell], teacher)
	}
	if room != "" && room != freeSlotMarker {
		delete(c.rooms[cell], room)
	}
}
