package scheduler

// canPlaceLab pre-checks a contiguous run of length periods starting at
// period on day: the block must fit within the day and every offset must
// independently satisfy canPlace against the class's current (unwritten)
// state. Checking before any write is what makes the "once per day" rule
// (4.D.4) behave correctly for labs: a partially-written block would
// otherwise satisfy its own later offsets.
func (s *classState) canPlaceLab(idx *conflictIndex, day, period int, subject Subject, length int) bool {
	if period+length > s.periods {
		return false
	}
	for offset := 0; offset < length; offset++ {
		if !s.canPlace(idx, day, period+offset, subject.Name) {
			return false
		}
	}
	return true
}

// placeLab writes subject into each of the length periods starting at
// period. Callers must have just confirmed canPlaceLab against the
// unwritten state, so the writes here must not re-invoke canPlace: once
// offset 0 is written, the "once per day" rule would reject every
// subsequent offset of the very block being placed.
func (s *classState) placeLab(idx *conflictIndex, day, period int, subject Subject, length int) {
	for offset := 0; offset < length; offset++ {
		s.place(idx, day, period+offset, subject.Name)
	}
}

// removeLab is the exact inverse of placeLab.
func (s *classState) removeLab(idx *conflictIndex, day, period, length int) {
	for offset := 0; offset < length; offset++ {
		s.remove(idx, day, period+offset)
	}
}
