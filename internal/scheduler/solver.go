package scheduler

import "sort"

// solve runs the depth-first backtracking search described in §4.F over the
// flat slot sequence (1,0), (1,1), ..., (days, periods-1).
func (s *classState) solve(idx *conflictIndex) bool {
	return s.backtrack(idx, 1, 0)
}

func (s *classState) backtrack(idx *conflictIndex, day, period int) bool {
	if day > s.days {
		return true
	}

	nextDay, nextPeriod := advance(day, period, s.periods)

	for _, name := range s.orderedCandidates() {
		if name != FreeHour && s.remaining[name] <= 0 {
			continue
		}

		data, isReal := s.subjectsByName[name]
		if isReal && data.Lab {
			if !s.canPlaceLab(idx, day, period, data, data.LabContinuous) {
				continue
			}
			s.placeLab(idx, day, period, data, data.LabContinuous)
			blockDay, blockPeriod := advance(day, period+data.LabContinuous-1, s.periods)
			if s.backtrack(idx, blockDay, blockPeriod) {
				return true
			}
			s.removeLab(idx, day, period, data.LabContinuous)
			continue
		}

		if !s.canPlace(idx, day, period, name) {
			continue
		}
		s.place(idx, day, period, name)
		if s.backtrack(idx, nextDay, nextPeriod) {
			return true
		}
		s.remove(idx, day, period)
	}

	return false
}

// orderedCandidates returns subjects with remaining demand, labs first then
// by descending remaining periods (stable on ties, preserving declaration
// order), followed by FREE HOUR as the final fallback.
func (s *classState) orderedCandidates() []string {
	type candidate struct {
		name      string
		lab       bool
		remaining int
	}

	list := make([]candidate, 0, len(s.subjects))
	for _, subject := range s.subjects {
		if remaining := s.remaining[subject.Name]; remaining > 0 {
			list = append(list, candidate{subject.Name, subject.Lab, remaining})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].lab != list[j].lab {
			return list[i].lab
		}
		return list[i].remaining > list[j].remaining
	})

	names := make([]string, 0, len(list)+1)
	for _, c := range list {
		names = append(names, c.name)
	}
	names = append(names, FreeHour)
	return names
}

// advance returns the next (day, period) in the flat slot sequence after
// (day, period).
func advance(day, period, periods int) (int, int) {
	if period+1 < periods {
		return day, period + 1
	}
	return day + 1, 0
}
