package scheduler

import "sort"

// ProgressFunc is invoked synchronously after each per-class solve
// completes. Implementations must not mutate solver state.
type ProgressFunc func(index, total int, className string, success bool)

// Solve runs the cross-class orchestration described in §4.G: classes are
// solved sequentially in descending order of total required periods (ties
// broken by name), sharing one conflict index so later classes see earlier
// classes' teacher/room reservations. The first class that cannot be solved
// aborts the whole run with an Infeasible error; all state up to that point
// must be discarded by the caller.
func Solve(input InputModel, progress ProgressFunc) (Timetables, *SolveError) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	order := orderClasses(input.Classes)
	idx := newConflictIndex(input.Days, input.Periods)
	result := make(Timetables, len(order))

	for i, class := range order {
		state := newClassState(class, input.Days, input.Periods)
		success := state.solve(idx)

		if progress != nil {
			progress(i+1, len(order), class.Name, success)
		}

		if !success {
			return nil, infeasible(class.Name)
		}
		result[class.Name] = state.export()
	}

	return result, nil
}

// orderClasses sorts a copy of classes by descending total required
// periods, ascending name on ties, without mutating the input slice.
func orderClasses(classes []Class) []Class {
	ordered := make([]Class, len(classes))
	copy(ordered, classes)

	totals := make(map[string]int, len(ordered))
	for _, class := range ordered {
		total := 0
		for _, subject := range class.Subjects {
			total += CreditToPeriods(subject.Credit)
		}
		totals[class.Name] = total
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if totals[a.Name] != totals[b.Name] {
			return totals[a.Name] > totals[b.Name]
		}
		return a.Name < b.Name
	})
	return ordered
}
