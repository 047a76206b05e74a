package scheduler

// creditToPeriodsTable holds the exact mappings from §3: credits that do not
// appear here fall back to max(1, 2*credit).
var creditToPeriodsTable = map[int]int{
	1: 3,
	3: 5,
	4: 7,
}

// CreditToPeriods converts a subject's credit hours into its required
// weekly period count. It is a pure function of credit alone.
func CreditToPeriods(credit int) int {
	if periods, ok := creditToPeriodsTable[credit]; ok {
		return periods
	}
	if doubled := credit * 2; doubled > 1 {
		return doubled
	}
	return 1
}
