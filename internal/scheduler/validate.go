package scheduler

// ValidateInput checks the structural invariants from §4.A. Feasibility is
// never checked here; an over-constrained but structurally valid input is
// reported as Infeasible by Solve, not rejected here.
func ValidateInput(input InputModel) *SolveError {
	if input.Days < 1 || input.Days > 7 {
		return invalidInput("days must be in [1,7], got %d", input.Days)
	}
	if input.Periods < 1 || input.Periods > 12 {
		return invalidInput("periods must be in [1,12], got %d", input.Periods)
	}

	for _, class := range input.Classes {
		names := make(map[string]struct{}, len(class.Subjects))
		for _, subject := range class.Subjects {
			if _, dup := names[subject.Name]; dup {
				return invalidInput("class %q has duplicate subject %q", class.Name, subject.Name)
			}
			names[subject.Name] = struct{}{}

			if subject.Credit < 1 {
				return invalidInput("class %q subject %q: credit must be >= 1", class.Name, subject.Name)
			}
			if subject.Lab {
				if subject.LabContinuous < 1 || subject.LabContinuous > input.Periods {
					return invalidInput(
						"class %q subject %q: lab_continuous must be in [1,%d], got %d",
						class.Name, subject.Name, input.Periods, subject.LabContinuous,
					)
				}
			}
		}

		morning := make(map[string]struct{}, len(class.Morning))
		for _, name := range class.Morning {
			if _, ok := names[name]; !ok {
				return invalidInput("class %q: morning preference references unknown subject %q", class.Name, name)
			}
			morning[name] = struct{}{}
		}
		for _, name := range class.Afternoon {
			if _, ok := names[name]; !ok {
				return invalidInput("class %q: afternoon preference references unknown subject %q", class.Name, name)
			}
			if _, clash := morning[name]; clash {
				return invalidInput("class %q: subject %q is in both morning and afternoon sets", class.Name, name)
			}
		}
	}

	return nil
}
