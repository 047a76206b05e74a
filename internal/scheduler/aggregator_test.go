package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6: the teacher-schedule aggregator is a faithful, idempotent
// projection of the class timetables it is built from.
func TestAggregateTeacherSchedulesRoundTrip(t *testing.T) {
	input := InputModel{
		Days:    3,
		Periods: 4,
		Classes: []Class{
			{
				Name:     "10A",
				Subjects: []Subject{{Name: "Physics", Teacher: "T1", Credit: 1, Rooms: []string{"R1"}}},
			},
			{
				Name:     "10B",
				Subjects: []Subject{{Name: "Physics", Teacher: "T1", Credit: 1, Rooms: []string{"R1"}}},
			},
		},
	}

	result, err := Solve(input, nil)
	require.Nil(t, err)

	schedules := AggregateTeacherSchedules(result, input.Days, input.Periods)
	t1 := schedules["T1"]
	require.NotNil(t, t1)

	busyCount := 0
	for className, tt := range result {
		for day := 1; day <= input.Days; day++ {
			seq := tt[dayKey(day)]
			for period := 0; period < input.Periods; period++ {
				assignment := seq[period]
				if assignment.Teacher != "T1" {
					continue
				}
				busyCount++
				slot := t1[dayKey(day)][period]
				assert.Equal(t, assignment.Subject, slot.Subject)
				assert.Equal(t, assignment.Room, slot.Room)
				assert.Equal(t, className, slot.Class)
			}
		}
	}
	assert.Equal(t, 2*CreditToPeriods(1), busyCount)

	// Every untouched slot stays the FREE sentinel.
	freeCount := 0
	for day := 1; day <= input.Days; day++ {
		for period := 0; period < input.Periods; period++ {
			if t1[dayKey(day)][period].Subject == FreeHour {
				freeCount++
			}
		}
	}
	assert.Equal(t, input.Days*input.Periods-busyCount, freeCount)

	// The projection is idempotent: aggregating again from the same
	// timetables yields an identical result.
	again := AggregateTeacherSchedules(result, input.Days, input.Periods)
	assert.Equal(t, schedules, again)
}

func TestAggregateTeacherSchedulesIgnoresFreeHours(t *testing.T) {
	timetables := Timetables{
		"10A": ClassTimetable{
			dayKey(1): DaySequence{freeAssignment(), freeAssignment()},
		},
	}
	schedules := AggregateTeacherSchedules(timetables, 1, 2)
	assert.Empty(t, schedules)
}
