package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A lab whose block length equals the day's period count occupies the
// entire day in one placement, on the first day it is tried.
func TestSolveLabContinuousEqualToPeriods(t *testing.T) {
	input := InputModel{
		Days:    2,
		Periods: 4,
		Classes: []Class{
			{
				Name: "10A",
				Subjects: []Subject{
					{Name: "Workshop", Teacher: "T1", Credit: 1, Lab: true, LabContinuous: 4},
				},
			},
		},
	}

	result, err := Solve(input, nil)
	require.Nil(t, err)

	tt := result["10A"]
	day1 := tt[dayKey(1)]
	for period := 0; period < 4; period++ {
		assert.Equal(t, "Workshop", day1[period].Subject)
	}
}

// canPlaceLab rejects a block that would run past the end of the day
// without writing anything.
func TestCanPlaceLabRejectsOverrun(t *testing.T) {
	class := Class{
		Name: "10A",
		Subjects: []Subject{
			{Name: "Workshop", Teacher: "T1", Credit: 1, Lab: true, LabContinuous: 2},
		},
	}
	state := newClassState(class, 1, 4)
	idx := newConflictIndex(1, 4)

	assert.False(t, state.canPlaceLab(idx, 1, 3, state.subjectsByName["Workshop"], 2))
	assert.Equal(t, freeAssignment(), state.slot(1, 3))
}

// placeLab/removeLab is an exact round trip over the whole block.
func TestPlaceLabRemoveLabRoundTrip(t *testing.T) {
	class := Class{
		Name: "10A",
		Subjects: []Subject{
			{Name: "Workshop", Teacher: "T1", Credit: 1, Lab: true, LabContinuous: 2, Rooms: []string{"Lab1"}},
		},
	}
	state := newClassState(class, 1, 4)
	idx := newConflictIndex(1, 4)
	subject := state.subjectsByName["Workshop"]

	before := state.export()
	require.True(t, state.canPlaceLab(idx, 1, 0, subject, 2))
	state.placeLab(idx, 1, 0, subject, 2)
	assert.Equal(t, "Workshop", state.slot(1, 0).Subject)
	assert.Equal(t, "Workshop", state.slot(1, 1).Subject)

	state.removeLab(idx, 1, 0, 2)
	assert.Equal(t, before, state.export())
	assert.False(t, idx.isTeacherBusy(1, 0, "T1"))
	assert.False(t, idx.isTeacherBusy(1, 1, "T1"))
}
