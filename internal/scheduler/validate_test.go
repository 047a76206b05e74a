package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() InputModel {
	return InputModel{
		Days:    2,
		Periods: 4,
		Classes: []Class{
			{
				Name: "10A",
				Subjects: []Subject{
					{Name: "Math", Teacher: "T1", Credit: 1},
					{Name: "Bio Lab", Teacher: "T2", Credit: 1, Lab: true, LabContinuous: 2, Rooms: []string{"Lab1"}},
				},
				Morning:   []string{"Math"},
				Afternoon: []string{"Bio Lab"},
			},
		},
	}
}

func TestValidateInputAccepts(t *testing.T) {
	assert.Nil(t, ValidateInput(validInput()))
}

func TestValidateInputRejectsDaysOutOfRange(t *testing.T) {
	input := validInput()
	input.Days = 8
	err := ValidateInput(input)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidInput, err.Kind)
}

func TestValidateInputRejectsPeriodsOutOfRange(t *testing.T) {
	input := validInput()
	input.Periods = 0
	err := ValidateInput(input)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidInput, err.Kind)
}

func TestValidateInputRejectsDuplicateSubject(t *testing.T) {
	input := validInput()
	input.Classes[0].Subjects = append(input.Classes[0].Subjects, Subject{Name: "Math", Credit: 1})
	err := ValidateInput(input)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidInput, err.Kind)
}

func TestValidateInputRejectsCreditBelowOne(t *testing.T) {
	input := validInput()
	input.Classes[0].Subjects[0].Credit = 0
	err := ValidateInput(input)
	require.NotNil(t, err)
}

func TestValidateInputRejectsLabContinuousOutOfRange(t *testing.T) {
	input := validInput()
	input.Classes[0].Subjects[1].LabContinuous = input.Periods + 1
	err := ValidateInput(input)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidInput, err.Kind)
}

func TestValidateInputAcceptsLabContinuousEqualToPeriods(t *testing.T) {
	input := validInput()
	input.Classes[0].Subjects[1].LabContinuous = input.Periods
	assert.Nil(t, ValidateInput(input))
}

func TestValidateInputRejectsUnknownPreferenceSubject(t *testing.T) {
	input := validInput()
	input.Classes[0].Morning = append(input.Classes[0].Morning, "Chemistry")
	err := ValidateInput(input)
	require.NotNil(t, err)
}

func TestValidateInputRejectsOverlappingPreferenceSets(t *testing.T) {
	input := validInput()
	input.Classes[0].Afternoon = append(input.Classes[0].Afternoon, "Math")
	err := ValidateInput(input)
	require.NotNil(t, err)
}
