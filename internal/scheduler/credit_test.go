package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditToPeriods(t *testing.T) {
	cases := []struct {
		credit  int
		periods int
	}{
		{1, 3},
		{2, 4},
		{3, 5},
		{4, 7},
		{5, 10},
		{6, 12},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.periods, CreditToPeriods(tc.credit))
	}
}
