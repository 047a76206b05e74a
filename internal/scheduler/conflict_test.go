package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictIndexTeacherExclusivity(t *testing.T) {
	idx := newConflictIndex(2, 4)

	assert.False(t, idx.isTeacherBusy(1, 0, "T1"))
	idx.reserve(1, 0, "T1", "")
	assert.True(t, idx.isTeacherBusy(1, 0, "T1"))
	assert.False(t, idx.isTeacherBusy(1, 1, "T1"))
	assert.False(t, idx.isTeacherBusy(2, 0, "T1"))

	idx.release(1, 0, "T1", "")
	assert.False(t, idx.isTeacherBusy(1, 0, "T1"))
}

func TestConflictIndexEmptyTeacherNeverBusy(t *testing.T) {
	idx := newConflictIndex(1, 4)
	idx.reserve(1, 0, "", "")
	assert.False(t, idx.isTeacherBusy(1, 0, ""))
}

func TestConflictIndexRoomFreePicksFirstAvailable(t *testing.T) {
	idx := newConflictIndex(1, 4)
	rooms := []string{"R1", "R2"}

	assert.Equal(t, "R1", idx.isRoomFree(1, 0, rooms))
	idx.reserve(1, 0, "", "R1")
	assert.Equal(t, "R2", idx.isRoomFree(1, 0, rooms))
	idx.reserve(1, 0, "", "R2")
	assert.Equal(t, "", idx.isRoomFree(1, 0, rooms))

	idx.release(1, 0, "", "R1")
	assert.Equal(t, "R1", idx.isRoomFree(1, 0, rooms))
}
