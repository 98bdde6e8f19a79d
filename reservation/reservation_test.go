package reservation

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dur(seconds int) *time.Duration {
	d := time.Duration(seconds) * time.Second
	return &d
}

func TestReservePicksLastFreeCandidate(t *testing.T) {
	system := NewSystem()
	start := time.Unix(0, 0)

	r, ok := system.Reserve(start, []int{3, 7, 11}, dur(60))
	require.True(t, ok)
	assert.Equal(t, 11, r.Waypoint)
}

func TestReserveSkipsOccupiedCandidates(t *testing.T) {
	system := NewSystem()
	start := time.Unix(0, 0)

	_, ok := system.Reserve(start, []int{5}, dur(60))
	require.True(t, ok)

	r, ok := system.Reserve(start.Add(30*time.Second), []int{5, 9}, dur(60))
	require.True(t, ok)
	assert.Equal(t, 9, r.Waypoint)
}

func TestReserveFailsWhenAllCandidatesOccupied(t *testing.T) {
	system := NewSystem()
	start := time.Unix(0, 0)

	_, ok := system.Reserve(start, []int{1}, dur(60))
	require.True(t, ok)

	_, ok = system.Reserve(start.Add(30*time.Second), []int{1}, dur(60))
	assert.False(t, ok)
}

func TestReserveAllowsBackToBackBookings(t *testing.T) {
	system := NewSystem()
	start := time.Unix(0, 0)

	_, ok := system.Reserve(start, []int{1}, dur(60))
	require.True(t, ok)

	_, ok = system.Reserve(start.Add(60*time.Second), []int{1}, dur(60))
	assert.True(t, ok)
}

func TestInfiniteReservationBlocksAllLaterBookings(t *testing.T) {
	system := NewSystem()
	start := time.Unix(0, 0)

	_, ok := system.Reserve(start, []int{1}, nil)
	require.True(t, ok)

	_, ok = system.Reserve(start.Add(time.Hour), []int{1}, dur(60))
	assert.False(t, ok)
}

func TestCancelFreesTheWaypoint(t *testing.T) {
	system := NewSystem()
	start := time.Unix(0, 0)

	r, ok := system.Reserve(start, []int{1}, dur(60))
	require.True(t, ok)

	require.NoError(t, system.Cancel(r.ID))

	_, ok = system.Reserve(start, []int{1}, dur(60))
	assert.True(t, ok)
}

func TestCancelUnknownIDReturnsSentinelError(t *testing.T) {
	system := NewSystem()
	err := system.Cancel(uuid.NewV4())
	require.Error(t, err)
	assert.True(t, errors.Cause(err) == ErrUnknownReservation)
}

func TestReservationFinishReportsInfiniteAsFalse(t *testing.T) {
	r := Reservation{Start: time.Unix(0, 0)}
	_, ok := r.Finish()
	assert.False(t, ok)

	r.Duration = dur(120)
	finish, ok := r.Finish()
	assert.True(t, ok)
	assert.Equal(t, r.Start.Add(120*time.Second), finish)
}
