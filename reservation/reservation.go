// Package reservation implements a reservation-system peripheral
// collaborator: a time-slot booking ledger over waypoints, with an
// allocation policy that prefers the last free candidate among several.
package reservation

import (
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// ErrUnknownReservation is returned by Cancel when the given id does not
// name a reservation currently held by the System.
var ErrUnknownReservation = errors.New("reservation: unknown reservation id")

// Reservation is a single booked time window on one waypoint. A nil
// Duration means the reservation is infinite.
type Reservation struct {
	ID       uuid.UUID
	Waypoint int
	Start    time.Time
	Duration *time.Duration
}

// Finish returns the reservation's end time and true, or false if the
// reservation is infinite.
func (r Reservation) Finish() (time.Time, bool) {
	if r.Duration == nil {
		return time.Time{}, false
	}
	return r.Start.Add(*r.Duration), true
}

// System is a waypoint-keyed reservation ledger.
type System struct {
	byWaypoint map[int][]Reservation
	byID       map[uuid.UUID]Reservation
}

// NewSystem builds an empty reservation ledger.
func NewSystem() *System {
	return &System{
		byWaypoint: make(map[int][]Reservation),
		byID:       make(map[uuid.UUID]Reservation),
	}
}

// Reserve implements the allocation policy: among the candidate
// waypoints, in order, it books the *last* one whose time window is
// free and reports it; if none are free, ok is false.
func (s *System) Reserve(start time.Time, waypoints []int, duration *time.Duration) (reservation Reservation, ok bool) {
	chosen := -1
	for _, waypoint := range waypoints {
		if s.isFree(waypoint, start, duration) {
			chosen = waypoint
		}
	}
	if chosen < 0 {
		return Reservation{}, false
	}

	r := Reservation{ID: uuid.NewV4(), Waypoint: chosen, Start: start, Duration: duration}
	s.byWaypoint[chosen] = append(s.byWaypoint[chosen], r)
	s.byID[r.ID] = r
	return r, true
}

// Cancel implements cancel_reservation: unknown ids report
// ErrUnknownReservation.
func (s *System) Cancel(id uuid.UUID) error {
	r, ok := s.byID[id]
	if !ok {
		return errors.WithStack(ErrUnknownReservation)
	}

	delete(s.byID, id)
	list := s.byWaypoint[r.Waypoint]
	for i, existing := range list {
		if existing.ID == id {
			s.byWaypoint[r.Waypoint] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}

func (s *System) isFree(waypoint int, start time.Time, duration *time.Duration) bool {
	for _, existing := range s.byWaypoint[waypoint] {
		if conflicts(existing, start, duration) {
			return false
		}
	}
	return true
}

// conflicts implements the overlap rule: two simultaneous finite
// reservations on the same waypoint must not overlap in time; an
// infinite reservation precludes any later reservation on the same
// waypoint and any overlapping earlier reservation.
func conflicts(existing Reservation, start time.Time, duration *time.Duration) bool {
	if existing.Duration == nil {
		if !start.Before(existing.Start) {
			return true
		}
		if duration == nil {
			return true
		}
		return start.Add(*duration).After(existing.Start)
	}

	existingFinish := existing.Start.Add(*existing.Duration)
	if duration == nil {
		return existingFinish.After(start)
	}

	candidateFinish := start.Add(*duration)
	return start.Before(existingFinish) && existing.Start.Before(candidateFinish)
}
