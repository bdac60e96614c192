package geofence

import (
	"sync"
	"time"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrInvalidRadius is returned when a geofence has a non-positive radius.
var ErrInvalidRadius = errors.New("geofence radius must be positive")

// Fence is one outlet's circular geofence.
type Fence struct {
	OutletID     uuid.UUID
	OutletName   string
	Center       orb.Point
	RadiusMeters float64
}

// EventType distinguishes entry and exit transitions.
type EventType int

const (
	// Entered is emitted when membership flips from outside to inside.
	Entered EventType = iota
	// Exited is emitted when membership flips from inside to outside.
	Exited
)

// Event is a single membership transition for one outlet.
type Event struct {
	Type       EventType
	OutletID   uuid.UUID
	OutletName string
	Sample     entity.Coordinate
	At         time.Time
}

// Monitor tracks inside/outside membership for one user session against a
// set of outlet geofences. Membership is held in an explicit map owned by
// the instance, so concurrent sessions never interfere. Cold start assumes
// the user is outside every fence.
//
// Fences are evaluated independently per sample: a user can be inside
// several overlapping outlet zones at once.
type Monitor struct {
	mu     sync.Mutex
	fences []Fence
	inside map[uuid.UUID]bool
}

// NewMonitor creates a monitor for the given fence set.
// Returns ErrInvalidRadius if any fence has a non-positive radius.
func NewMonitor(fences []Fence) (*Monitor, error) {
	m := &Monitor{inside: make(map[uuid.UUID]bool)}
	if err := m.SetFences(fences); err != nil {
		return nil, err
	}

	return m, nil
}

// SetFences replaces the fence set, e.g. after a periodic outlet refresh or
// an outlet address change. Membership for outlets no longer present is
// dropped without emitting Exited; surviving memberships are preserved.
func (m *Monitor) SetFences(fences []Fence) error {
	for _, fence := range fences {
		if fence.RadiusMeters <= 0 {
			return errors.Wrapf(ErrInvalidRadius, "outlet %s", fence.OutletID)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.fences = make([]Fence, len(fences))
	copy(m.fences, fences)

	known := make(map[uuid.UUID]struct{}, len(fences))
	for _, fence := range fences {
		known[fence.OutletID] = struct{}{}
	}
	for outletID := range m.inside {
		if _, ok := known[outletID]; !ok {
			delete(m.inside, outletID)
		}
	}

	return nil
}

// Observe evaluates one location sample against every fence and returns the
// membership transitions it caused, in fence order. A sample exactly at the
// radius counts as inside (boundary inclusive). Re-observing an unchanged
// position produces no events.
func (m *Monitor) Observe(sample entity.Coordinate, at time.Time) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []Event
	point := sample.Point()

	for _, fence := range m.fences {
		insideNow := Distance(point, fence.Center) <= fence.RadiusMeters
		wasInside := m.inside[fence.OutletID]

		switch {
		case insideNow && !wasInside:
			m.inside[fence.OutletID] = true
			events = append(events, Event{
				Type:       Entered,
				OutletID:   fence.OutletID,
				OutletName: fence.OutletName,
				Sample:     sample,
				At:         at,
			})
		case !insideNow && wasInside:
			m.inside[fence.OutletID] = false
			events = append(events, Event{
				Type:       Exited,
				OutletID:   fence.OutletID,
				OutletName: fence.OutletName,
				Sample:     sample,
				At:         at,
			})
		}
	}

	return events
}

// ActiveOutlets returns the outlets the user is currently inside. This is
// the live, in-memory membership truth used to gate order creation; it does
// not depend on whether visit writes succeeded.
func (m *Monitor) ActiveOutlets() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := make([]uuid.UUID, 0, len(m.inside))
	for outletID, inside := range m.inside {
		if inside {
			active = append(active, outletID)
		}
	}

	return active
}

// IsInside reports the current membership for one outlet.
func (m *Monitor) IsInside(outletID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.inside[outletID]
}
