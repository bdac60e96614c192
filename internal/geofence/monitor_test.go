package geofence

import (
	"testing"
	"time"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metersPerLatDegree converts a latitude offset to an approximate ground
// distance for test fixtures.
const metersPerLatDegree = 111194.9

func coordAt(lat, lng float64) entity.Coordinate {
	return entity.Coordinate{Latitude: lat, Longitude: lng, ObservedAt: time.Now()}
}

func singleFence(outletID uuid.UUID, radius float64) []Fence {
	return []Fence{{
		OutletID:     outletID,
		OutletName:   "Sharma General Store",
		Center:       orb.Point{77.5946, 12.9716},
		RadiusMeters: radius,
	}}
}

func TestMonitor_EntryAndExit(t *testing.T) {
	outletID := uuid.New()
	monitor, err := NewMonitor(singleFence(outletID, 150))
	require.NoError(t, err)

	entryAt := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	exitAt := entryAt.Add(45 * time.Minute)

	// ~100m north of the center: inside the 150m fence.
	inside := coordAt(12.9716+100/metersPerLatDegree, 77.5946)
	events := monitor.Observe(inside, entryAt)
	require.Len(t, events, 1)
	assert.Equal(t, Entered, events[0].Type)
	assert.Equal(t, outletID, events[0].OutletID)
	assert.Equal(t, entryAt, events[0].At)

	// ~200m north: outside.
	outside := coordAt(12.9716+200/metersPerLatDegree, 77.5946)
	events = monitor.Observe(outside, exitAt)
	require.Len(t, events, 1)
	assert.Equal(t, Exited, events[0].Type)
	assert.Equal(t, exitAt, events[0].At)
}

func TestMonitor_UnchangedSampleEmitsNothing(t *testing.T) {
	outletID := uuid.New()
	monitor, err := NewMonitor(singleFence(outletID, 150))
	require.NoError(t, err)

	sample := coordAt(12.9716, 77.5946)
	events := monitor.Observe(sample, time.Now())
	require.Len(t, events, 1)

	// Same position again: no transition, no events.
	events = monitor.Observe(sample, time.Now())
	assert.Empty(t, events)
	assert.True(t, monitor.IsInside(outletID))
}

func TestMonitor_BoundaryIsInside(t *testing.T) {
	outletID := uuid.New()
	center := orb.Point{77.5946, 12.9716}
	sample := coordAt(12.9716+150/metersPerLatDegree, 77.5946)

	// Fence radius set to the exact sample distance: boundary is inclusive.
	exact := Distance(center, sample.Point())
	monitor, err := NewMonitor([]Fence{{
		OutletID:     outletID,
		Center:       center,
		RadiusMeters: exact,
	}})
	require.NoError(t, err)

	events := monitor.Observe(sample, time.Now())
	require.Len(t, events, 1)
	assert.Equal(t, Entered, events[0].Type)
}

func TestMonitor_ColdStartIsOutsideEverywhere(t *testing.T) {
	monitor, err := NewMonitor(singleFence(uuid.New(), 150))
	require.NoError(t, err)

	assert.Empty(t, monitor.ActiveOutlets())

	// A far-away sample starting outside emits no Exited.
	events := monitor.Observe(coordAt(13.1, 77.7), time.Now())
	assert.Empty(t, events)
}

func TestMonitor_StrictAlternationPerOutlet(t *testing.T) {
	outletID := uuid.New()
	monitor, err := NewMonitor(singleFence(outletID, 150))
	require.NoError(t, err)

	inside := coordAt(12.9716, 77.5946)
	outside := coordAt(13.1, 77.7)

	var history []EventType
	samples := []entity.Coordinate{inside, inside, outside, inside, outside, outside, inside}
	for _, sample := range samples {
		for _, event := range monitor.Observe(sample, time.Now()) {
			history = append(history, event.Type)
		}
	}

	require.Equal(t, []EventType{Entered, Exited, Entered, Exited, Entered}, history)
	for i := 1; i < len(history); i++ {
		assert.NotEqual(t, history[i-1], history[i], "events must alternate")
	}
}

func TestMonitor_OverlappingFencesAreIndependent(t *testing.T) {
	outletA := uuid.New()
	outletB := uuid.New()
	fences := []Fence{
		{OutletID: outletA, Center: orb.Point{77.5946, 12.9716}, RadiusMeters: 500},
		{OutletID: outletB, Center: orb.Point{77.5950, 12.9718}, RadiusMeters: 500},
	}
	monitor, err := NewMonitor(fences)
	require.NoError(t, err)

	events := monitor.Observe(coordAt(12.9717, 77.5948), time.Now())
	require.Len(t, events, 2)

	active := monitor.ActiveOutlets()
	assert.ElementsMatch(t, []uuid.UUID{outletA, outletB}, active)
}

func TestMonitor_SetFencesDropsRemovedMembershipSilently(t *testing.T) {
	outletID := uuid.New()
	monitor, err := NewMonitor(singleFence(outletID, 150))
	require.NoError(t, err)

	monitor.Observe(coordAt(12.9716, 77.5946), time.Now())
	require.True(t, monitor.IsInside(outletID))

	require.NoError(t, monitor.SetFences(nil))
	assert.False(t, monitor.IsInside(outletID))
	assert.Empty(t, monitor.ActiveOutlets())
}

func TestMonitor_RejectsNonPositiveRadius(t *testing.T) {
	_, err := NewMonitor(singleFence(uuid.New(), 0))
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = NewMonitor(singleFence(uuid.New(), -10))
	assert.ErrorIs(t, err, ErrInvalidRadius)
}
