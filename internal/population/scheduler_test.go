package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avens/star-society/internal/geo"
)

func TestSeedQueueCoversEveryPlanet(t *testing.T) {
	g := geo.NewGalaxy([]*geo.System{
		{
			ID: "a", Name: "A", EconomicLevel: 5,
			Planets: []*geo.Planet{
				{ID: "a1", Name: "A1", PopulationTarget: 500, DevelopmentLevel: 8},
				{ID: "a2", Name: "A2", PopulationTarget: 40, DevelopmentLevel: 2},
			},
		},
	})
	gen := NewGenerator(g, 1, nil)

	assert.Equal(t, 2, gen.QueueLen())

	// Highest priority first: a1 (5+8) before a2 (5+2).
	req, ok := gen.popMax()
	require.True(t, ok)
	assert.Equal(t, "a1", req.LocationID)
	assert.Equal(t, 50, req.Count, "seed batch is 10% of the planet target")
	assert.Equal(t, 13, req.Priority)
}

func TestDrainOnceRequeuesRemainder(t *testing.T) {
	gen := NewGenerator(testGalaxy(), 1, nil)

	// Replace the seeded queue with one oversized batch.
	gen.mu.Lock()
	gen.queue = []BatchRequest{{LocationID: "earth", Count: 120, Priority: 9}}
	gen.mu.Unlock()

	sched := NewScheduler(gen)
	sched.DrainOnce()

	assert.Len(t, gen.GetAll(), 50, "one tick generates at most 50")
	require.Equal(t, 1, gen.QueueLen())

	req, ok := gen.popMax()
	require.True(t, ok)
	assert.Equal(t, 70, req.Count)
	assert.Equal(t, 9, req.Priority, "remainder keeps its priority")
}

func TestDrainOnceBadLocationDoesNotPanic(t *testing.T) {
	gen := NewGenerator(testGalaxy(), 1, nil)
	gen.mu.Lock()
	gen.queue = []BatchRequest{{LocationID: "nowhere", Count: 10, Priority: 1}}
	gen.mu.Unlock()

	sched := NewScheduler(gen)
	sched.DrainOnce() // logs, never propagates

	assert.Empty(t, gen.GetAll())
	assert.Zero(t, gen.QueueLen(), "bad entry is dropped, not requeued")
}

func TestDrainOnceEmptyQueue(t *testing.T) {
	gen := NewGenerator(geo.NewGalaxy([]*geo.System{{ID: "x", Name: "X"}}), 1, nil)
	sched := NewScheduler(gen)
	sched.DrainOnce()
	assert.Empty(t, gen.GetAll())
}
