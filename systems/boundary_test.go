package systems

import (
	"testing"

	"github.com/automoto/dotjump/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeathClearsTheWorld(t *testing.T) {
	e, dot := newTestWorld(t, 0, 0, platformAt(0, 0), platformAt(10, 0), platformAt(20, -25))
	require.Equal(t, 3, platformCount(e))
	require.Len(t, getSpace(t, e).Objects(), 4)

	// Teleport just above the floor; the proxy follows on the next move.
	components.Position.Get(dot).Y = -999
	components.Physics.Get(dot).SpeedY = -3

	step(e, components.Intent{})

	assert.Zero(t, dotCount(e))
	assert.Zero(t, platformCount(e))
	assert.Empty(t, getSpace(t, e).Objects())
	assert.True(t, IsRoundOver(e))

	round := getRound(e)
	assert.Equal(t, uint64(0), round.OverAtTick)
	assert.NotNil(t, round.Fade)

	// Nothing left to simulate; further ticks are no-ops.
	step(e, components.Intent{MoveRight: true, Jump: true})
	stepN(e, 5, components.Intent{})
	assert.Zero(t, dotCount(e))
	assert.Zero(t, platformCount(e))
	assert.Equal(t, uint64(7), round.Tick)
}

func TestWorldFloorIsExclusive(t *testing.T) {
	e, _ := newTestWorld(t, 0, -1000, platformAt(0, 0))

	UpdateBoundary(e, Tick{Delta: testDelta})
	assert.Equal(t, 1, dotCount(e))
	assert.Equal(t, 1, platformCount(e))
	assert.False(t, IsRoundOver(e))
}

func TestFallingOffTheLevel(t *testing.T) {
	e, _ := newTestWorld(t, 0, 0, platformAt(300, 0))

	// Falling at most 15 units per tick, the floor is reached well within 100 ticks.
	for i := 0; i < 100 && dotCount(e) > 0; i++ {
		step(e, components.Intent{})
	}
	assert.Zero(t, dotCount(e))
	assert.Zero(t, platformCount(e))
	assert.True(t, IsRoundOver(e))
}
