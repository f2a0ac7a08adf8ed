package systems

import (
	"testing"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/automoto/dotjump/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLandingFromAbove(t *testing.T) {
	e, dot := newTestWorld(t, 0, 12, platformAt(0, 0))
	physics := components.Physics.Get(dot)
	physics.SpeedY = -3
	pos := components.Position.Get(dot)
	state := components.State.Get(dot)

	step(e, components.Intent{})
	assert.InDelta(t, -3.0, pos.Y, 1e-9, "no contact yet at y=12")
	assert.False(t, physics.Resting)

	step(e, components.Intent{})
	assert.True(t, physics.Resting)
	assert.Equal(t, 10.0, pos.Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.Equal(t, components.Standing, state.Vertical)
	assert.Equal(t, components.NoJump, state.Jump)
}

func TestLandingIsEdgeTriggered(t *testing.T) {
	e, dot := newTestWorld(t, 0, 5, platformAt(0, 0))
	physics := components.Physics.Get(dot)
	pos := components.Position.Get(dot)
	state := components.State.Get(dot)

	physics.SpeedY = -1
	UpdateCollision(e, Tick{Delta: testDelta})
	require.True(t, physics.Resting)
	assert.Equal(t, 10.0, pos.Y)

	// Still in contact: no second snap.
	physics.SpeedY = -1
	pos.Y = 5
	state.Jump = components.SingleJump
	UpdateCollision(e, Tick{Delta: testDelta})
	assert.True(t, physics.Resting)
	assert.Equal(t, 5.0, pos.Y)
	assert.Equal(t, -1.0, physics.SpeedY)
	assert.Equal(t, components.SingleJump, state.Jump)
}

func TestNoContactWhileRising(t *testing.T) {
	e, dot := newTestWorld(t, 0, 5, platformAt(0, 0))
	physics := components.Physics.Get(dot)
	physics.SpeedY = 0
	physics.Resting = true

	UpdateCollision(e, Tick{Delta: testDelta})
	assert.False(t, physics.Resting, "the flag drops as soon as the dot stops moving down")

	physics.SpeedY = 1
	UpdateCollision(e, Tick{Delta: testDelta})
	assert.False(t, physics.Resting)
	assert.Equal(t, 5.0, components.Position.Get(dot).Y)
}

func TestContactFromTheSide(t *testing.T) {
	// The tolerance box is symmetric, so a dot beside the platform still lands.
	e, dot := newTestWorld(t, 9, -3, platformAt(0, 0))
	components.Physics.Get(dot).SpeedY = -1

	UpdateCollision(e, Tick{Delta: testDelta})
	assert.True(t, components.Physics.Get(dot).Resting)
	assert.Equal(t, 10.0, components.Position.Get(dot).Y)
}

func TestContactBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		platform leveldata.Point
		want     bool
	}{
		{"edge of x tolerance", leveldata.Point{X: 10, Y: 0, Z: -1}, true},
		{"past x tolerance", leveldata.Point{X: 10.5, Y: 0, Z: -1}, false},
		{"past y tolerance", leveldata.Point{X: 0, Y: -10.5, Z: -1}, false},
		{"other draw layer", leveldata.Point{X: 0, Y: 0, Z: -11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, dot := newTestWorld(t, 0, 0, tt.platform)
			components.Physics.Get(dot).SpeedY = -1

			UpdateCollision(e, Tick{Delta: testDelta})
			assert.Equal(t, tt.want, components.Physics.Get(dot).Resting)
		})
	}
}

func TestFirstPlatformProvidesContactHeight(t *testing.T) {
	e, dot := newTestWorld(t, 0, 0, platformAt(0, -4), platformAt(0, 4))
	components.Physics.Get(dot).SpeedY = -1

	var firstY float64
	found := false
	tags.Platform.Each(e.World, func(p *donburi.Entry) {
		if !found {
			firstY = components.Position.Get(p).Y
			found = true
		}
	})
	require.True(t, found)

	UpdateCollision(e, Tick{Delta: testDelta})
	assert.Equal(t, firstY+cfg.Physics.LandingOffset, components.Position.Get(dot).Y)
}

func TestCollisionWithoutSpace(t *testing.T) {
	// No platforms means no space; the exact test still runs.
	e, dot := newTestWorld(t, 0, 3)
	components.Physics.Get(dot).SpeedY = -1

	UpdateCollision(e, Tick{Delta: testDelta})
	assert.False(t, components.Physics.Get(dot).Resting)
}
