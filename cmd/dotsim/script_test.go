package main

import (
	"testing"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/automoto/dotjump/systems/factory"
	"github.com/automoto/dotjump/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript("right:30, jump:1,idle:20,left+jump:2")
	require.NoError(t, err)
	assert.Equal(t, 53, script.Len())

	assert.True(t, script.Pressed(0)[cfg.ActionMoveRight])
	assert.True(t, script.Pressed(29)[cfg.ActionMoveRight])
	assert.False(t, script.Pressed(30)[cfg.ActionMoveRight])
	assert.True(t, script.Pressed(30)[cfg.ActionJump])
	assert.Equal(t, [cfg.ActionCount]bool{}, script.Pressed(31))

	both := script.Pressed(51)
	assert.True(t, both[cfg.ActionMoveLeft])
	assert.True(t, both[cfg.ActionJump])

	assert.Equal(t, [cfg.ActionCount]bool{}, script.Pressed(500), "past the end nothing is pressed")
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := ParseScript("  ")
	require.NoError(t, err)
	assert.Zero(t, script.Len())
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing frames", "right"},
		{"bad frames", "right:x"},
		{"zero frames", "right:0"},
		{"negative frames", "jump:-1"},
		{"unknown action", "dash:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(tt.script)
			assert.Error(t, err)
		})
	}
}

func TestScriptAdvanceEdges(t *testing.T) {
	script, err := ParseScript("jump:2,idle:1")
	require.NoError(t, err)

	var input components.InputData

	script.Advance(&input, 0)
	assert.True(t, input.Intent().Jump, "first tick is a rising edge")

	script.Advance(&input, 1)
	assert.False(t, input.Intent().Jump, "held jump does not repeat")

	script.Advance(&input, 2)
	assert.False(t, input.Intent().Jump)
}

func TestSimLoopRunsScript(t *testing.T) {
	// One platform right under the spawn point
	level := &leveldata.Level{
		Name:      "test",
		Platforms: []leveldata.Point{{X: 0, Y: -5, Z: cfg.Level.PlatformZ}},
	}

	world := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorld(world, level)

	script, err := ParseScript("idle:5,right:10")
	require.NoError(t, err)

	loop := NewSimLoop(world, script, 60, script.Len(), false)
	loop.Run()

	assert.Equal(t, 15, loop.tick)
	dot, ok := tags.Dot.First(world.World)
	require.True(t, ok)
	pos := components.Position.Get(dot)
	assert.Greater(t, pos.X, 0.0)
	assert.Equal(t, "no dot", describeDot(ecs.NewECS(donburi.NewWorld())))
}

func TestCheckTickRate(t *testing.T) {
	assert.NoError(t, checkTickRate(1))
	assert.NoError(t, checkTickRate(60))
	assert.NoError(t, checkTickRate(1_000_000_000))

	assert.Error(t, checkTickRate(-5))
	assert.Error(t, checkTickRate(0))
	assert.Error(t, checkTickRate(1_000_000_001))
}
