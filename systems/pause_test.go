package systems

import (
	"testing"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// press simulates a single-frame key press for the next system run.
func press(e *ecs.ECS, id cfg.ActionID) {
	var held [cfg.ActionCount]bool
	held[id] = true
	getOrCreateInput(e).Advance(held)
}

func release(e *ecs.ECS) {
	getOrCreateInput(e).Advance([cfg.ActionCount]bool{})
}

func stubExit(t *testing.T) *int {
	t.Helper()
	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = defaultExit })
	return &code
}

func TestPauseToggleFreezesSimulation(t *testing.T) {
	e, dot := newTestWorld(t, 0, 0)
	ran := 0
	sim := WithPauseCheck(func(*ecs.ECS) { ran++ })

	press(e, cfg.ActionPause)
	UpdatePause(e)
	require.True(t, GetOrCreatePause(e).IsPaused)
	sim(e)
	assert.Zero(t, ran)

	release(e)
	UpdatePause(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	sim(e)
	assert.Equal(t, 1, ran)
	assert.True(t, dot.Valid())
}

func TestPauseMenu(t *testing.T) {
	e, _ := newTestWorld(t, 0, 0)
	code := stubExit(t)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	require.Equal(t, components.MenuResume, pause.SelectedOption)

	press(e, cfg.ActionMenuUp)
	UpdatePause(e)
	assert.Equal(t, components.MenuExit, pause.SelectedOption, "menu wraps around")

	press(e, cfg.ActionMenuDown)
	UpdatePause(e)
	assert.Equal(t, components.MenuResume, pause.SelectedOption)

	press(e, cfg.ActionMenuSelect)
	UpdatePause(e)
	assert.False(t, pause.IsPaused)
	assert.Equal(t, -1, *code)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	press(e, cfg.ActionMenuDown)
	UpdatePause(e)
	press(e, cfg.ActionMenuSelect)
	UpdatePause(e)
	assert.Equal(t, 0, *code)
}

func TestEscapeExitsAfterRoundOver(t *testing.T) {
	e, _ := newTestWorld(t, 0, 0)
	code := stubExit(t)
	endRound(e)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.Equal(t, 0, *code)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}
