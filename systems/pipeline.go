package systems

import (
	"github.com/automoto/dotjump/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Stage is one step of the per-tick simulation. Stages run in declaration
// order; each one reads what the previous stage wrote in the same tick.
type Stage int

const (
	StageControl   Stage = iota // intent -> jump and horizontal speed
	StageGravity                // vertical speed and motion state while airborne
	StageCollision              // resting flag, landing snap
	StageMove                   // position from speed
	StageBoundary               // destroy the level when the dot falls out
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageControl:
		return "control"
	case StageGravity:
		return "gravity"
	case StageCollision:
		return "collision"
	case StageMove:
		return "move"
	case StageBoundary:
		return "boundary"
	}
	return "unknown"
}

// Tick is the input of one simulation step.
type Tick struct {
	Intent components.Intent
	Delta  float64 // seconds
}

type stageFunc func(ecs *ecs.ECS, tick Tick)

var pipeline = [stageCount]stageFunc{
	StageControl:   UpdateControl,
	StageGravity:   UpdateGravity,
	StageCollision: UpdateCollision,
	StageMove:      UpdateMovement,
	StageBoundary:  UpdateBoundary,
}

// Step advances the simulation by one tick.
func Step(ecs *ecs.ECS, tick Tick) {
	for _, run := range pipeline {
		run(ecs, tick)
	}

	if round := getRound(ecs); round != nil {
		round.Tick++
	}
}

// UpdateSimulation is the ebiten-driven system: it snapshots the polled input
// and steps the pipeline once. Must run AFTER UpdateInput.
func UpdateSimulation(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	Step(ecs, Tick{
		Intent: input.Intent(),
		Delta:  FrameDelta(),
	})
}

// FrameDelta is the duration of one ebiten tick in seconds.
func FrameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}
