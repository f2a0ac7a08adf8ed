package main

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/dotjump/components"
	"github.com/automoto/dotjump/systems"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi/ecs"
)

// SimLoop steps a world from a script at a fixed delta, without a window.
type SimLoop struct {
	ecs      *ecs.ECS
	script   *Script
	input    components.InputData
	tickRate int
	ticks    int
	realtime bool
	stopChan chan struct{}

	tick     int
	lastDesc string
}

// maxTickRate keeps the ticker period at one nanosecond or more.
const maxTickRate = int(time.Second)

// checkTickRate rejects rates the loop cannot pace.
func checkTickRate(rate int) error {
	if rate <= 0 || rate > maxTickRate {
		return fmt.Errorf("tick rate %d out of range 1..%d", rate, maxTickRate)
	}
	return nil
}

func NewSimLoop(e *ecs.ECS, script *Script, tickRate, ticks int, realtime bool) *SimLoop {
	return &SimLoop{
		ecs:      e,
		script:   script,
		tickRate: tickRate,
		ticks:    ticks,
		realtime: realtime,
		stopChan: make(chan struct{}),
	}
}

// Run steps until the tick budget is spent or Stop is called. In realtime
// mode ticks are paced by a ticker at the tick rate.
func (g *SimLoop) Run() {
	log.Printf("Simulation started: %d ticks at %d ticks/second", g.ticks, g.tickRate)

	if !g.realtime {
		for g.tick < g.ticks {
			select {
			case <-g.stopChan:
				log.Println("Simulation stopped")
				return
			default:
			}
			g.step()
		}
		g.report()
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for g.tick < g.ticks {
		select {
		case <-g.stopChan:
			log.Println("Simulation stopped")
			return
		case <-ticker.C:
			g.step()
		}
	}
	g.report()
}

func (g *SimLoop) Stop() {
	close(g.stopChan)
}

func (g *SimLoop) step() {
	g.script.Advance(&g.input, g.tick)
	systems.Step(g.ecs, systems.Tick{
		Intent: g.input.Intent(),
		Delta:  1 / float64(g.tickRate),
	})
	g.tick++

	if desc := describeDot(g.ecs); desc != g.lastDesc {
		log.Printf("tick %4d: %s at %s", g.tick, desc, dotPosition(g.ecs))
		g.lastDesc = desc
	}
}

func (g *SimLoop) report() {
	dotEntry, ok := tags.Dot.First(g.ecs.World)
	if !ok {
		log.Printf("Simulation finished after %d ticks: the dot fell", g.tick)
		return
	}
	pos := components.Position.Get(dotEntry)
	log.Printf("Simulation finished after %d ticks: dot at (%.2f, %.2f)", g.tick, pos.X, pos.Y)
}

// describeDot summarises the discrete state of the dot. It changes only on
// state transitions, which keeps the log short.
func describeDot(e *ecs.ECS) string {
	dotEntry, ok := tags.Dot.First(e.World)
	if !ok {
		return "no dot"
	}
	state := components.State.Get(dotEntry)
	phys := components.Physics.Get(dotEntry)
	return fmt.Sprintf("%s/%s resting=%t", state.Vertical, state.Jump, phys.Resting)
}

func dotPosition(e *ecs.ECS) string {
	dotEntry, ok := tags.Dot.First(e.World)
	if !ok {
		return "-"
	}
	pos := components.Position.Get(dotEntry)
	return fmt.Sprintf("(%.2f, %.2f)", pos.X, pos.Y)
}
