package scenes

import (
	"sync"

	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/automoto/dotjump/systems"
	"github.com/automoto/dotjump/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs      *ecs.ECS
	level    *leveldata.Level
	settings systems.SettingsSaver
	once     sync.Once
}

// NewPlatformerScene creates the scene for an already parsed level. The
// world is built on the first Update. settings may be nil.
func NewPlatformerScene(level *leveldata.Level, settings systems.SettingsSaver) *PlatformerScene {
	return &PlatformerScene{level: level, settings: settings}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.NewUpdateSettings(ps.settings))

	// The simulation and camera freeze while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdateRound)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDot)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	factory.CreateWorld(ps.ecs, ps.level)
}
