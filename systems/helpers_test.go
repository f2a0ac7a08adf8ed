package systems

import (
	"testing"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/automoto/dotjump/systems/factory"
	"github.com/automoto/dotjump/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDelta = 1.0 / 60

func platformAt(x, y float64) leveldata.Point {
	return leveldata.Point{X: x, Y: y, Z: cfg.Level.PlatformZ}
}

// newTestWorld builds a world with the given platforms and the dot at (x, y).
func newTestWorld(t *testing.T, x, y float64, platforms ...leveldata.Point) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	level := &leveldata.Level{Name: t.Name(), Platforms: platforms}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, level)
	factory.CreateRound(e)
	factory.CreateSpace(e, level)
	factory.CreateCamera(e, 0, 0)
	for _, p := range platforms {
		factory.CreatePlatform(e, p)
	}
	dot := factory.CreateDot(e, x, y)
	require.True(t, dot.Valid())
	return e, dot
}

func step(e *ecs.ECS, intent components.Intent) {
	Step(e, Tick{Intent: intent, Delta: testDelta})
}

func stepN(e *ecs.ECS, n int, intent components.Intent) {
	for i := 0; i < n; i++ {
		step(e, intent)
	}
}

func dotCount(e *ecs.ECS) int {
	n := 0
	tags.Dot.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func platformCount(e *ecs.ECS) int {
	n := 0
	tags.Platform.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func getSpace(t *testing.T, e *ecs.ECS) *components.SpaceData {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	require.True(t, ok, "world has no collision space")
	return components.Space.Get(entry)
}
