package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getRound(ecs *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

// IsRoundOver reports whether the dot has been destroyed.
func IsRoundOver(ecs *ecs.ECS) bool {
	round := getRound(ecs)
	return round != nil && round.Over
}

func endRound(ecs *ecs.ECS) {
	round := getRound(ecs)
	if round == nil || round.Over {
		return
	}
	round.Over = true
	round.OverAtTick = round.Tick
	round.Fade = gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.OutQuad)
}

// UpdateRound advances the game over fade once the round has ended.
func UpdateRound(ecs *ecs.ECS) {
	advanceRoundFade(ecs, FrameDelta())
}

func advanceRoundFade(ecs *ecs.ECS, dt float64) {
	round := getRound(ecs)
	if round == nil || round.Fade == nil {
		return
	}
	opacity, finished := round.Fade.Update(float32(dt))
	round.FadeOpacity = opacity
	if finished {
		round.FadeOpacity = 1
		round.Fade = nil
	}
}
