package systems

import (
	"image/color"

	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the overlay shown once the dot has fallen. It fades
// in with the round's tween; there is no retry.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	round := getRound(e)
	if round == nil || !round.Over {
		return
	}
	alpha := round.FadeOpacity

	width := float64(screen.Bounds().Dx())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		fade(cfg.GameOver.OverlayColor, alpha),
		false,
	)

	drawCentered(screen, fonts.Title.Get(), cfg.GameOver.Title, int(cfg.GameOver.TitleY), fade(cfg.GameOver.TitleColor, alpha))
	drawCentered(screen, fonts.Regular.Get(), cfg.GameOver.Hint, int(cfg.GameOver.HintY), fade(cfg.GameOver.HintColor, alpha))
}

// fade scales a premultiplied color by alpha in [0, 1].
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
