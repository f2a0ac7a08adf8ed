package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dotjump/assets"
	"github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/fonts"
	"github.com/automoto/dotjump/scenes"
	"github.com/automoto/dotjump/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelArg := flag.String("level", "", "level file (.txt or .tmx); embedded levels are looked up by name")
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	debug := flag.Bool("debug", false, "show collision proxies and the motion state readout")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.ShowOverlay = true
	}
	if *levelArg == "" {
		*levelArg = config.Level.DefaultLevel
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	level, err := assets.LoadLevelArg(*levelArg)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Settings persistence is optional; without it toggles last one session.
	var saver systems.SettingsSaver
	if store, err := systems.OpenSettingsStore("dotjump"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		saver = store
		if saved, ok, err := store.Load(); err != nil {
			log.Printf("Warning: Could not load settings: %v", err)
		} else if ok {
			systems.ApplySavedSettings(saved)
		}
	}

	if err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(level, saver))); err != nil {
		log.Fatal(err)
	}
}
