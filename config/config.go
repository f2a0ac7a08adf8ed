package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; every entity is created on it.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PhysicsConfig contains the constants of the dot simulation.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`          // units/s^2 subtracted from vertical speed
	MaxVerticalSpeed float64 `yaml:"maxVerticalSpeed"` // vertical speed is clamped to [-max, max]
	JumpSpeed        float64 `yaml:"jumpSpeed"`
	MoveSpeed        float64 `yaml:"moveSpeed"`

	// Position scaling: y += vy * VerticalSpeedScale * dt * VerticalDistanceScale
	VerticalSpeedScale    float64 `yaml:"verticalSpeedScale"`
	VerticalDistanceScale float64 `yaml:"verticalDistanceScale"`
	HorizontalScale       float64 `yaml:"horizontalScale"` // x += vx * dt * HorizontalScale

	// Collision
	ContactTolerance float64 `yaml:"contactTolerance"` // per-axis proximity for a platform contact
	LandingOffset    float64 `yaml:"landingOffset"`    // height above the platform after a landing snap

	WorldFloor float64 `yaml:"worldFloor"` // dot below this height is destroyed
}

// DotConfig contains spawn and presentation values for the dot
type DotConfig struct {
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

// LevelConfig describes how level cells map to world positions.
type LevelConfig struct {
	OriginX       float64 `yaml:"originX"`
	OriginY       float64 `yaml:"originY"`
	ColumnWidth   float64 `yaml:"columnWidth"`
	RowHeight     float64 `yaml:"rowHeight"`
	PlatformZ     float64 `yaml:"platformZ"`
	PlatformSize  float64 `yaml:"platformSize"`
	PlatformGlyph rune    `yaml:"-"`
	TMXLayer      string  `yaml:"tmxLayer"` // tile layer holding platforms in .tmx levels
	DefaultLevel  string  `yaml:"defaultLevel"`

	// Collision space
	SpaceCellSize int     `yaml:"spaceCellSize"`
	SpacePadding  float64 `yaml:"spacePadding"`
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	Threshold float64 `yaml:"threshold"` // per-axis distance below which the camera holds still
	Gain      float64 `yaml:"gain"`      // fraction of the distance closed per second
}

// ColorConfig contains the palette
type ColorConfig struct {
	Background color.RGBA
	Dot        color.RGBA
	Platform   color.RGBA
	Proxy      color.RGBA
	ProxyDot   color.RGBA
	HUDText    color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains the game over overlay configuration
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	HintY        float64
	Title        string
	Hint         string
	FadeSeconds  float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // Draw collision proxies and the motion state readout
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Dot DotConfig
var Level LevelConfig
var Camera CameraConfig
var Colors ColorConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Blue         = color.RGBA{R: 41, G: 76, B: 176, A: 255}
	Slate        = color.RGBA{R: 64, G: 64, B: 191, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for dot facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
	DirectionDown  = -1.0
	DirectionUp    = 1.0
)

func init() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "dotjump",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:          9.8,
		MaxVerticalSpeed: 3.0,
		JumpSpeed:        3.0,
		MoveSpeed:        2.0,

		VerticalSpeedScale:    3.0,
		VerticalDistanceScale: 100.0,
		HorizontalScale:       200.0,

		ContactTolerance: 10.0,
		LandingOffset:    10.0,

		WorldFloor: -1000.0,
	}

	Dot = DotConfig{
		SpawnX: 0,
		SpawnY: 0,
		Z:      0,
		Radius: 10,
	}

	Level = LevelConfig{
		OriginX:       -700,
		OriginY:       100,
		ColumnWidth:   10,
		RowHeight:     25,
		PlatformZ:     -1,
		PlatformSize:  10,
		PlatformGlyph: '-',
		TMXLayer:      "platforms",
		DefaultLevel:  "map.txt",

		SpaceCellSize: 16,
		SpacePadding:  64,
	}

	Camera = CameraConfig{
		Threshold: 10,
		Gain:      1,
	}

	Colors = ColorConfig{
		Background: Blue,
		Dot:        Orange,
		Platform:   Slate,
		Proxy:      Cyan,
		ProxyDot:   LightRed,
		HUDText:    White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Exit"},
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightOrange,
		HintColor:    White,
		TitleY:       300,
		HintY:        360,
		Title:        "THE DOT FELL",
		Hint:         "Esc to exit",
		FadeSeconds:  1.5,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: false,
	}
}
