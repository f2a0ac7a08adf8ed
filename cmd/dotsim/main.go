package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dotjump/assets"
	"github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	levelArg := flag.String("level", "", "level file (.txt or .tmx); embedded levels are looked up by name")
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	scriptArg := flag.String("script", "right:30,jump:1,idle:20", "input script of action:frames entries")
	ticks := flag.Int("ticks", 0, "ticks to simulate (0 = length of the script)")
	tickRate := flag.Int("tps", 0, "ticks per second, 1 to 1e9 (0 = configured TPS)")
	realtime := flag.Bool("realtime", false, "pace ticks in real time")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelArg == "" {
		*levelArg = config.Level.DefaultLevel
	}
	if *tickRate == 0 {
		*tickRate = config.C.TPS
	}
	if err := checkTickRate(*tickRate); err != nil {
		log.Fatalf("Invalid -tps: %v", err)
	}

	script, err := ParseScript(*scriptArg)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}
	if *ticks <= 0 {
		*ticks = script.Len()
	}

	level, err := assets.LoadLevelArg(*levelArg)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	world := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorld(world, level)

	loop := NewSimLoop(world, script, *tickRate, *ticks, *realtime)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	loop.Run()
}
