package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/monodice/app"
	"github.com/lixenwraith/monodice/audio"
	"github.com/lixenwraith/monodice/config"
	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
	"github.com/lixenwraith/monodice/engine"
	"github.com/lixenwraith/monodice/service"
	"github.com/lixenwraith/monodice/status"
	"github.com/lixenwraith/monodice/terminal"
)

var (
	variantFlag = flag.String("variant", "spin", "Animation variant: spin, shake")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	debugFlag   = flag.Bool("debug", false, "Write logs/monodice.log and show the status line")
	volumeFlag  = flag.Float64("volume", 1.0, "Master volume 0.0-1.0")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, envErr := config.Load()
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		log.Printf("config: %v, using defaults", envErr)
	}
	log.Printf("config: variant=%s audio=%t volume=%.2f seed=%d", cfg.Variant, cfg.AudioEnabled, cfg.MasterVolume, cfg.Seed)

	src := dice.NewSource(cfg.Seed)
	stats := status.NewRegistry()

	hub := service.NewHub()
	termSvc := terminal.NewService()
	audioSvc := audio.NewService(src, stats)
	for _, svc := range []service.Service{termSvc, audioSvc} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register %s: %v\n", svc.Name(), err)
			os.Exit(1)
		}
	}

	if err := hub.InitAll(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer hub.StopAll()

	loop := engine.NewLoop(engine.NewMonotonicTimeProvider(), constant.EventQueueSize)
	a := app.New(app.Options{
		Screen:    termSvc.Screen(),
		Scheduler: loop,
		Clock:     loop,
		Source:    src,
		Sound:     app.EngineSound(audioSvc.Engine()),
		Variant:   cfg.AnimationVariant(),
		Stats:     stats,
		Debug:     cfg.Debug,
	})

	app.Run(a, loop, termSvc.Events())
	log.Printf("exit: %s", stats.Summary())
}

// applyFlags overrides config with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variantFlag
		case "mute":
			cfg.AudioEnabled = !*muteFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "volume":
			cfg.MasterVolume = *volumeFlag
		}
	})
}
