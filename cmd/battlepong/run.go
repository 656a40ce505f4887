package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/K4zuy4/BattlePong-7/audio"
	"github.com/K4zuy4/BattlePong-7/constants"
	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/logging"
	"github.com/K4zuy4/BattlePong-7/render"
	"github.com/K4zuy4/BattlePong-7/scene"
	"github.com/K4zuy4/BattlePong-7/settings"
	"github.com/K4zuy4/BattlePong-7/systems"
	"github.com/K4zuy4/BattlePong-7/terminal"
)

func run(cmd *cobra.Command) error {
	var logWriter io.Writer
	if logFile != "" {
		f, err := logging.Open(logFile)
		if err != nil {
			return oops.Code("LOG_OPEN_FAILED").With("path", logFile).Wrap(err)
		}
		defer f.Close()
		logWriter = f
	}
	logger := logging.Setup("battlepong", cmd.Root().Version,
		logging.ParseLevel(logLevel), logWriter)
	slog.SetDefault(logger)

	reporter := events.LogReporter{Logger: logger}
	bus := events.NewBus(reporter)

	var store *settings.Store
	var err error
	if configFile != "" {
		store, err = settings.NewFromFile(configFile, bus, reporter)
		if err != nil {
			return err
		}
	} else {
		store = settings.New(bus, reporter)
	}

	ctx := engine.NewContext(bus, store, reporter)
	if randSeed != 0 {
		ctx.Seed(randSeed)
	}

	game := engine.NewGame(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		return oops.Code("SCREEN_INIT_FAILED").Wrap(err)
	}
	if err := screen.Init(); err != nil {
		return oops.Code("SCREEN_INIT_FAILED").Wrap(err)
	}
	// Reset the terminal before the panic report, or the stack trace
	// is unreadable
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	var player systems.SoundPlayer
	if !muted {
		p := audio.NewPlayer()
		if err := p.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			player = p
			defer p.Cleanup()
		}
	}

	skins := systems.NewSkinSystem(ctx)
	powerups := systems.NewPowerupManager(ctx,
		game.Paddle(events.SideLeft), game.Paddle(events.SideRight))
	game.AddSystem(systems.NewChaosSystem(ctx))
	game.AddSystem(powerups)
	game.AddSystem(systems.NewAudioSystem(ctx, player))

	renderer := render.New(screen, skins, bus)

	manager := scene.NewManager()
	manager.Register(scene.SceneTitle, scene.NewTitleScene(manager, screen, ctx))
	manager.Register(scene.ScenePlay, scene.NewPlayScene(manager, ctx, game, powerups, renderer))
	manager.SetScene(scene.SceneTitle)

	logger.Info("game started",
		"config", configFile,
		"display", store.Display(),
	)
	loop(ctx, screen, manager)
	logger.Info("game stopped", "score", game.Score())
	return nil
}

// loop multiplexes terminal events and the frame ticker until a scene
// requests shutdown
func loop(ctx *engine.Context, screen tcell.Screen, manager *scene.Manager) {
	eventCh := make(chan tcell.Event, 100)
	terminal.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	last := ctx.Now()
	for !manager.Quitting() {
		select {
		case ev := <-eventCh:
			if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
				manager.RequestQuit()
				continue
			}
			manager.HandleEvent(ev)

		case <-ticker.C:
			now := ctx.Now()
			dt := now.Sub(last)
			last = now
			manager.Update(dt)
			manager.Draw()
		}
	}
}
