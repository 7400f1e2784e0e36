package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neon-dungeon/config"
	"neon-dungeon/generation"
	"neon-dungeon/random"
	"neon-dungeon/telemetry"
)

func main() {
	// Command-line flags
	dump := flag.Bool("dump", false, "Print one dungeon as ASCII and exit")
	seedFlag := flag.Int64("seed", 0, "Dungeon seed (overrides VIEWER_SEED, 0 picks one)")
	flag.Parse()

	if err := run(*dump, *seedFlag); err != nil {
		log.Fatal(err)
	}
}

func run(dump bool, seedFlag int64) error {
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, "neon-dungeon")
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	dungeonCfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	viewerCfg, err := config.ViewerFromEnv()
	if err != nil {
		return err
	}
	if seedFlag != 0 {
		viewerCfg.Seed = seedFlag
	}

	seed, err := resolveSeed(viewerCfg.Seed)
	if err != nil {
		return err
	}

	if dump {
		dungeon, err := generation.Generate(ctx, dungeonCfg, random.NewSeeded(seed))
		if err != nil {
			return err
		}
		log.Printf("generated dungeon: %d rooms, seed %d", len(dungeon.Rooms()), seed)
		fmt.Print(dungeon.Grid())
		return nil
	}

	game, err := NewGame(ctx, dungeonCfg, viewerCfg, seed)
	if err != nil {
		return err
	}

	// Get window size from config
	windowWidth, windowHeight := viewerCfg.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(viewerCfg.Fullscreen)
	ebiten.SetWindowTitle("Neon Dungeon")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// resolveSeed returns seed, or a fresh random seed when it is zero.
func resolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return random.NewSeed()
}
