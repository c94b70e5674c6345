// Package main is the entry point for Arcane Adventures.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/arcaneadventures/internal/console"
	"github.com/samdwyer/arcaneadventures/internal/game"
	"github.com/samdwyer/arcaneadventures/internal/telemetry"
	"github.com/samdwyer/arcaneadventures/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	flag.BoolVar(&cfg.FreshEnemies, "fresh-enemies", cfg.FreshEnemies, "fight a fresh enemy every encounter")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "use plain line input/output instead of the full screen UI")
	flag.Parse()

	con, closeConsole, err := openConsole(cfg.Plain)
	if err != nil {
		log.Fatalf("Failed to open console: %v", err)
	}
	defer closeConsole()

	g, err := game.New(cfg, con)
	if err != nil {
		closeConsole()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		telemetry.ConfigureEnv()
		shutdown, err := telemetry.Setup(ctx, g.SessionID())
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := g.Run(ctx); err != nil {
		closeConsole()
		log.Fatalf("Game error: %v", err)
	}
}

// openConsole returns the terminal UI console, or a line console on stdin and
// stdout when plain is set.
func openConsole(plain bool) (console.Console, func(), error) {
	if plain {
		return console.NewLine(os.Stdin, os.Stdout), func() {}, nil
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	c := ui.NewConsole(screen)
	return c, c.Close, nil
}
