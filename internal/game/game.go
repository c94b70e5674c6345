package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/arcaneadventures/internal/combat"
	"github.com/samdwyer/arcaneadventures/internal/console"
	"github.com/samdwyer/arcaneadventures/internal/entity"
	"github.com/samdwyer/arcaneadventures/internal/gamedata"
	"github.com/samdwyer/arcaneadventures/internal/telemetry"
)

// Main menu keys.
const (
	choiceFight   = "1"
	choiceUpgrade = "0"
	choiceExit    = "9"
)

// Game holds the entire session state.
type Game struct {
	config    Config
	console   console.Console
	rng       combat.RNG
	items     *gamedata.EquipmentRegistry
	enemies   *entity.EnemyPool
	player    *entity.Character
	state     State
	sessionID string
	tracer    trace.Tracer
}

// New creates a new game instance talking to the given console.
func New(cfg Config, con console.Console) (*Game, error) {
	items, err := gamedata.LoadEquipmentRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading enemies: %w", err)
	}

	return &Game{
		config:    cfg,
		console:   con,
		rng:       cfg.NewRand(),
		items:     items,
		enemies:   entity.NewEnemyPool(enemies, cfg.FreshEnemies),
		state:     StateSetup,
		sessionID: uuid.NewString(),
		tracer:    telemetry.Tracer("game"),
	}, nil
}

// SessionID returns the unique identifier attached to this session's spans.
func (g *Game) SessionID() string { return g.sessionID }

// Player returns the player character, or nil before setup has finished.
func (g *Game) Player() *entity.Character { return g.player }

// State returns the current session state.
func (g *Game) State() State { return g.state }

// Run executes setup and then the main menu loop until the player exits.
// Running out of input or interrupting the console ends the session normally.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "session",
		trace.WithAttributes(attribute.String("session.id", g.sessionID)))
	defer span.End()

	err := g.run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, console.ErrInterrupted) {
		g.console.Announce("Exiting game...")
		g.state = StateExited
		return nil
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (g *Game) run(ctx context.Context) error {
	if err := g.setup(ctx); err != nil {
		return err
	}

	resolver := combat.NewResolver(g.console, g.rng, g.enemies, func(c *entity.Character) error {
		return g.onLevelUp(ctx, c)
	})

	g.state = StateMenu
	for g.state != StateExited {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.console.Announce("")
		g.console.Announce(g.player.Summary())
		g.console.Announce("[1] Fight an enemy")
		g.console.Announce("[0] Upgrade stats")
		g.console.Announce("[9] Exit game")
		choice, err := g.console.Prompt("Your choice: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case choiceExit:
			g.console.Announce("Exiting game...")
			g.state = StateExited

		case choiceUpgrade:
			if err := g.upgradeStats(ctx); err != nil {
				return err
			}

		case choiceFight:
			g.state = StateFighting
			if _, err := resolver.Fight(ctx, g.player); err != nil {
				return fmt.Errorf("fight: %w", err)
			}
			g.state = StateMenu

		default:
			g.console.Announce("❌ Invalid choice!")
		}
	}
	return nil
}
