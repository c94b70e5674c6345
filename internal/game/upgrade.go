package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcaneadventures/internal/entity"
)

const choiceStopUpgrading = "0"

// onLevelUp reports a new level and lets the player spend the points.
func (g *Game) onLevelUp(ctx context.Context, c *entity.Character) error {
	ctx, span := g.tracer.Start(ctx, "character.level_up")
	defer span.End()
	span.SetAttributes(
		attribute.Int("level", c.Level),
		attribute.Int("upgrade_points", c.UpgradePoints),
		attribute.Int("experience_cap", c.ExperienceCap),
	)

	g.console.Announce("")
	g.console.Announce(fmt.Sprintf("🎉 Level Up! You are now Level %d!", c.Level))
	g.console.Announce(fmt.Sprintf("You have %d upgrade points to spend!", c.UpgradePoints))
	return g.upgradeStats(ctx)
}

// upgradeStats spends upgrade points one choice at a time until the player
// stops or none are left. With no points it returns without prompting.
// Invalid input is reported and does not cost a point.
func (g *Game) upgradeStats(ctx context.Context) error {
	_, span := g.tracer.Start(ctx, "session.upgrade")
	defer span.End()

	prev := g.state
	g.state = StateUpgrading
	defer func() { g.state = prev }()

	spent := 0
	defer func() { span.SetAttributes(attribute.Int("points_spent", spent)) }()

	for g.player.UpgradePoints > 0 {
		g.console.Announce("")
		g.console.Announce("Choose a stat to upgrade:")
		for _, opt := range entity.UpgradeOptions {
			g.console.Announce(fmt.Sprintf("[%d] %s", int(opt), opt))
		}
		g.console.Announce(fmt.Sprintf("[0] Exit (Remaining Points: %d)", g.player.UpgradePoints))

		input, err := g.console.Prompt("Your choice: ")
		if err != nil {
			return err
		}
		choice := strings.TrimSpace(input)
		if choice == choiceStopUpgrading {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			g.console.Announce("❌ Invalid choice!")
			continue
		}
		opt := entity.UpgradeOption(n)
		if err := g.player.ApplyUpgrade(opt); err != nil {
			g.console.Announce("❌ Invalid choice!")
			continue
		}
		spent++
		g.console.Announce(opt.Confirmation())
	}
	return nil
}
