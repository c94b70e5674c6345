package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcaneadventures/internal/entity"
)

// setup greets the player, creates the character and equips the chosen items.
func (g *Game) setup(ctx context.Context) error {
	_, span := g.tracer.Start(ctx, "session.init")
	defer span.End()

	g.state = StateSetup
	g.console.Announce("======================================")
	g.console.Announce("       Welcome to Arcane Adventures!  ")
	g.console.Announce("======================================")

	name, err := g.askName()
	if err != nil {
		return err
	}
	g.player = entity.NewCharacter(name)
	g.console.Announce(fmt.Sprintf("Greetings, %s! Your journey begins now...", name))

	if err := g.chooseEquipment(); err != nil {
		return err
	}

	span.SetAttributes(
		attribute.Int("equipped", len(g.player.Equipped)),
		attribute.Bool("fresh_enemies", g.enemies.Fresh()),
	)
	return nil
}

// askName prompts until the player enters a non-blank name.
func (g *Game) askName() (string, error) {
	for {
		input, err := g.console.Prompt("Enter your name, adventurer: ")
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(input); name != "" {
			return name, nil
		}
	}
}

// chooseEquipment shows the catalog and equips the selected numbers in order.
// Numbers outside the catalog and tokens that are not numbers are skipped
// without comment. Selections past the third are refused one by one.
func (g *Game) chooseEquipment() error {
	g.console.Announce("")
	g.console.Announce(fmt.Sprintf("Choose %d items to equip:", entity.MaxEquipped))
	for i, item := range g.items.All() {
		mods := make([]string, len(item.Modifiers))
		for j, m := range item.Modifiers {
			mods[j] = m.String()
		}
		g.console.Announce(fmt.Sprintf("[%d] %s (%s)", i+1, item.Name, strings.Join(mods, ", ")))
	}

	input, err := g.console.Prompt("Enter the numbers (e.g., 1 2 3): ")
	if err != nil {
		return err
	}

	for _, field := range strings.Fields(input) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		item := g.items.GetByNumber(n)
		if item == nil {
			continue
		}
		if err := g.player.Equip(item); err != nil {
			if errors.Is(err, entity.ErrEquipmentFull) {
				g.console.Announce("❌ You can only equip 3 items!")
				continue
			}
			return err
		}
		g.console.Announce(fmt.Sprintf("✅ Equipped %s!", item.Name))
	}
	return nil
}
