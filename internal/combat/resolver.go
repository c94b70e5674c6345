// Package combat resolves a single encounter between the player and an enemy.
package combat

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/arcaneadventures/internal/console"
	"github.com/samdwyer/arcaneadventures/internal/entity"
	"github.com/samdwyer/arcaneadventures/internal/telemetry"
)

// ErrNoEnemies is returned by Fight when the enemy pool is empty.
var ErrNoEnemies = errors.New("no enemies to fight")

// RNG is the single random source for attack rolls and enemy selection.
// *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// Phase is the state of an encounter.
type Phase int

const (
	// PhaseEncounterStart - enemy chosen and announced, no exchange yet
	PhaseEncounterStart Phase = iota
	// PhaseExchange - player and enemy trading blows
	PhaseExchange
	// PhaseEnemyDefeated - enemy health reached zero, reward granted
	PhaseEnemyDefeated
	// PhasePlayerDefeated - player died and respawned
	PhasePlayerDefeated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEncounterStart:
		return "encounter_start"
	case PhaseExchange:
		return "exchange"
	case PhaseEnemyDefeated:
		return "enemy_defeated"
	case PhasePlayerDefeated:
		return "player_defeated"
	default:
		return "unknown"
	}
}

// Outcome summarizes a finished encounter.
type Outcome struct {
	Phase        Phase
	Enemy        string
	Exchanges    int
	DamageDealt  int
	DamageTaken  int
	Criticals    int
	EnemyStunned bool
	Experience   int // Experience granted (0 unless the enemy was defeated)
	LevelsGained int
}

// Won reports whether the player defeated the enemy.
func (o Outcome) Won() bool { return o.Phase == PhaseEnemyDefeated }

// Resolver runs encounters.
type Resolver struct {
	console   console.Console
	rng       RNG
	pool      *entity.EnemyPool
	onLevelUp entity.LevelUpFunc
	tracer    trace.Tracer
}

// NewResolver creates a resolver. onLevelUp runs once per level gained from a
// victory and may be nil.
func NewResolver(con console.Console, rng RNG, pool *entity.EnemyPool, onLevelUp entity.LevelUpFunc) *Resolver {
	return &Resolver{
		console:   con,
		rng:       rng,
		pool:      pool,
		onLevelUp: onLevelUp,
		tracer:    telemetry.Tracer("combat"),
	}
}

// Fight draws a random enemy and resolves the encounter against it.
func (r *Resolver) Fight(ctx context.Context, player *entity.Character) (Outcome, error) {
	enemy := r.pool.Draw(r.rng)
	if enemy == nil {
		return Outcome{}, ErrNoEnemies
	}
	return r.Resolve(ctx, player, enemy)
}

// Resolve runs the exchange loop until the enemy or the player falls.
//
// Each exchange the player strikes first. A stunned enemy never strikes back,
// and nothing here clears the stun. An enemy whose health is already at or
// below zero (possible with a shared pool) ends the encounter immediately.
func (r *Resolver) Resolve(ctx context.Context, player *entity.Character, enemy *entity.Enemy) (Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "combat.encounter")
	defer span.End()
	span.SetAttributes(
		attribute.String("enemy", enemy.ID()),
		attribute.Int("enemy.health", enemy.Health),
		attribute.Bool("enemy.stunned", enemy.Stunned),
		attribute.Int("player.level", player.Level),
	)

	out := Outcome{Phase: PhaseEncounterStart, Enemy: enemy.Name}
	console.AnnounceColor(r.console, fmt.Sprintf("⚔️ You encountered a %s!", enemy.Name), enemy.Color())

	if !enemy.IsAlive() {
		r.console.Announce(fmt.Sprintf("The %s lies motionless. There is nothing left to fight.", enemy.Name))
	}

	for enemy.IsAlive() && player.IsAlive() {
		out.Phase = PhaseExchange
		out.Exchanges++
		if r.exchange(ctx, player, enemy, &out) {
			break
		}
	}

	span.SetAttributes(
		attribute.String("outcome", out.Phase.String()),
		attribute.Int("exchanges", out.Exchanges),
		attribute.Int("damage_dealt", out.DamageDealt),
		attribute.Int("damage_taken", out.DamageTaken),
	)

	if out.Phase != PhaseEnemyDefeated {
		return out, nil
	}

	out.Experience = enemy.ExperienceReward
	r.console.Announce(fmt.Sprintf("💀 %s defeated! You gained %d EXP!", enemy.Name, enemy.ExperienceReward))
	levels, err := player.GrantExperience(enemy.ExperienceReward, r.onLevelUp)
	out.LevelsGained = levels
	span.SetAttributes(attribute.Int("levels_gained", levels))
	if err != nil {
		span.RecordError(err)
		return out, fmt.Errorf("granting experience: %w", err)
	}

	player.HealAfterFight()
	r.console.Announce("🛡️ You have fully recovered after the battle!")
	return out, nil
}

// exchange plays one round and reports whether the encounter is over.
func (r *Resolver) exchange(ctx context.Context, player *entity.Character, enemy *entity.Enemy, out *Outcome) bool {
	_, span := r.tracer.Start(ctx, "combat.exchange")
	defer span.End()
	span.SetAttributes(attribute.Int("exchange", out.Exchanges))

	hit := player.Attack(r.rng)
	if hit.Critical {
		out.Criticals++
		r.console.Announce("🔥 Critical Hit!")
	}
	if hit.Stun {
		enemy.Stunned = true
		out.EnemyStunned = true
		r.console.Announce("💫 Enemy Stunned!")
	}

	enemy.TakeDamage(hit.Damage)
	out.DamageDealt += hit.Damage
	r.console.Announce(fmt.Sprintf("🗡️ You dealt %d damage to %s!", hit.Damage, enemy.Name))
	span.SetAttributes(
		attribute.Int("damage", hit.Damage),
		attribute.Bool("critical", hit.Critical),
		attribute.Bool("stun", hit.Stun),
	)

	if !enemy.IsAlive() {
		out.Phase = PhaseEnemyDefeated
		return true
	}

	if enemy.Stunned {
		return false
	}

	out.DamageTaken += enemy.Damage
	r.console.Announce(fmt.Sprintf("The %s hits you for %d damage.", enemy.Name, enemy.Damage))
	if player.TakeDamage(enemy.Damage) {
		out.Phase = PhasePlayerDefeated
		span.SetAttributes(attribute.Bool("player_died", true))
		r.console.Announce("💀 You have died! Respawning...")
		return true
	}
	return false
}
