package entity

import (
	"github.com/samdwyer/arcaneadventures/internal/gamedata"
)

// Enemy is a hostile creature the character fights.
type Enemy struct {
	Def              *gamedata.EnemyDef // Catalog entry this enemy was created from
	Name             string
	Health           int // Current health, may go negative on the killing blow
	MaxHealth        int
	Damage           int
	ExperienceReward int
	Stunned          bool // Once set, the enemy no longer attacks
}

// NewEnemyFromDef creates a fresh enemy from a catalog definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Def:              def,
		Name:             def.Name,
		Health:           def.Health,
		MaxHealth:        def.Health,
		Damage:           def.Damage,
		ExperienceReward: def.ExperienceReward,
	}
}

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// TakeDamage subtracts the amount from health without clamping.
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
}

// Color returns the catalog hex color, or "" for enemies without a definition.
func (e *Enemy) Color() string {
	if e.Def != nil {
		return e.Def.Color
	}
	return ""
}

// ID returns the enemy's catalog identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// EnemyPool hands out enemies for encounters.
//
// In shared mode every catalog entry is a single long-lived instance: damage
// and the stunned flag carry over to the next encounter with the same enemy.
// In fresh mode each draw builds a new instance from the definition.
type EnemyPool struct {
	registry *gamedata.EnemyRegistry
	shared   []*Enemy
	fresh    bool
}

// NewEnemyPool creates a pool over the registry.
func NewEnemyPool(registry *gamedata.EnemyRegistry, fresh bool) *EnemyPool {
	p := &EnemyPool{registry: registry, fresh: fresh}
	if !fresh {
		p.shared = make([]*Enemy, registry.Count())
		for i := range p.shared {
			p.shared[i] = NewEnemyFromDef(registry.Get(i))
		}
	}
	return p
}

// Draw picks an enemy uniformly at random. It returns nil for an empty catalog.
func (p *EnemyPool) Draw(rng gamedata.Intner) *Enemy {
	i := p.registry.PickIndex(rng)
	if i < 0 {
		return nil
	}
	if p.fresh {
		return NewEnemyFromDef(p.registry.Get(i))
	}
	return p.shared[i]
}

// Fresh reports whether the pool builds a new enemy per draw.
func (p *EnemyPool) Fresh() bool { return p.fresh }
