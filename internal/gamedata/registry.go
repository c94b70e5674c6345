package gamedata

import (
	"errors"
)

// Intner is the random source used for catalog selection.
// *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// EnemyRegistry holds loaded enemy definitions and provides selection utilities.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{enemies: enemies}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// PickIndex selects an enemy index uniformly at random, or -1 if the registry is empty.
func (r *EnemyRegistry) PickIndex(rng Intner) int {
	if len(r.enemies) == 0 {
		return -1
	}
	return rng.Intn(len(r.enemies))
}

// Get returns the enemy definition at index i, or nil if out of range.
func (r *EnemyRegistry) Get(i int) *EnemyDef {
	if i < 0 || i >= len(r.enemies) {
		return nil
	}
	return &r.enemies[i]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// EquipmentRegistry
// =============================================================================

// EquipmentRegistry holds loaded item definitions in menu order.
type EquipmentRegistry struct {
	byID map[string]*EquipmentDef
	all  []EquipmentDef
}

// NewEquipmentRegistry creates a registry from loaded item definitions.
func NewEquipmentRegistry(items []EquipmentDef) *EquipmentRegistry {
	registry := &EquipmentRegistry{
		byID: make(map[string]*EquipmentDef),
		all:  items,
	}
	for i := range items {
		registry.byID[items[i].ID] = &items[i]
	}
	return registry
}

// LoadEquipmentRegistry loads and creates a registry from the embedded equipment.json.
func LoadEquipmentRegistry() (*EquipmentRegistry, error) {
	items, err := LoadEquipment()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no equipment loaded from equipment.json")
	}
	return NewEquipmentRegistry(items), nil
}

// MustLoadEquipmentRegistry loads a registry, panicking on error.
func MustLoadEquipmentRegistry() *EquipmentRegistry {
	registry, err := LoadEquipmentRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *EquipmentRegistry) GetByID(id string) *EquipmentDef {
	return r.byID[id]
}

// GetByNumber returns the item shown as [n] in the menu (1-based), or nil if n is out of range.
func (r *EquipmentRegistry) GetByNumber(n int) *EquipmentDef {
	if n < 1 || n > len(r.all) {
		return nil
	}
	return &r.all[n-1]
}

// All returns all item definitions.
func (r *EquipmentRegistry) All() []EquipmentDef {
	return r.all
}

// Count returns the number of items in the registry.
func (r *EquipmentRegistry) Count() int {
	return len(r.all)
}
