package gamedata

import "fmt"

// =============================================================================
// EQUIPMENT EFFECTS
// =============================================================================
//
// Overview:
// ---------
// Equipment is pure data. Each item carries a list of stat modifiers that are
// applied exactly once, at the moment the item is equipped. Nothing stays
// attached to the character afterwards: the modifiers permanently rewrite the
// base stats and probabilities.
//
// Modifier:
// ---------
//   - stat:  which stat is touched (damage, max_health, crit_chance, ...)
//   - op:    add (stat += value) or mul (stat *= value)
//   - value: float operand
//
// Probabilities are not clamped. Stacking several crit items can push
// crit_chance past 1.0, which simply means every roll succeeds.
//
// JSON Schema:
// ------------
// {
//   "id": "steel_greatsword",
//   "name": "Steel Greatsword",
//   "description": "...",
//   "modifiers": [
//     { "stat": "stun_chance", "op": "add", "value": 0.30 },
//     { "stat": "damage", "op": "add", "value": 20 }
//   ]
// }
//
// Order matters: modifiers run top to bottom, and items run in equip order,
// so a mul after an add scales the added amount too.

// StatType identifies a character stat an equipment modifier can change.
type StatType string

const (
	StatDamage            StatType = "damage"
	StatMaxHealth         StatType = "max_health"
	StatMaxShield         StatType = "max_shield"
	StatCritChance        StatType = "crit_chance"
	StatDodgeChance       StatType = "dodge_chance"
	StatStunChance        StatType = "stun_chance"
	StatHealthRegen       StatType = "health_regen"
	StatExtraActionChance StatType = "extra_action_chance"
)

// ModifierOp is how a modifier combines with the current stat value.
type ModifierOp string

const (
	OpAdd ModifierOp = "add"
	OpMul ModifierOp = "mul"
)

// Modifier is a single stat change carried by an item.
type Modifier struct {
	Stat  StatType   `json:"stat"`
	Op    ModifierOp `json:"op"`
	Value float64    `json:"value"`
}

// Apply combines the modifier with the current value of its stat.
func (m Modifier) Apply(current float64) float64 {
	switch m.Op {
	case OpMul:
		return current * m.Value
	default:
		return current + m.Value
	}
}

// String renders the modifier for the equipment menu (e.g. "+0.25 crit_chance").
func (m Modifier) String() string {
	if m.Op == OpMul {
		return fmt.Sprintf("x%g %s", m.Value, m.Stat)
	}
	return fmt.Sprintf("%+g %s", m.Value, m.Stat)
}

// EquipmentDef defines an equippable item loaded from JSON.
type EquipmentDef struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Modifiers   []Modifier `json:"modifiers"`
}

// EquipmentFile represents the structure of equipment.json.
type EquipmentFile struct {
	Equipment []EquipmentDef `json:"equipment"`
}

// LoadEquipment loads item definitions from the embedded equipment.json file.
func LoadEquipment() ([]EquipmentDef, error) {
	file, err := Load[EquipmentFile]("equipment.json")
	if err != nil {
		return nil, err
	}
	for _, def := range file.Equipment {
		if err := def.validate(); err != nil {
			return nil, err
		}
	}
	return file.Equipment, nil
}

// MustLoadEquipment loads item definitions, panicking on error.
func MustLoadEquipment() []EquipmentDef {
	items, err := LoadEquipment()
	if err != nil {
		panic(err)
	}
	return items
}

func (e *EquipmentDef) validate() error {
	for _, m := range e.Modifiers {
		switch m.Stat {
		case StatDamage, StatMaxHealth, StatMaxShield, StatCritChance,
			StatDodgeChance, StatStunChance, StatHealthRegen, StatExtraActionChance:
		default:
			return fmt.Errorf("item %s: unknown stat %q", e.ID, m.Stat)
		}
		if m.Op != OpAdd && m.Op != OpMul {
			return fmt.Errorf("item %s: unknown modifier op %q", e.ID, m.Op)
		}
	}
	return nil
}
