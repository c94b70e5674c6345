// Package entity provides the player character and the enemies it fights.
package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/arcaneadventures/internal/gamedata"
)

// Starting values for a freshly created (or respawned) character.
const (
	StartLevel         = 1
	StartExperienceCap = 100
	StartBaseDamage    = 10
	StartMaxHealth     = 100
	StartMaxShield     = 100

	// MaxEquipped is how many items a character can wear at once.
	MaxEquipped = 3

	// ExperienceCapGrowth is added to the experience cap on every level-up.
	ExperienceCapGrowth = 25
	// PointsPerLevel is the number of upgrade points awarded per level-up.
	PointsPerLevel = 4
)

var (
	// ErrEquipmentFull is returned by Equip when MaxEquipped items are already worn.
	ErrEquipmentFull = errors.New("you can only equip 3 items")
	// ErrNoUpgradePoints is returned by ApplyUpgrade when there are no points to spend.
	ErrNoUpgradePoints = errors.New("no upgrade points left")
)

// Roller is the random source for attack rolls. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// Character is the player: a mutable bag of stats plus the rules that change them.
type Character struct {
	Name string

	Level         int
	Experience    int
	ExperienceCap int
	UpgradePoints int

	BaseDamage float64
	Health     int
	MaxHealth  int
	Shield     int
	MaxShield  int

	// Probabilities. Not clamped: stacked items can push them past 1.0.
	CritChance        float64
	DodgeChance       float64
	StunChance        float64
	HealthRegen       float64
	ExtraActionChance float64

	Equipped []*gamedata.EquipmentDef
}

// NewCharacter creates a level 1 character with the starting stats.
func NewCharacter(name string) *Character {
	return &Character{
		Name:          name,
		Level:         StartLevel,
		ExperienceCap: StartExperienceCap,
		BaseDamage:    StartBaseDamage,
		Health:        StartMaxHealth,
		MaxHealth:     StartMaxHealth,
		Shield:        StartMaxShield,
		MaxShield:     StartMaxShield,
		Equipped:      []*gamedata.EquipmentDef{},
	}
}

// Reset restores every stat to its starting value. Only the name survives.
func (c *Character) Reset() {
	*c = *NewCharacter(c.Name)
}

// IsAlive returns true if the character has health remaining.
func (c *Character) IsAlive() bool { return c.Health > 0 }

// Equip wears an item and applies its modifiers immediately and permanently.
// Nothing changes when the character already wears MaxEquipped items.
func (c *Character) Equip(item *gamedata.EquipmentDef) error {
	if item == nil {
		return errors.New("no item to equip")
	}
	if len(c.Equipped) >= MaxEquipped {
		return ErrEquipmentFull
	}
	c.Equipped = append(c.Equipped, item)
	for _, m := range item.Modifiers {
		c.applyModifier(m)
	}
	return nil
}

func (c *Character) applyModifier(m gamedata.Modifier) {
	switch m.Stat {
	case gamedata.StatDamage:
		c.BaseDamage = m.Apply(c.BaseDamage)
	case gamedata.StatMaxHealth:
		c.MaxHealth = int(m.Apply(float64(c.MaxHealth)))
	case gamedata.StatMaxShield:
		c.MaxShield = int(m.Apply(float64(c.MaxShield)))
	case gamedata.StatCritChance:
		c.CritChance = m.Apply(c.CritChance)
	case gamedata.StatDodgeChance:
		c.DodgeChance = m.Apply(c.DodgeChance)
	case gamedata.StatStunChance:
		c.StunChance = m.Apply(c.StunChance)
	case gamedata.StatHealthRegen:
		c.HealthRegen = m.Apply(c.HealthRegen)
	case gamedata.StatExtraActionChance:
		c.ExtraActionChance = m.Apply(c.ExtraActionChance)
	}
}

// AttackResult is the outcome of a single attack roll.
type AttackResult struct {
	Damage   int
	Critical bool
	Stun     bool // the target should be stunned
}

// Attack rolls one attack. Crit and stun are independent draws, crit first.
func (c *Character) Attack(rng Roller) AttackResult {
	var res AttackResult
	damage := c.BaseDamage
	if rng.Float64() < c.CritChance {
		res.Critical = true
		damage *= 2
	}
	if rng.Float64() < c.StunChance {
		res.Stun = true
	}
	res.Damage = int(damage)
	return res
}

// TakeDamage spends shield first and the remainder on health.
// When health drops to zero or below the character is reset and died is true.
func (c *Character) TakeDamage(amount int) (died bool) {
	if c.Shield > 0 {
		absorbed := min(amount, c.Shield)
		c.Shield -= absorbed
		amount -= absorbed
	}
	c.Health -= max(amount, 0)

	if c.Health <= 0 {
		c.Reset()
		return true
	}
	return false
}

// HealAfterFight restores health and shield to their maximums.
func (c *Character) HealAfterFight() {
	c.Health = c.MaxHealth
	c.Shield = c.MaxShield
}

// LevelUpFunc is called once per level gained, after the stats for that level
// have been applied. It usually runs the upgrade interaction.
type LevelUpFunc func(c *Character) error

// GrantExperience adds experience and processes any level-ups it unlocks.
func (c *Character) GrantExperience(amount int, onLevelUp LevelUpFunc) (levels int, err error) {
	c.Experience += amount
	return c.LevelUp(onLevelUp)
}

// LevelUp converts banked experience into levels, one threshold at a time.
// Each level costs the current cap, raises the cap by ExperienceCapGrowth,
// awards PointsPerLevel points and fully heals. It does nothing while
// experience is below the cap.
func (c *Character) LevelUp(onLevelUp LevelUpFunc) (levels int, err error) {
	for c.Experience >= c.ExperienceCap {
		c.Level++
		c.Experience -= c.ExperienceCap
		c.ExperienceCap += ExperienceCapGrowth
		c.UpgradePoints += PointsPerLevel
		c.HealAfterFight()
		levels++

		if onLevelUp != nil {
			if err := onLevelUp(c); err != nil {
				return levels, fmt.Errorf("level %d: %w", c.Level, err)
			}
		}
	}
	return levels, nil
}

// ApplyUpgrade spends one upgrade point on the given option.
// Health and shield upgrades raise the maximum only.
func (c *Character) ApplyUpgrade(option UpgradeOption) error {
	if c.UpgradePoints <= 0 {
		return ErrNoUpgradePoints
	}
	switch option {
	case UpgradeDamage:
		c.BaseDamage += UpgradeDamageAmount
	case UpgradeHealth:
		c.MaxHealth += UpgradeHealthAmount
	case UpgradeShield:
		c.MaxShield += UpgradeShieldAmount
	default:
		return fmt.Errorf("%w: %d", ErrUnknownUpgrade, option)
	}
	c.UpgradePoints--
	return nil
}

// Summary returns a one-line status for menus.
func (c *Character) Summary() string {
	return fmt.Sprintf("%s | Lv %d | EXP %d/%d | HP %d/%d | Shield %d/%d | DMG %g | Points %d",
		c.Name, c.Level, c.Experience, c.ExperienceCap,
		c.Health, c.MaxHealth, c.Shield, c.MaxShield, c.BaseDamage, c.UpgradePoints)
}
