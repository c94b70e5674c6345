package entity

import "errors"

// ErrUnknownUpgrade is returned by ApplyUpgrade for an option outside the menu.
var ErrUnknownUpgrade = errors.New("unknown upgrade option")

// Stat increase per upgrade point.
const (
	UpgradeDamageAmount = 3
	UpgradeHealthAmount = 10
	UpgradeShieldAmount = 5
)

// UpgradeOption is a stat a point can be spent on. The values match the menu keys.
type UpgradeOption int

const (
	UpgradeDamage UpgradeOption = iota + 1
	UpgradeHealth
	UpgradeShield
)

// UpgradeOptions lists the options in menu order.
var UpgradeOptions = []UpgradeOption{UpgradeDamage, UpgradeHealth, UpgradeShield}

// String returns the menu label.
func (o UpgradeOption) String() string {
	switch o {
	case UpgradeDamage:
		return "Damage +3"
	case UpgradeHealth:
		return "Health +10"
	case UpgradeShield:
		return "Shield +5"
	default:
		return "Unknown"
	}
}

// Confirmation returns the line shown after the upgrade is applied.
func (o UpgradeOption) Confirmation() string {
	switch o {
	case UpgradeDamage:
		return "🗡️ Damage increased by 3!"
	case UpgradeHealth:
		return "❤️ Health increased by 10!"
	case UpgradeShield:
		return "🛡️ Shield increased by 5!"
	default:
		return ""
	}
}
