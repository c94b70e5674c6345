// Package game provides the session loop: setup, main menu and upgrades.
package game

// State represents where the session currently is.
type State int

const (
	// StateSetup is name entry and equipment selection.
	StateSetup State = iota
	// StateMenu is the main menu, waiting for a choice.
	StateMenu
	// StateFighting is an encounter in progress.
	StateFighting
	// StateUpgrading is the upgrade point menu.
	StateUpgrading
	// StateExited means the session is over.
	StateExited
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateMenu:
		return "menu"
	case StateFighting:
		return "fighting"
	case StateUpgrading:
		return "upgrading"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}
