package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Enemy defines a hostile entity loaded from catalog files. Enemies have no
// AI beyond their flat stat block; the encounter loop applies their damage
// each round.
type Enemy struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Health int `json:"health"`
	Damage int `json:"damage"`

	// IsBoss blocks fleeing the encounter
	IsBoss bool `json:"is_boss,omitempty"`

	// Dialogue is printed when the encounter starts
	Dialogue string `json:"dialogue,omitempty"`

	// AutoAttack controls whether the enemy strikes back each round.
	// Absent means true.
	AutoAttack *bool `json:"auto_attack,omitempty"`
}

// AttacksBack returns the effective auto_attack flag (default true).
func (e *Enemy) AttacksBack() bool {
	return e.AutoAttack == nil || *e.AutoAttack
}

// MatchName reports whether name matches the enemy's display name
// (case-insensitive).
func (e *Enemy) MatchName(name string) bool {
	return strings.EqualFold(e.Name, name)
}

// Validate satisfies storage.ValidatingSpec.
func (e *Enemy) Validate() error {
	el := errors.NewErrorList()

	if e.Name == "" {
		el.Add(fmt.Errorf("enemy name is required"))
	}
	if e.Health <= 0 {
		el.Add(fmt.Errorf("enemy health must be positive"))
	}
	if e.Damage < 0 {
		el.Add(fmt.Errorf("enemy damage must not be negative"))
	}

	return el.Err()
}
