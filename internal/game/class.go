package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Class defines a playable character class loaded from catalog files.
type Class struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	BaseHealth int `json:"base_health"`
	BaseDamage int `json:"base_damage"`

	// StarterWeapon is an item id placed in the inventory and equipped at
	// character creation
	StarterWeapon string `json:"starter_weapon,omitempty"`

	// BaseAttacks are the attack ids every member of the class knows
	BaseAttacks []string `json:"base_attacks,omitempty"`

	// CanCast marks classes that may learn spells from spell items
	CanCast bool `json:"can_cast,omitempty"`
}

// Selector satisfies the selection prompt used at character creation.
func (c *Class) Selector() string {
	return c.Name
}

// Validate satisfies storage.ValidatingSpec.
func (c *Class) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("class name is required"))
	}
	if c.BaseHealth <= 0 {
		el.Add(fmt.Errorf("base_health must be positive"))
	}
	if c.BaseDamage <= 0 {
		el.Add(fmt.Errorf("base_damage must be positive"))
	}

	return el.Err()
}
