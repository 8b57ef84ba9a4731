package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// DefaultAccuracy is assumed when an attack omits its accuracy field.
const DefaultAccuracy = 90

// Attack defines a combat ability loaded from catalog files. Attacks are
// shared between class base kits and learnable spells.
type Attack struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	ClassRestriction ClassList `json:"class_restriction,omitempty"`

	// BonusDamage is added on top of the player's calculated damage.
	// Older catalog files declare it as "damage"; BonusTotal handles the
	// fallback.
	BonusDamage int `json:"bonus_damage,omitempty"`
	LegacyBonus int `json:"damage,omitempty"`

	// Cooldown is the number of rounds the attack is unavailable after a
	// hit. A miss does not consume it.
	Cooldown int `json:"cooldown,omitempty"`

	// Accuracy is the hit chance in percent (1-100). Absent means
	// DefaultAccuracy.
	Accuracy *int `json:"accuracy,omitempty"`

	Healing int `json:"healing,omitempty"`

	// Effect is a timed modifier applied to the attacker on a hit
	Effect *StatusEffect `json:"effect,omitempty"`

	// EnemyDamageReduction scales the enemy's next strike by (1 - value).
	// Consumed after one application.
	EnemyDamageReduction float64 `json:"enemy_damage_reduction,omitempty"`
}

// BonusTotal returns the attack's bonus damage, falling back to the legacy
// damage field when bonus_damage is absent.
func (a *Attack) BonusTotal() int {
	if a.BonusDamage != 0 {
		return a.BonusDamage
	}
	return a.LegacyBonus
}

// HitChance returns the effective accuracy percentage.
func (a *Attack) HitChance() int {
	if a.Accuracy == nil {
		return DefaultAccuracy
	}
	return *a.Accuracy
}

// Validate satisfies storage.ValidatingSpec.
func (a *Attack) Validate() error {
	el := errors.NewErrorList()

	if a.Name == "" {
		el.Add(fmt.Errorf("attack name is required"))
	}
	if a.Cooldown < 0 {
		el.Add(fmt.Errorf("cooldown must be >= 0"))
	}
	if a.Accuracy != nil && (*a.Accuracy < 1 || *a.Accuracy > 100) {
		el.Add(fmt.Errorf("accuracy must be between 1 and 100"))
	}
	if a.EnemyDamageReduction < 0 || a.EnemyDamageReduction > 1 {
		el.Add(fmt.Errorf("enemy_damage_reduction must be between 0 and 1"))
	}

	return el.Err()
}
