package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// StatusEffect is a timed modifier attached to the player, decremented once
// per completed combat round.
type StatusEffect struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration"`
	DamageBonus int    `json:"damage_bonus,omitempty"`
}

// Player holds all mutable state for the player character and the rules for
// modifying it safely.
type Player struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"player_class"`

	CurrentRoom storage.Identifier `json:"current_room"`

	Health      int `json:"health"`
	MaxHealth   int `json:"max_health"`
	TotalDamage int `json:"total_damage"`

	// Inventory maps item ids to snapshots of their catalog data, so a
	// save file stands alone even if the catalog changes.
	Inventory map[string]*Item `json:"inventory"`

	// EquippedWeapon is an inventory key or "" when nothing is wielded
	EquippedWeapon string `json:"equipped_weapon,omitempty"`

	StatusEffects map[string]*StatusEffect `json:"status_effects,omitempty"`

	PermanentHealthBoost int `json:"permanent_health_boost"`
	PermanentDamageBoost int `json:"permanent_damage_boost"`

	// Spells are learned attack ids
	Spells []string `json:"spells,omitempty"`
}

// NewPlayer creates a player of the given class with its base stats. The
// starter weapon, if any, is granted by the caller.
func NewPlayer(name, classId string, class *Class, startRoom storage.Identifier) *Player {
	return &Player{
		Id:            uuid.New().String(),
		Name:          name,
		Class:         strings.ToLower(classId),
		CurrentRoom:   startRoom,
		Health:        class.BaseHealth,
		MaxHealth:     class.BaseHealth,
		TotalDamage:   class.BaseDamage,
		Inventory:     make(map[string]*Item),
		StatusEffects: make(map[string]*StatusEffect),
	}
}

// EffectId derives a status effect's map key from its display name.
func EffectId(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Take adds an item snapshot to the inventory.
func (p *Player) Take(itemId string, item *Item) {
	p.Inventory[itemId] = item
}

// Drop removes an item from the inventory. Dropping the equipped weapon
// unequips it first so EquippedWeapon never references an absent entry.
// Returns the removed snapshot, or nil if the item was not carried.
func (p *Player) Drop(itemId string) *Item {
	item, ok := p.Inventory[itemId]
	if !ok {
		return nil
	}

	if p.EquippedWeapon == itemId {
		p.TotalDamage -= item.WeaponDamage()
		p.EquippedWeapon = ""
	}

	delete(p.Inventory, itemId)
	return item
}

// Has reports whether the player carries the item.
func (p *Player) Has(itemId string) bool {
	_, ok := p.Inventory[itemId]
	return ok
}

// EquipWeapon wields an inventory weapon, swapping out the previous weapon's
// damage bonus. TotalDamage is always base damage + permanent boosts + the
// equipped weapon's bonus.
func (p *Player) EquipWeapon(itemId string) error {
	item, ok := p.Inventory[itemId]
	if !ok {
		return fmt.Errorf("item %q is not in the inventory", itemId)
	}
	if item.Kind() != ItemKindWeapon {
		return fmt.Errorf("%s is not a weapon", item.Name)
	}
	if !item.ClassRestriction.Allows(p.Class) {
		return fmt.Errorf("%s cannot be wielded by a %s", item.Name, p.Class)
	}

	if prev, ok := p.Inventory[p.EquippedWeapon]; ok {
		p.TotalDamage -= prev.WeaponDamage()
	}

	p.EquippedWeapon = itemId
	p.TotalDamage += item.WeaponDamage()
	return nil
}

// TakeDamage reduces health, clamping at 0.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health up to the maximum and returns the amount actually
// applied, which may be less than requested. Callers report the actual
// amount.
func (p *Player) Heal(amount int) int {
	before := p.Health
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return p.Health - before
}

// IsAlive reports whether the player still stands.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// AddStatusEffect attaches a timed effect. Re-applying an effect id replaces
// it outright; durations do not stack.
func (p *Player) AddStatusEffect(id string, effect *StatusEffect) {
	if p.StatusEffects == nil {
		p.StatusEffects = make(map[string]*StatusEffect)
	}
	p.StatusEffects[id] = effect
}

// UpdateStatusEffects decrements every active effect's duration by one and
// removes the ones that expire, returning one message per expiry. Called
// exactly once per completed combat round.
func (p *Player) UpdateStatusEffects() []string {
	var messages []string
	for id, effect := range p.StatusEffects {
		effect.Duration--
		if effect.Duration <= 0 {
			name := effect.Name
			if name == "" {
				name = id
			}
			messages = append(messages, fmt.Sprintf("The %s effect has worn off.", name))
			delete(p.StatusEffects, id)
		}
	}
	return messages
}

// CalculateDamage returns total damage plus every active effect's damage
// bonus. Effects stack additively, never multiplicatively.
func (p *Player) CalculateDamage() int {
	total := p.TotalDamage
	for _, effect := range p.StatusEffects {
		total += effect.DamageBonus
	}
	return total
}

// IncreaseMaxHealth permanently raises the health cap and heals the player
// by the same amount.
func (p *Player) IncreaseMaxHealth(amount int) {
	p.PermanentHealthBoost += amount
	p.MaxHealth += amount
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// IncreaseDamage permanently raises total damage.
func (p *Player) IncreaseDamage(amount int) {
	p.PermanentDamageBoost += amount
	p.TotalDamage += amount
}

// LearnSpell records a learned attack id. Duplicates are ignored.
func (p *Player) LearnSpell(attackId string) bool {
	for _, known := range p.Spells {
		if known == attackId {
			return false
		}
	}
	p.Spells = append(p.Spells, attackId)
	return true
}

// MoveTo updates the player's position.
func (p *Player) MoveTo(roomId storage.Identifier) {
	p.CurrentRoom = roomId
}
