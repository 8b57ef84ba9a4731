package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// ItemKind is the closed set of item categories. The meaning of an item's
// numeric effect fields depends on its kind: Damage only applies to weapons,
// Heal and ManaBoost to consumables, and so on. The accessors below gate the
// fields so callers never read a field that is meaningless for the kind.
type ItemKind int

const (
	ItemKindUnknown ItemKind = iota
	ItemKindWeapon
	ItemKindConsumable
	ItemKindKey
	ItemKindLore
	ItemKindUpgrade
	ItemKindSpell
	ItemKindOther
)

func (k ItemKind) String() string {
	switch k {
	case ItemKindWeapon:
		return "weapon"
	case ItemKindConsumable:
		return "consumable"
	case ItemKindKey:
		return "key"
	case ItemKindLore:
		return "lore"
	case ItemKindUpgrade:
		return "upgrade"
	case ItemKindSpell:
		return "spell"
	case ItemKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// ClassList is a set of class ids. Catalog files may declare it as a single
// string or a list; both forms decode to the same type.
type ClassList []string

func (c *ClassList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*c = ClassList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("class list must be a string or a list of strings")
	}
	*c = ClassList(list)
	return nil
}

// Allows reports whether the class may use the restricted thing. An empty
// list means unrestricted.
func (c ClassList) Allows(class string) bool {
	if len(c) == 0 {
		return true
	}
	for _, allowed := range c {
		if strings.EqualFold(allowed, class) {
			return true
		}
	}
	return false
}

// Item defines a type of item loaded from catalog files.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// TypeStr is the item kind from the catalog file
	TypeStr string `json:"type"`

	Takeable      bool `json:"takeable"`
	Droppable     bool `json:"droppable"`
	Usable        bool `json:"usable"`
	ConsumedOnUse bool `json:"consumed_on_use"`

	// Numeric effects; which apply depends on the kind
	Damage          int `json:"damage,omitempty"`
	Heal            int `json:"heal,omitempty"`
	ManaBoost       int `json:"mana_boost,omitempty"`
	PermanentHealth int `json:"permanent_health,omitempty"`
	PermanentDamage int `json:"permanent_damage,omitempty"`

	// Teaches references the attack a spell item grants when used by a
	// caster. It is resolved against the attack catalog at load time.
	Teaches storage.SmartIdentifier[*Attack] `json:"teaches,omitempty"`

	// Effect is a timed modifier applied when the item is used
	Effect *StatusEffect `json:"effect,omitempty"`

	ClassRestriction ClassList `json:"class_restriction,omitempty"`

	// Unlocks lists room ids this key opens
	Unlocks []string `json:"unlocks,omitempty"`

	Rarity Rarity `json:"rarity,omitempty"`

	// MaxSpawn caps how many copies the placement pass may scatter.
	// Absent means 1.
	MaxSpawn *int `json:"max_spawn,omitempty"`

	// AllowedRooms restricts procedural placement to specific rooms
	AllowedRooms []string `json:"allowed_rooms,omitempty"`

	Tags []string `json:"tags,omitempty"`
}

// Kind returns the parsed ItemKind from TypeStr.
func (i *Item) Kind() ItemKind {
	switch strings.ToLower(i.TypeStr) {
	case "weapon":
		return ItemKindWeapon
	case "consumable":
		return ItemKindConsumable
	case "key":
		return ItemKindKey
	case "lore":
		return ItemKindLore
	case "upgrade":
		return ItemKindUpgrade
	case "spell":
		return ItemKindSpell
	case "other", "":
		return ItemKindOther
	default:
		return ItemKindUnknown
	}
}

// WeaponDamage returns the damage bonus an equipped weapon grants, or 0 for
// any other kind.
func (i *Item) WeaponDamage() int {
	if i.Kind() != ItemKindWeapon {
		return 0
	}
	return i.Damage
}

// SpawnLimit returns the effective max spawn count (default 1).
func (i *Item) SpawnLimit() int {
	if i.MaxSpawn == nil {
		return 1
	}
	if *i.MaxSpawn < 0 {
		return 0
	}
	return *i.MaxSpawn
}

// HasTag reports whether the item carries the given tag (case-insensitive).
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Kind() == ItemKindUnknown {
		el.Add(fmt.Errorf("item type %q is invalid", i.TypeStr))
	}
	if i.Kind() == ItemKindKey && len(i.Unlocks) == 0 {
		el.Add(fmt.Errorf("key item must list the rooms it unlocks"))
	}
	if i.MaxSpawn != nil && *i.MaxSpawn < 0 {
		el.Add(fmt.Errorf("max_spawn must be >= 0"))
	}

	return el.Err()
}
