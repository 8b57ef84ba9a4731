package game

import (
	"fmt"

	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Dictionary holds all catalog stores. It is built once at startup and
// passed to every component constructor; nothing reaches for package-level
// state.
type Dictionary struct {
	Rooms   storage.Storer[*Room]
	Items   storage.Storer[*Item]
	Enemies storage.Storer[*Enemy]
	NPCs    storage.Storer[*NPC]
	Attacks storage.Storer[*Attack]
	Classes storage.Storer[*Class]
}

// Check verifies cross-references between catalogs: exits point at known
// rooms, starter weapons and base attacks exist, keys unlock known rooms.
// Unknown occupants listed on rooms are tolerated (the world degrades
// gracefully at runtime) but referenced definitions must exist.
func (d *Dictionary) Check() error {
	el := errors.NewErrorList()

	for id, room := range d.Rooms.GetAll() {
		for _, exit := range room.Exits {
			if d.Rooms.Get(string(storage.NormalizeId(exit))) == nil {
				el.Add(fmt.Errorf("room %s: exit %q does not exist", id, exit))
			}
		}
	}

	for id, class := range d.Classes.GetAll() {
		if class.StarterWeapon != "" && d.Items.Get(class.StarterWeapon) == nil {
			el.Add(fmt.Errorf("class %s: starter weapon %q does not exist", id, class.StarterWeapon))
		}
		for _, atk := range class.BaseAttacks {
			if d.Attacks.Get(atk) == nil {
				el.Add(fmt.Errorf("class %s: base attack %q does not exist", id, atk))
			}
		}
	}

	for id, item := range d.Items.GetAll() {
		if item.Kind() == ItemKindKey {
			for _, roomId := range item.Unlocks {
				if d.Rooms.Get(string(storage.NormalizeId(roomId))) == nil {
					el.Add(fmt.Errorf("item %s: unlocks unknown room %q", id, roomId))
				}
			}
		}
		if item.Kind() == ItemKindSpell && item.Teaches.Id() != "" {
			if err := item.Teaches.Resolve(d.Attacks); err != nil {
				el.Add(fmt.Errorf("item %s: %w", id, err))
			}
		}
	}

	return el.Err()
}
