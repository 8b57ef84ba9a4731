package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Room represents a location in the world.
type Room struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// DetailedDescription is shown when the player looks around
	DetailedDescription string `json:"detailed_description,omitempty"`

	// Exits lists the room ids reachable from here. Movement is
	// fail-closed: a destination absent from this list is unreachable no
	// matter what state it is in.
	Exits []string `json:"exits,omitempty"`

	// Initial occupants
	Items   []string `json:"items,omitempty"`
	Enemies []string `json:"enemies,omitempty"`
	NPCs    []string `json:"npcs,omitempty"`

	// Initial accessibility flags
	Locked      bool   `json:"locked,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	KeyRequired string `json:"key_required,omitempty"`
}

// HasExit reports whether the room declares an exit to the given room id.
func (r *Room) HasExit(roomId string) bool {
	for _, exit := range r.Exits {
		if exit == roomId {
			return true
		}
	}
	return false
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	for i, exit := range r.Exits {
		if exit == "" {
			el.Add(fmt.Errorf("exit %d: room id is required", i))
		}
	}
	return el.Err()
}
