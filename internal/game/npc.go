package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// NPC defines a friendly character loaded from catalog files.
type NPC struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Dialogue lines are spoken in order each conversation
	Dialogue []string `json:"dialogue,omitempty"`

	// Reward is an optional item id granted the first time the player talks
	// to this NPC
	Reward string `json:"reward,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (n *NPC) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("npc name is required"))
	}

	return el.Err()
}
