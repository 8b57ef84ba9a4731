package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/game"
)

// TakeHandlerFactory creates the pick-up command.
// Config:
//   - taken_message (optional): template for success, sees .Item
type TakeHandlerFactory struct{}

func (f *TakeHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *TakeHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Take what?")
		}
		query := strings.Join(args, " ")

		id, item := findRoomItem(s, query)
		if item == nil {
			return NewUserError(fmt.Sprintf("There is no %s here.", query))
		}
		if !item.Takeable {
			return NewUserError(fmt.Sprintf("You can't take the %s.", item.Name))
		}

		if !s.World.RemoveEntity(game.EntityItem, id) {
			return NewUserError(fmt.Sprintf("The %s slips from your grasp.", item.Name))
		}
		s.Player.Take(string(id), item)

		msg, err := configMessage(config, "taken_message",
			"You take the {{ .Item }}.", map[string]string{"Item": item.Name})
		if err != nil {
			return err
		}
		return send(pub, s.Player.Id, msg)
	}, nil
}
