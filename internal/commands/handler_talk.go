package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// TalkHandlerFactory creates the conversation command. NPCs speak their
// dialogue and may hand over a one-time reward; enemies occasionally have
// something to growl.
type TalkHandlerFactory struct{}

func (f *TalkHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *TalkHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Talk to whom?")
		}
		query := strings.Join(args, " ")

		if _, npc := findRoomNPC(s, query); npc != nil {
			return talkToNPC(s, pub, npc)
		}

		if _, enemy := findRoomEnemy(s, query); enemy != nil {
			if enemy.Dialogue == "" {
				return send(pub, s.Player.Id, fmt.Sprintf("%s only snarls at you.", enemy.Name))
			}
			return send(pub, s.Player.Id, fmt.Sprintf("%s: %q", enemy.Name, enemy.Dialogue))
		}

		return NewUserError(fmt.Sprintf("There is no %s here to talk to.", query))
	}, nil
}

func talkToNPC(s *State, pub Publisher, npc *game.NPC) error {
	if len(npc.Dialogue) == 0 {
		if err := send(pub, s.Player.Id, fmt.Sprintf("%s has nothing to say.", npc.Name)); err != nil {
			return err
		}
	}
	for _, line := range npc.Dialogue {
		if err := send(pub, s.Player.Id, fmt.Sprintf("%s: %q", npc.Name, line)); err != nil {
			return err
		}
	}

	if npc.Reward == "" {
		return nil
	}

	rewardId := storage.NormalizeId(npc.Reward)
	item := s.Dict.Items.Get(string(rewardId))
	if item == nil || s.Player.Has(string(rewardId)) {
		return nil
	}

	s.Player.Take(string(rewardId), item)
	return send(pub, s.Player.Id, fmt.Sprintf("%s gives you the %s.", npc.Name, item.Name))
}
