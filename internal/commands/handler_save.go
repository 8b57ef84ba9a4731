package commands

import (
	"context"
	"fmt"

	"github.com/hollowvale/go-adventure/internal/display"
)

const defaultSaveName = "quicksave"

// SaveHandlerFactory creates the save command.
type SaveHandlerFactory struct{}

func (f *SaveHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *SaveHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		name := defaultSaveName
		if len(args) > 0 {
			name = args[0]
		}

		if err := s.Saves.Save(name, s.Player, s.World); err != nil {
			return NewUserError(fmt.Sprintf("Could not save: %v", err))
		}
		return send(pub, s.Player.Id, fmt.Sprintf("Game saved as %q.", name))
	}, nil
}

// LoadHandlerFactory creates the load command, which replaces the running
// session with a saved one.
type LoadHandlerFactory struct{}

func (f *LoadHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *LoadHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Load which save? Try 'saves'.")
		}
		name := args[0]

		if !s.Saves.Exists(name) {
			return NewUserError(fmt.Sprintf("There is no save named %q.", name))
		}

		player, world, err := s.Saves.Load(name, s.Dict)
		if err != nil {
			return NewUserError(fmt.Sprintf("Could not load %q: %v", name, err))
		}

		s.Player = player
		s.World = world
		s.Encounter = nil
		s.Engine.ResetCooldowns(player.Id)

		if err := send(pub, s.Player.Id, fmt.Sprintf("Save %q loaded.", name)); err != nil {
			return err
		}
		return send(pub, s.Player.Id, describeRoom(s))
	}, nil
}

// SavesHandlerFactory creates the save listing command.
type SavesHandlerFactory struct{}

func (f *SavesHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *SavesHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		infos, err := s.Saves.List()
		if err != nil {
			return fmt.Errorf("listing saves: %w", err)
		}

		var lines []string
		for _, info := range infos {
			line := info.Name
			if info.PlayerName != "" {
				line += fmt.Sprintf(" - %s the %s", info.PlayerName, display.Capitalize(info.Class))
			}
			if !info.SavedAt.IsZero() {
				line += " (" + info.SavedAt.Local().Format("2006-01-02 15:04") + ")"
			}
			lines = append(lines, line)
		}

		msg := display.Heading("Saved games") + "\n" + display.List(lines, "none yet")
		return send(pub, s.Player.Id, msg)
	}, nil
}
