package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/display"
)

// HelpHandlerFactory creates the command listing. It reads the registry it
// belongs to, so asset-defined commands show up automatically.
type HelpHandlerFactory struct {
	handler *Handler
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *HelpHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		var b strings.Builder
		b.WriteString(display.Heading("Commands"))
		for _, cmd := range f.handler.Commands() {
			usage := cmd.Usage
			if usage == "" {
				usage = cmd.Handler
			}
			b.WriteString(fmt.Sprintf("\n  %-24s %s", usage, cmd.Help))
		}
		return send(pub, s.Player.Id, b.String())
	}, nil
}

// QuitHandlerFactory creates the command that ends the session.
type QuitHandlerFactory struct{}

func (f *QuitHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *QuitHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		s.Quit = true
		return send(pub, s.Player.Id, "Farewell, adventurer.")
	}, nil
}
