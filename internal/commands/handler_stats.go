package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/display"
)

// StatsHandlerFactory creates the character sheet command.
type StatsHandlerFactory struct{}

func (f *StatsHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *StatsHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		var b strings.Builder
		b.WriteString(display.Heading(fmt.Sprintf("%s the %s", s.Player.Name, display.Capitalize(s.Player.Class))))
		b.WriteString("\n")
		b.WriteString(display.Bar("Health", s.Player.Health, s.Player.MaxHealth))
		b.WriteString(fmt.Sprintf("\nAttack damage: %d", s.Player.CalculateDamage()))

		if weapon, ok := s.Player.Inventory[s.Player.EquippedWeapon]; ok {
			b.WriteString(fmt.Sprintf("\nWielding: %s", weapon.Name))
		} else {
			b.WriteString("\nWielding: nothing")
		}

		if len(s.Player.StatusEffects) > 0 {
			b.WriteString("\nActive effects:\n")
			var lines []string
			for _, effect := range s.Player.StatusEffects {
				lines = append(lines, fmt.Sprintf("%s (%d rounds left)", effect.Name, effect.Duration))
			}
			b.WriteString(display.List(lines, ""))
		}

		if options := s.Engine.AvailableAttacks(s.Player); len(options) > 0 {
			b.WriteString("\nAttacks:\n")
			var lines []string
			for _, opt := range options {
				line := opt.Attack.Name
				if opt.CooldownLeft > 0 {
					line += fmt.Sprintf(" (ready in %d rounds)", opt.CooldownLeft)
				}
				lines = append(lines, line)
			}
			b.WriteString(display.List(lines, ""))
		}

		return send(pub, s.Player.Id, b.String())
	}, nil
}
