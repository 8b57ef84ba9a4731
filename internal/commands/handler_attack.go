package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/combat"
	"github.com/hollowvale/go-adventure/internal/display"
	"github.com/hollowvale/go-adventure/internal/game"
)

// AttackHandlerFactory creates the fight command. Outside combat the
// argument names an enemy to engage; inside combat it names one of the
// player's attacks, defaulting to a basic strike.
// Config:
//   - victory_message (optional): template for a kill, sees .Enemy
type AttackHandlerFactory struct{}

func (f *AttackHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *AttackHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		query := strings.Join(args, " ")

		if !s.InCombat() {
			return engage(s, pub, query)
		}
		return fightRound(s, pub, config, query)
	}, nil
}

// engage starts an encounter against a named enemy in the room.
func engage(s *State, pub Publisher, query string) error {
	if query == "" {
		return NewUserError("Attack what?")
	}

	id, enemy := findRoomEnemy(s, query)
	if enemy == nil {
		return NewUserError(fmt.Sprintf("There is no %s here to fight.", query))
	}

	s.Encounter = combat.NewEncounter(id, enemy, s.Player.CurrentRoom)

	if enemy.Dialogue != "" {
		if err := send(pub, s.Player.Id, fmt.Sprintf("%s: %q", enemy.Name, enemy.Dialogue)); err != nil {
			return err
		}
	}
	if err := send(pub, s.Player.Id,
		fmt.Sprintf("You square off against %s (%d health)!", enemy.Name, enemy.Health)); err != nil {
		return err
	}
	return sendAttackMenu(s, pub)
}

// fightRound resolves one full round: the player's swing, then the enemy's
// counterattack, then end-of-round bookkeeping.
func fightRound(s *State, pub Publisher, config map[string]any, query string) error {
	enc := s.Encounter

	attackId := resolveAttackId(s, query)
	result := s.Engine.PerformAttack(s.Player, attackId)

	if err := send(pub, s.Player.Id, result.Message); err != nil {
		return err
	}

	if result.Damage > 0 {
		enc.ApplyStrike(result.Damage)
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("You deal %d damage. %s has %d health left.",
				result.Damage, enc.EnemyName, enc.EnemyHealth)); err != nil {
			return err
		}
	}
	if result.Healing > 0 {
		healed := s.Player.Heal(result.Healing)
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("You recover %d health (%d/%d).",
				healed, s.Player.Health, s.Player.MaxHealth)); err != nil {
			return err
		}
	}
	if result.EnemyDamageReduction > 0 {
		enc.SetDamageReduction(result.EnemyDamageReduction)
		if err := send(pub, s.Player.Id, "You brace for the next blow."); err != nil {
			return err
		}
	}
	if result.Effect != nil {
		// Copy so the ticking duration never touches the catalog.
		eff := *result.Effect
		s.Player.AddStatusEffect(game.EffectId(eff.Name), &eff)
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("The %s effect takes hold (%d rounds).", eff.Name, eff.Duration)); err != nil {
			return err
		}
	}

	if enc.State == combat.StateEnemyDefeated {
		return finishVictory(s, pub, config)
	}

	if damage, struck := enc.EnemyTurn(s.Player); struck {
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("%s %s you for %d damage (%d/%d).",
				enc.EnemyName, combat.DamageVerb(damage), damage, s.Player.Health, s.Player.MaxHealth)); err != nil {
			return err
		}
	}

	if enc.State == combat.StatePlayerDefeated {
		s.Quit = true
		s.Encounter = nil
		s.Engine.ResetCooldowns(s.Player.Id)
		return send(pub, s.Player.Id,
			fmt.Sprintf("%s strikes you down. Your adventure ends here.", enc.EnemyName))
	}

	s.Engine.UpdateCooldowns(s.Player.Id)
	for _, msg := range s.Player.UpdateStatusEffects() {
		if err := send(pub, s.Player.Id, msg); err != nil {
			return err
		}
	}
	enc.EndRound()

	return nil
}

// resolveAttackId maps the player's query to an attack id from their kit.
// Unmatched queries pass through so the engine can apply its basic-strike
// fallback.
func resolveAttackId(s *State, query string) string {
	if query == "" {
		return ""
	}
	for _, opt := range s.Engine.AvailableAttacks(s.Player) {
		if matches(query, opt.Id, opt.Attack.Name) {
			return opt.Id
		}
	}
	return query
}

func finishVictory(s *State, pub Publisher, config map[string]any) error {
	enc := s.Encounter
	s.Encounter = nil
	s.Engine.ResetCooldowns(s.Player.Id)

	// Remove by id; fall back to the display name if the room data has
	// drifted from the encounter.
	if !s.World.RemoveEntity(game.EntityEnemy, enc.EnemyId) {
		s.World.RemoveEnemyByName(enc.RoomId, enc.EnemyName)
	}

	msg, err := configMessage(config, "victory_message",
		"{{ .Enemy }} is defeated!", map[string]string{"Enemy": enc.EnemyName})
	if err != nil {
		return err
	}
	return send(pub, s.Player.Id, msg)
}

func sendAttackMenu(s *State, pub Publisher) error {
	options := s.Engine.AvailableAttacks(s.Player)
	if len(options) == 0 {
		return send(pub, s.Player.Id, "You have only your fists. Use 'attack' to strike.")
	}

	var lines []string
	for _, opt := range options {
		line := opt.Attack.Name
		if opt.CooldownLeft > 0 {
			line += fmt.Sprintf(" (ready in %s)", combat.Rounds(opt.CooldownLeft))
		}
		lines = append(lines, line)
	}
	return send(pub, s.Player.Id, "Your attacks: "+strings.Join(lines, ", "))
}

// FleeHandlerFactory creates the escape command.
type FleeHandlerFactory struct{}

func (f *FleeHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *FleeHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if !s.InCombat() {
			return NewUserError("There is nothing to flee from.")
		}

		if err := s.Encounter.Flee(); err != nil {
			return NewUserError(display.Capitalize(err.Error()) + "!")
		}

		name := s.Encounter.EnemyName
		s.Encounter = nil
		s.Engine.ResetCooldowns(s.Player.Id)
		return send(pub, s.Player.Id, fmt.Sprintf("You break away from %s and catch your breath.", name))
	}, nil
}
