package combat

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hollowvale/go-adventure/internal/dice"
	"github.com/hollowvale/go-adventure/internal/game"
)

// Result describes the outcome of one player attack.
type Result struct {
	// Success is false when the named attack could not be used as asked:
	// a miss, or a cooldown fallback to the basic strike.
	Success bool

	Damage               int
	BonusDamage          int
	Healing              int
	EnemyDamageReduction float64

	// Effect is the timed modifier the attack grants on a hit, if any
	Effect *game.StatusEffect

	Message string
}

// Engine resolves player attacks against the attack catalog. It owns the
// per-player cooldown books; encounters hold the enemy side of a fight.
type Engine struct {
	dict   *game.Dictionary
	roller dice.Roller

	mu        sync.Mutex
	cooldowns map[string]map[string]int
}

func NewEngine(dict *game.Dictionary, roller dice.Roller) *Engine {
	return &Engine{
		dict:      dict,
		roller:    roller,
		cooldowns: make(map[string]map[string]int),
	}
}

// PerformAttack resolves one swing. Unknown attack ids fall back to the basic
// strike and still succeed. An attack on cooldown, or one restricted to
// another class, also falls back to the basic strike but reports failure so
// the caller can tell the player. A miss deals nothing and leaves the
// cooldown unconsumed.
func (e *Engine) PerformAttack(player *game.Player, attackId string) *Result {
	attack := e.dict.Attacks.Get(attackId)
	if attack == nil {
		return &Result{
			Success: true,
			Damage:  player.CalculateDamage(),
			Message: "You attack with a basic strike.",
		}
	}

	if !attack.ClassRestriction.Allows(player.Class) {
		return &Result{
			Success: false,
			Damage:  player.CalculateDamage(),
			Message: fmt.Sprintf("A %s cannot use %s. You fall back to a basic strike.", player.Class, attack.Name),
		}
	}

	if left := e.CooldownLeft(player.Id, attackId); left > 0 {
		return &Result{
			Success: false,
			Damage:  player.CalculateDamage(),
			Message: fmt.Sprintf("%s is still on cooldown (%s left). You fall back to a basic strike.", attack.Name, Rounds(left)),
		}
	}

	if dice.Percentile(e.roller) > attack.HitChance() {
		return &Result{
			Success: false,
			Message: fmt.Sprintf("Your %s misses!", attack.Name),
		}
	}

	if attack.Cooldown > 0 {
		e.setCooldown(player.Id, attackId, attack.Cooldown)
	}

	return &Result{
		Success:              true,
		Damage:               player.CalculateDamage() + attack.BonusTotal(),
		BonusDamage:          attack.BonusTotal(),
		Healing:              attack.Healing,
		EnemyDamageReduction: attack.EnemyDamageReduction,
		Effect:               attack.Effect,
		Message:              fmt.Sprintf("You unleash %s!", attack.Name),
	}
}

// CooldownLeft returns the rounds remaining before the player may use the
// attack again.
func (e *Engine) CooldownLeft(playerId, attackId string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cooldowns[playerId][attackId]
}

func (e *Engine) setCooldown(playerId, attackId string, rounds int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	book, ok := e.cooldowns[playerId]
	if !ok {
		book = make(map[string]int)
		e.cooldowns[playerId] = book
	}
	book[attackId] = rounds
}

// UpdateCooldowns decrements every active cooldown for the player by one
// round, dropping the ones that reach zero. Called once per completed combat
// round.
func (e *Engine) UpdateCooldowns(playerId string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for attackId, left := range e.cooldowns[playerId] {
		if left <= 1 {
			delete(e.cooldowns[playerId], attackId)
			continue
		}
		e.cooldowns[playerId][attackId] = left - 1
	}
}

// ResetCooldowns clears the player's cooldown book. Called when an encounter
// ends.
func (e *Engine) ResetCooldowns(playerId string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.cooldowns, playerId)
}

// AttackOption is one entry in a player's attack menu.
type AttackOption struct {
	Id           string
	Attack       *game.Attack
	CooldownLeft int
}

// AvailableAttacks lists the player's class base kit plus learned spells,
// deduplicated and sorted, each annotated with any remaining cooldown.
// Unknown ids and attacks restricted to another class are skipped.
func (e *Engine) AvailableAttacks(player *game.Player) []AttackOption {
	seen := map[string]bool{}
	var ids []string

	if class := e.dict.Classes.Get(player.Class); class != nil {
		for _, id := range class.BaseAttacks {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	for _, id := range player.Spells {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var options []AttackOption
	for _, id := range ids {
		attack := e.dict.Attacks.Get(id)
		if attack == nil || !attack.ClassRestriction.Allows(player.Class) {
			continue
		}
		options = append(options, AttackOption{
			Id:           id,
			Attack:       attack,
			CooldownLeft: e.CooldownLeft(player.Id, id),
		})
	}
	return options
}
