package combat

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// State is the lifecycle of an encounter.
type State int

const (
	StateEngaged State = iota
	StateEnemyDefeated
	StatePlayerDefeated
	StateFled
)

func (s State) String() string {
	switch s {
	case StateEnemyDefeated:
		return "enemy defeated"
	case StatePlayerDefeated:
		return "player defeated"
	case StateFled:
		return "fled"
	default:
		return "engaged"
	}
}

// Encounter is one fight between the player and a single enemy. The enemy's
// working health lives here; the catalog definition stays untouched.
type Encounter struct {
	Id      string
	EnemyId storage.Identifier
	RoomId  storage.Identifier

	EnemyName      string
	EnemyHealth    int
	MaxEnemyHealth int
	EnemyDamage    int
	IsBoss         bool
	AutoAttack     bool

	Round int
	State State

	// pendingReduction scales the enemy's next strike, then resets
	pendingReduction float64
}

func NewEncounter(enemyId storage.Identifier, enemy *game.Enemy, roomId storage.Identifier) *Encounter {
	return &Encounter{
		Id:             uuid.New().String(),
		EnemyId:        enemyId,
		RoomId:         roomId,
		EnemyName:      enemy.Name,
		EnemyHealth:    enemy.Health,
		MaxEnemyHealth: enemy.Health,
		EnemyDamage:    enemy.Damage,
		IsBoss:         enemy.IsBoss,
		AutoAttack:     enemy.AttacksBack(),
		State:          StateEngaged,
	}
}

// Active reports whether the fight is still running.
func (e *Encounter) Active() bool {
	return e.State == StateEngaged
}

// ApplyStrike lands player damage on the enemy, clamping health at zero and
// ending the encounter on a kill.
func (e *Encounter) ApplyStrike(damage int) {
	if !e.Active() {
		return
	}

	e.EnemyHealth -= damage
	if e.EnemyHealth <= 0 {
		e.EnemyHealth = 0
		e.State = StateEnemyDefeated
	}
}

// SetDamageReduction arms a one-shot scaling of the enemy's next strike.
// Re-arming replaces the pending value.
func (e *Encounter) SetDamageReduction(reduction float64) {
	e.pendingReduction = reduction
}

// EnemyTurn resolves the enemy's counterattack, applying and then consuming
// any pending damage reduction. Returns the damage dealt and whether the
// enemy struck at all. Passive enemies never strike.
func (e *Encounter) EnemyTurn(player *game.Player) (int, bool) {
	if !e.Active() || !e.AutoAttack {
		return 0, false
	}

	damage := e.EnemyDamage
	if e.pendingReduction > 0 {
		damage = int(float64(damage) * (1 - e.pendingReduction))
		e.pendingReduction = 0
	}

	player.TakeDamage(damage)
	if !player.IsAlive() {
		e.State = StatePlayerDefeated
	}

	return damage, true
}

// EndRound advances the round counter.
func (e *Encounter) EndRound() {
	e.Round++
}

// Flee ends the encounter by escape. Bosses block the exit.
func (e *Encounter) Flee() error {
	if e.IsBoss {
		return fmt.Errorf("%s blocks your escape", e.EnemyName)
	}
	e.State = StateFled
	return nil
}
