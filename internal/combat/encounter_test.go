package combat

import (
	"testing"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestEncounterDefeat(t *testing.T) {
	enc := NewEncounter("goblin", &game.Enemy{Name: "Goblin", Health: 30, Damage: 5}, "hall")

	testutil.AssertEqual(t, "initial state", enc.State, StateEngaged)

	enc.ApplyStrike(20)
	testutil.AssertEqual(t, "health after strike", enc.EnemyHealth, 10)
	testutil.AssertEqual(t, "still engaged", enc.Active(), true)

	enc.ApplyStrike(25)
	testutil.AssertEqual(t, "health clamped", enc.EnemyHealth, 0)
	testutil.AssertEqual(t, "state", enc.State, StateEnemyDefeated)

	// Strikes after the kill change nothing.
	enc.ApplyStrike(10)
	testutil.AssertEqual(t, "health unchanged", enc.EnemyHealth, 0)
}

func TestEncounterEnemyTurn(t *testing.T) {
	enc := NewEncounter("goblin", &game.Enemy{Name: "Goblin", Health: 30, Damage: 10}, "hall")
	player := newTestPlayer()

	damage, struck := enc.EnemyTurn(player)
	testutil.AssertEqual(t, "struck", struck, true)
	testutil.AssertEqual(t, "damage", damage, 10)
	testutil.AssertEqual(t, "player health", player.Health, 90)
}

func TestEncounterDamageReductionConsumedOnce(t *testing.T) {
	enc := NewEncounter("goblin", &game.Enemy{Name: "Goblin", Health: 30, Damage: 10}, "hall")
	player := newTestPlayer()

	enc.SetDamageReduction(0.5)

	damage, _ := enc.EnemyTurn(player)
	testutil.AssertEqual(t, "reduced damage", damage, 5)

	damage, _ = enc.EnemyTurn(player)
	testutil.AssertEqual(t, "full damage next turn", damage, 10)
}

func TestEncounterPassiveEnemy(t *testing.T) {
	noStrike := false
	enc := NewEncounter("dummy", &game.Enemy{
		Name: "Training Dummy", Health: 30, Damage: 10, AutoAttack: &noStrike,
	}, "hall")
	player := newTestPlayer()

	damage, struck := enc.EnemyTurn(player)
	testutil.AssertEqual(t, "struck", struck, false)
	testutil.AssertEqual(t, "damage", damage, 0)
	testutil.AssertEqual(t, "player untouched", player.Health, 100)
}

func TestEncounterPlayerDefeat(t *testing.T) {
	enc := NewEncounter("ogre", &game.Enemy{Name: "Ogre", Health: 60, Damage: 40}, "hall")
	player := newTestPlayer()
	player.Health = 30

	enc.EnemyTurn(player)

	testutil.AssertEqual(t, "player health", player.Health, 0)
	testutil.AssertEqual(t, "state", enc.State, StatePlayerDefeated)
}

func TestEncounterFlee(t *testing.T) {
	enc := NewEncounter("goblin", &game.Enemy{Name: "Goblin", Health: 30, Damage: 5}, "hall")
	if err := enc.Flee(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "state", enc.State, StateFled)

	boss := NewEncounter("dragon", &game.Enemy{Name: "Dragon", Health: 200, Damage: 30, IsBoss: true}, "lair")
	if err := boss.Flee(); err == nil {
		t.Error("expected boss to block escape")
	}
	testutil.AssertEqual(t, "boss fight continues", boss.Active(), true)
}
