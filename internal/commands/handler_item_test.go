package commands

import (
	"testing"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestTakeAndDropRoundTrip(t *testing.T) {
	ts := newTestSession(t)

	ts.mustExec(t, "take sword")
	testutil.AssertEqual(t, "carrying sword", ts.state.Player.Has("sword"), true)

	// The room stops listing it even though the catalog still declares it.
	if _, item := findRoomItem(ts.state, "sword"); item != nil {
		t.Error("taken item still visible in the room")
	}

	ts.mustExec(t, "drop sword")
	testutil.AssertEqual(t, "no longer carrying", ts.state.Player.Has("sword"), false)

	if _, item := findRoomItem(ts.state, "sword"); item == nil {
		t.Error("dropped item not visible in the room")
	}
}

func TestTakeRejectsUnknownAndFixed(t *testing.T) {
	ts := newTestSession(t)

	if err := ts.exec(t, "take crown"); !isUserError(err) {
		t.Errorf("expected user error for absent item, got %v", err)
	}

	ts.state.Dict.Items.Save("anvil", &game.Item{Name: "Anvil", TypeStr: "other"})
	ts.state.World.MoveEntity(game.EntityItem, "anvil", "hall")
	if err := ts.exec(t, "take anvil"); !isUserError(err) {
		t.Errorf("expected user error for fixed item, got %v", err)
	}
}

func TestEquipFromInventory(t *testing.T) {
	ts := newTestSession(t)

	ts.mustExec(t, "take sword")
	ts.mustExec(t, "equip sword")

	testutil.AssertEqual(t, "equipped", ts.state.Player.EquippedWeapon, "sword")
	testutil.AssertEqual(t, "damage", ts.state.Player.TotalDamage, 20)

	if err := ts.exec(t, "equip potion"); !isUserError(err) {
		t.Errorf("expected user error equipping a potion, got %v", err)
	}
}

func TestUsePotionReportsActualHealing(t *testing.T) {
	ts := newTestSession(t)
	ts.state.Player.Health = 95

	ts.mustExec(t, "take potion")
	ts.mustExec(t, "use potion")

	// The bottle says 20; only 5 fit.
	if !ts.pub.received(ts.state.Player.Id, "recover 5 health") {
		t.Errorf("expected actual healing in output, got %v", ts.pub.messagesTo(ts.state.Player.Id))
	}
	testutil.AssertEqual(t, "health", ts.state.Player.Health, 100)
	testutil.AssertEqual(t, "potion consumed", ts.state.Player.Has("potion"), false)
}

func TestUseElixirGrantsTimedEffect(t *testing.T) {
	ts := newTestSession(t)
	ts.state.Dict.Items.Save("elixir", &game.Item{
		Name: "Elixir", TypeStr: "consumable", Takeable: true, Usable: true, ConsumedOnUse: true,
		Effect: &game.StatusEffect{Name: "Battle Focus", Duration: 2, DamageBonus: 3},
	})
	ts.state.Player.Take("elixir", ts.state.Dict.Items.Get("elixir"))

	ts.mustExec(t, "use elixir")

	eff := ts.state.Player.StatusEffects[game.EffectId("Battle Focus")]
	if eff == nil {
		t.Fatal("expected the effect on the player")
	}
	testutil.AssertEqual(t, "effect duration", eff.Duration, 2)
	testutil.AssertEqual(t, "damage with effect", ts.state.Player.CalculateDamage(), 13)

	// Ticking the player's copy must not touch the catalog.
	eff.Duration--
	testutil.AssertEqual(t, "catalog untouched",
		ts.state.Dict.Items.Get("elixir").Effect.Duration, 2)
}

func TestUseKeyUnlocksVault(t *testing.T) {
	ts := newTestSession(t)
	ts.state.Player.Take("brass_key", ts.state.Dict.Items.Get("brass_key"))

	ts.mustExec(t, "use brass key")

	testutil.AssertEqual(t, "vault unlocked", ts.state.World.RoomState("vault").Locked, false)

	// The key opens nothing twice.
	if err := ts.exec(t, "use brass key"); !isUserError(err) {
		t.Errorf("expected user error on second use, got %v", err)
	}
}

func TestUseSpellTomeRequiresCaster(t *testing.T) {
	ts := newTestSession(t)
	ts.mustExec(t, "take tome")

	// A warrior cannot learn from it.
	if err := ts.exec(t, "use tome"); !isUserError(err) {
		t.Fatalf("expected user error for non-caster, got %v", err)
	}
	testutil.AssertEqual(t, "tome kept", ts.state.Player.Has("tome"), true)

	ts.state.Player.Class = "mage"
	ts.mustExec(t, "use tome")

	testutil.AssertEqual(t, "spell learned", len(ts.state.Player.Spells), 1)
	testutil.AssertEqual(t, "tome consumed", ts.state.Player.Has("tome"), false)
}

func TestTalkGrantsRewardOnce(t *testing.T) {
	ts := newTestSession(t)

	ts.mustExec(t, "talk warden")
	if !ts.pub.received(ts.state.Player.Id, "Stay alert.") {
		t.Error("expected dialogue output")
	}
	testutil.AssertEqual(t, "reward granted", ts.state.Player.Has("brass_key"), true)

	before := len(ts.pub.messagesTo(ts.state.Player.Id))
	ts.mustExec(t, "talk warden")
	after := ts.pub.messagesTo(ts.state.Player.Id)[before:]

	for _, msg := range after {
		if msg == "Warden gives you the Brass Key." {
			t.Error("reward granted twice")
		}
	}
}
