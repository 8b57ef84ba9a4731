package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func newTestPlayer() *Player {
	return NewPlayer("Tester", "warrior", &Class{
		Name:       "Warrior",
		BaseHealth: 100,
		BaseDamage: 10,
	}, "hall")
}

func TestPlayerHeal(t *testing.T) {
	tests := map[string]struct {
		health    int
		amount    int
		expHealed int
		expHealth int
	}{
		"full heal": {
			health: 50, amount: 30,
			expHealed: 30, expHealth: 80,
		},
		"clamped at max": {
			health: 90, amount: 30,
			expHealed: 10, expHealth: 100,
		},
		"already at max": {
			health: 100, amount: 30,
			expHealed: 0, expHealth: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestPlayer()
			p.Health = tt.health

			healed := p.Heal(tt.amount)

			testutil.AssertEqual(t, "healed", healed, tt.expHealed)
			testutil.AssertEqual(t, "health", p.Health, tt.expHealth)
		})
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	p := newTestPlayer()

	p.TakeDamage(40)
	testutil.AssertEqual(t, "health after hit", p.Health, 60)
	testutil.AssertEqual(t, "alive", p.IsAlive(), true)

	p.TakeDamage(200)
	testutil.AssertEqual(t, "health clamped at zero", p.Health, 0)
	testutil.AssertEqual(t, "dead", p.IsAlive(), false)
}

func TestPlayerEquipWeapon(t *testing.T) {
	p := newTestPlayer()
	p.Take("sword", &Item{Name: "Sword", TypeStr: "weapon", Damage: 10})
	p.Take("axe", &Item{Name: "Axe", TypeStr: "weapon", Damage: 15})
	p.Take("bread", &Item{Name: "Bread", TypeStr: "consumable", Heal: 5})
	p.Take("wand", &Item{Name: "Wand", TypeStr: "weapon", Damage: 8, ClassRestriction: ClassList{"mage"}})

	if err := p.EquipWeapon("sword"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "damage with sword", p.TotalDamage, 20)

	// Swapping weapons replaces the bonus, never stacks it.
	if err := p.EquipWeapon("axe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "damage with axe", p.TotalDamage, 25)
	testutil.AssertEqual(t, "equipped weapon", p.EquippedWeapon, "axe")

	if err := p.EquipWeapon("bread"); err == nil {
		t.Error("expected error equipping a consumable")
	}
	if err := p.EquipWeapon("wand"); err == nil {
		t.Error("expected error equipping a class-restricted weapon")
	}
	if err := p.EquipWeapon("missing"); err == nil {
		t.Error("expected error equipping an absent item")
	}
	testutil.AssertEqual(t, "damage unchanged after failures", p.TotalDamage, 25)
}

func TestPlayerDrop(t *testing.T) {
	p := newTestPlayer()
	p.Take("sword", &Item{Name: "Sword", TypeStr: "weapon", Damage: 10})
	if err := p.EquipWeapon("sword"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dropped := p.Drop("sword")
	if dropped == nil {
		t.Fatal("expected dropped item")
	}

	testutil.AssertEqual(t, "equipped weapon cleared", p.EquippedWeapon, "")
	testutil.AssertEqual(t, "weapon bonus removed", p.TotalDamage, 10)
	testutil.AssertEqual(t, "inventory empty", p.Has("sword"), false)

	if p.Drop("sword") != nil {
		t.Error("expected nil dropping an absent item")
	}
}

func TestPlayerStatusEffects(t *testing.T) {
	p := newTestPlayer()

	p.AddStatusEffect("battle_fury", &StatusEffect{Name: "Battle Fury", Duration: 2, DamageBonus: 5})
	p.AddStatusEffect("blessing", &StatusEffect{Name: "Blessing", Duration: 1, DamageBonus: 3})
	testutil.AssertEqual(t, "damage with effects", p.CalculateDamage(), 18)

	// Re-applying replaces the old effect, durations never stack.
	p.AddStatusEffect("battle_fury", &StatusEffect{Name: "Battle Fury", Duration: 1, DamageBonus: 5})

	msgs := p.UpdateStatusEffects()
	testutil.AssertEqual(t, "expiry messages", len(msgs), 2)
	testutil.AssertEqual(t, "effects cleared", len(p.StatusEffects), 0)
	testutil.AssertEqual(t, "damage after expiry", p.CalculateDamage(), 10)
}

func TestPlayerPermanentBoosts(t *testing.T) {
	p := newTestPlayer()
	p.Health = 60

	p.IncreaseMaxHealth(20)
	testutil.AssertEqual(t, "max health", p.MaxHealth, 120)
	testutil.AssertEqual(t, "health raised too", p.Health, 80)
	testutil.AssertEqual(t, "health boost tracked", p.PermanentHealthBoost, 20)

	p.IncreaseDamage(5)
	testutil.AssertEqual(t, "total damage", p.TotalDamage, 15)
	testutil.AssertEqual(t, "damage boost tracked", p.PermanentDamageBoost, 5)
}

func TestPlayerLearnSpell(t *testing.T) {
	p := newTestPlayer()

	testutil.AssertEqual(t, "first learn", p.LearnSpell("fireball"), true)
	testutil.AssertEqual(t, "duplicate learn", p.LearnSpell("fireball"), false)
	testutil.AssertEqual(t, "spell count", len(p.Spells), 1)
}
