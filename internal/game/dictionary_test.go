package game

import (
	"testing"

	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestDictionaryCheck(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Dictionary)
		expErr string
	}{
		"clean catalogs": {
			mutate: func(d *Dictionary) {},
		},
		"dangling exit": {
			mutate: func(d *Dictionary) {
				d.Rooms.Save("hall", &Room{Name: "Great Hall", Exits: []string{"nowhere"}})
			},
			expErr: `exit "nowhere" does not exist`,
		},
		"missing starter weapon": {
			mutate: func(d *Dictionary) {
				d.Classes.Save("knight", &Class{
					Name: "Knight", BaseHealth: 100, BaseDamage: 10,
					StarterWeapon: "excalibur",
				})
			},
			expErr: `starter weapon "excalibur" does not exist`,
		},
		"missing base attack": {
			mutate: func(d *Dictionary) {
				d.Classes.Save("knight", &Class{
					Name: "Knight", BaseHealth: 100, BaseDamage: 10,
					BaseAttacks: []string{"shield_bash"},
				})
			},
			expErr: `base attack "shield_bash" does not exist`,
		},
		"key unlocks unknown room": {
			mutate: func(d *Dictionary) {
				d.Items.Save("rusty_key", &Item{
					Name: "Rusty Key", TypeStr: "key", Unlocks: []string{"oubliette"},
				})
			},
			expErr: `unlocks unknown room "oubliette"`,
		},
		"spell teaches unknown attack": {
			mutate: func(d *Dictionary) {
				d.Items.Save("tome", &Item{
					Name: "Tome", TypeStr: "spell",
					Teaches: storage.NewSmartIdentifier[*Attack]("meteor"),
				})
			},
			expErr: `"meteor" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dict := newTestDictionary()
			tt.mutate(dict)

			err := dict.Check()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestDictionaryCheck_ResolvesSpellReference(t *testing.T) {
	dict := newTestDictionary()
	dict.Attacks.Save("meteor", &Attack{Name: "Meteor", BonusDamage: 12})
	dict.Items.Save("tome", &Item{
		Name: "Tome", TypeStr: "spell",
		Teaches: storage.NewSmartIdentifier[*Attack]("meteor"),
	})

	if err := dict.Check(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "resolved attack", dict.Items.Get("tome").Teaches.Get().Name, "Meteor")
}
