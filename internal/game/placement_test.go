package game

import (
	"testing"

	"github.com/hollowvale/go-adventure/internal/dice"
	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func newPlacementDictionary() *Dictionary {
	return &Dictionary{
		Rooms: newMapStore(map[string]*Room{
			"meadow": {Name: "Meadow", Exits: []string{"cave"}},
			"cave":   {Name: "Cave", Exits: []string{"meadow", "crypt"}},
			"crypt":  {Name: "Crypt", Exits: []string{"cave"}, Locked: true},
		}),
		Items: newMapStore(map[string]*Item{
			"herb":   {Name: "Herb", TypeStr: "consumable", Heal: 5, Takeable: true, Rarity: RarityCommon},
			"potion": {Name: "Potion", TypeStr: "consumable", Heal: 20, Takeable: true, Rarity: RarityUncommon},
			"relic":  {Name: "Relic", TypeStr: "lore", Takeable: true, Rarity: RarityLegendary},
			"staff": {
				Name: "Staff", TypeStr: "weapon", Damage: 12, Takeable: true,
				Rarity: RarityRare, ClassRestriction: ClassList{"mage"},
			},
			"crown": {
				Name: "Crown", TypeStr: "lore", Takeable: true,
				Rarity: RarityEpic, AllowedRooms: []string{"cave"},
			},
		}),
		Enemies: newMapStore[*Enemy](nil),
		NPCs:    newMapStore[*NPC](nil),
		Attacks: newMapStore[*Attack](nil),
		Classes: newMapStore[*Class](nil),
	}
}

func TestPlaceItems_Deterministic(t *testing.T) {
	placements := func() map[storage.Identifier]storage.Identifier {
		w := NewWorldState(newPlacementDictionary())
		w.PlaceItems("warrior", dice.NewRoller(7))

		out := map[storage.Identifier]storage.Identifier{}
		for id, loc := range w.itemLocations {
			out[id] = loc
		}
		return out
	}

	first := placements()
	second := placements()

	testutil.AssertEqual(t, "placement count", len(first), len(second))
	for id, loc := range first {
		testutil.AssertEqual(t, "location of "+string(id), second[id], loc)
	}
}

func TestPlaceItems_RespectsRestrictions(t *testing.T) {
	w := NewWorldState(newPlacementDictionary())
	placed := w.PlaceItems("warrior", dice.NewRoller(7))

	// Four items are eligible for a warrior; the pool caps the run below
	// the two-per-room target.
	testutil.AssertEqual(t, "placed count", placed, 4)

	if w.EntityRoom(EntityItem, "staff") != "" {
		t.Error("class-restricted item placed for the wrong class")
	}

	for id, loc := range w.itemLocations {
		if loc == "crypt" {
			t.Errorf("item %q placed in a locked room", id)
		}
	}

	if loc := w.EntityRoom(EntityItem, "crown"); loc != "cave" {
		t.Errorf("restricted item placed in %q, expected its allowed room", loc)
	}
}

func TestPlaceItems_SpawnCap(t *testing.T) {
	dict := newPlacementDictionary()
	two := 2
	dict.Items.Save("herb", &Item{
		Name: "Herb", TypeStr: "consumable", Heal: 5, Takeable: true,
		Rarity: RarityCommon, MaxSpawn: &two,
	})

	w := NewWorldState(dict)
	roller := dice.NewRoller(7)

	w.PlaceItems("warrior", roller)
	testutil.AssertEqual(t, "herb spawn count", w.itemSpawnCounts["herb"], 1)

	// Taking the herb and rescattering may spawn it once more, then never
	// again.
	w.RemoveEntity(EntityItem, "herb")
	w.PlaceItems("warrior", roller)
	testutil.AssertEqual(t, "herb spawn count after respawn", w.itemSpawnCounts["herb"], 2)

	w.RemoveEntity(EntityItem, "herb")
	w.PlaceItems("warrior", roller)
	testutil.AssertEqual(t, "herb spawn count at cap", w.itemSpawnCounts["herb"], 2)
	testutil.AssertEqual(t, "herb absent", w.EntityRoom(EntityItem, "herb"), storage.Identifier(""))
}
