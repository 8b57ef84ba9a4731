package game

import (
	"testing"

	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

// mapStore is an in-memory Storer for tests.
type mapStore[T storage.ValidatingSpec] struct {
	records map[string]T
}

func newMapStore[T storage.ValidatingSpec](records map[string]T) *mapStore[T] {
	if records == nil {
		records = map[string]T{}
	}
	return &mapStore[T]{records: records}
}

func (s *mapStore[T]) Save(id string, v T) error {
	s.records[id] = v
	return nil
}

func (s *mapStore[T]) Get(id string) T {
	v, ok := s.records[id]
	if !ok {
		var zero T
		return zero
	}
	return v
}

func (s *mapStore[T]) GetAll() map[string]T {
	out := map[string]T{}
	for id, v := range s.records {
		out[id] = v
	}
	return out
}

// newTestDictionary builds a small world: a hall with a sword and a goblin,
// a locked vault behind it, and a hidden grotto off the hall.
func newTestDictionary() *Dictionary {
	return &Dictionary{
		Rooms: newMapStore(map[string]*Room{
			"hall": {
				Name:    "Great Hall",
				Exits:   []string{"vault", "grotto"},
				Items:   []string{"sword"},
				Enemies: []string{"goblin"},
				NPCs:    []string{"warden"},
			},
			"vault": {
				Name:        "Vault",
				Exits:       []string{"hall"},
				Locked:      true,
				KeyRequired: "brass_key",
			},
			"grotto": {
				Name:   "Grotto",
				Exits:  []string{"hall"},
				Hidden: true,
			},
		}),
		Items: newMapStore(map[string]*Item{
			"sword":     {Name: "Sword", TypeStr: "weapon", Damage: 10, Takeable: true},
			"brass_key": {Name: "Brass Key", TypeStr: "key", Unlocks: []string{"vault"}, Takeable: true},
		}),
		Enemies: newMapStore(map[string]*Enemy{
			"goblin": {Name: "Goblin", Health: 30, Damage: 5},
		}),
		NPCs: newMapStore(map[string]*NPC{
			"warden": {Name: "Warden", Dialogue: []string{"Stay alert."}},
		}),
		Attacks: newMapStore[*Attack](nil),
		Classes: newMapStore[*Class](nil),
	}
}

func TestNewWorldState_RegistersDeclaredOccupants(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	testutil.AssertEqual(t, "sword room", w.EntityRoom(EntityItem, "sword"), storage.Identifier("hall"))
	testutil.AssertEqual(t, "goblin room", w.EntityRoom(EntityEnemy, "goblin"), storage.Identifier("hall"))
	testutil.AssertEqual(t, "warden room", w.EntityRoom(EntityNPC, "warden"), storage.Identifier("hall"))
	testutil.AssertEqual(t, "sword spawn count", w.itemSpawnCounts["sword"], 1)
}

func TestNewWorldState_SkipsUnknownOccupants(t *testing.T) {
	dict := newTestDictionary()
	dict.Rooms.Save("hall", &Room{
		Name:  "Great Hall",
		Exits: []string{"vault"},
		Items: []string{"ghost_item"},
	})

	w := NewWorldState(dict)

	testutil.AssertEqual(t, "ghost item room", w.EntityRoom(EntityItem, "ghost_item"), storage.Identifier(""))
}

func TestNewWorldState_NormalizesOccupantIds(t *testing.T) {
	dict := newTestDictionary()
	dict.Rooms.Save("hall", &Room{
		Name:  "Great Hall",
		Exits: []string{"vault"},
		Items: []string{"sword.yml"},
	})

	w := NewWorldState(dict)

	testutil.AssertEqual(t, "sword room", w.EntityRoom(EntityItem, "sword"), storage.Identifier("hall"))
}

func TestCanMoveTo(t *testing.T) {
	tests := map[string]struct {
		from     storage.Identifier
		to       storage.Identifier
		expOk    bool
		expBlock MoveBlock
	}{
		"declared exit": {
			from: "vault", to: "hall",
			expOk: true, expBlock: MoveAllowed,
		},
		"undeclared exit": {
			from: "vault", to: "grotto",
			expOk: false, expBlock: MoveNoExit,
		},
		"unknown source room": {
			from: "nowhere", to: "hall",
			expOk: false, expBlock: MoveNoExit,
		},
		"locked destination": {
			from: "hall", to: "vault",
			expOk: false, expBlock: MoveLocked,
		},
		"hidden destination": {
			from: "hall", to: "grotto",
			expOk: false, expBlock: MoveHidden,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorldState(newTestDictionary())

			ok, block := w.CanMoveTo(tt.from, tt.to)

			testutil.AssertEqual(t, "allowed", ok, tt.expOk)
			testutil.AssertEqual(t, "block reason", block, tt.expBlock)
		})
	}
}

func TestUnlockRoom(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	testutil.AssertEqual(t, "required key", w.RequiredKey("vault"), "brass_key")

	if !w.UnlockRoom("vault") {
		t.Fatal("expected first unlock to succeed")
	}
	if w.UnlockRoom("vault") {
		t.Error("expected second unlock to report no change")
	}
	if w.UnlockRoom("nowhere") {
		t.Error("expected unlock of unknown room to report no change")
	}

	ok, block := w.CanMoveTo("hall", "vault")
	testutil.AssertEqual(t, "move after unlock", ok, true)
	testutil.AssertEqual(t, "block after unlock", block, MoveAllowed)
}

func TestDiscoverRoom(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	if !w.DiscoverRoom("grotto") {
		t.Fatal("expected first discovery to succeed")
	}
	if w.DiscoverRoom("grotto") {
		t.Error("expected second discovery to report no change")
	}

	ok, _ := w.CanMoveTo("hall", "grotto")
	testutil.AssertEqual(t, "move after discovery", ok, true)
}

func TestRemoveEntity(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	if !w.RemoveEntity(EntityItem, "sword") {
		t.Fatal("expected removal of placed item to succeed")
	}
	if w.RemoveEntity(EntityItem, "sword") {
		t.Error("expected second removal to fail")
	}

	// The room still declares the sword; the removal must hold.
	for _, id := range w.EntitiesInRoom(EntityItem, "hall") {
		if id == "sword" {
			t.Error("removed item reappeared in room")
		}
	}
}

func TestRemoveEnemyByName(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	if w.RemoveEnemyByName("hall", "Dragon") {
		t.Error("expected removal of absent enemy to fail")
	}
	if !w.RemoveEnemyByName("hall", "goblin") {
		t.Error("expected case-insensitive removal by name to succeed")
	}

	testutil.AssertEqual(t, "goblin room", w.EntityRoom(EntityEnemy, "goblin"), storage.Identifier(""))
}

func TestMoveEntity_ClearsRemoval(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	w.RemoveEntity(EntityItem, "sword")
	w.MoveEntity(EntityItem, "sword", "vault")

	testutil.AssertEqual(t, "sword room", w.EntityRoom(EntityItem, "sword"), storage.Identifier("vault"))

	found := false
	for _, id := range w.EntitiesInRoom(EntityItem, "vault") {
		if id == "sword" {
			found = true
		}
	}
	if !found {
		t.Error("expected dropped item in its new room")
	}
}

func TestEntitiesInRoom_DeclaredFallback(t *testing.T) {
	dict := newTestDictionary()

	// A snapshot with no placements at all. Declared occupants must still
	// show up unless recorded as removed.
	w, err := RestoreWorldState(dict, &WorldSnapshot{
		RoomStates: map[string]*RoomState{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := w.EntitiesInRoom(EntityItem, "hall")
	testutil.AssertEqual(t, "item count", len(items), 1)
	testutil.AssertEqual(t, "item id", items[0], storage.Identifier("sword"))
}

func TestVisitedRooms(t *testing.T) {
	w := NewWorldState(newTestDictionary())

	testutil.AssertEqual(t, "initial visited count", len(w.VisitedRooms()), 0)

	w.MarkVisited("hall")
	w.MarkVisited("vault")
	w.MarkVisited("hall")

	visited := w.VisitedRooms()
	testutil.AssertEqual(t, "visited count", len(visited), 2)
	testutil.AssertEqual(t, "first visited", visited[0], storage.Identifier("hall"))
	testutil.AssertEqual(t, "second visited", visited[1], storage.Identifier("vault"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	dict := newTestDictionary()
	w := NewWorldState(dict)

	w.RemoveEntity(EntityItem, "sword")
	w.RemoveEntity(EntityEnemy, "goblin")
	w.UnlockRoom("vault")
	w.MarkVisited("hall")
	w.MoveEntity(EntityItem, "brass_key", "vault")

	snap, err := w.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, err := RestoreWorldState(dict, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Removals survive even though the hall still declares its occupants.
	testutil.AssertEqual(t, "hall items", len(restored.EntitiesInRoom(EntityItem, "hall")), 0)
	testutil.AssertEqual(t, "hall enemies", len(restored.EntitiesInRoom(EntityEnemy, "hall")), 0)

	testutil.AssertEqual(t, "key room", restored.EntityRoom(EntityItem, "brass_key"), storage.Identifier("vault"))
	testutil.AssertEqual(t, "vault locked", restored.RoomState("vault").Locked, false)
	testutil.AssertEqual(t, "hall visited", restored.RoomState("hall").Visited, true)
	testutil.AssertEqual(t, "sword spawn count", restored.itemSpawnCounts["sword"], 1)
}
