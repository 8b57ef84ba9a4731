package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

const fileVersion = 1

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// fileWire is the on-disk form. Player is kept raw on load so a listing can
// peek at a few fields without the full decode.
type fileWire struct {
	Version uint                `json:"version"`
	SavedAt time.Time           `json:"saved_at"`
	Player  json.RawMessage     `json:"player"`
	World   *game.WorldSnapshot `json:"world"`
}

// Info summarizes one save for listings.
type Info struct {
	Name       string
	SavedAt    time.Time
	PlayerName string
	Class      string
	Room       string
}

// Manager reads and writes saved games under a single directory, one JSON
// file per save name.
type Manager struct {
	dir string
}

func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Save writes the player and world under the given name, replacing any
// existing save of that name.
func (m *Manager) Save(name string, player *game.Player, world *game.WorldState) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("save name may only contain letters, digits, '-' and '_'")
	}

	snap, err := world.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshotting world: %w", err)
	}

	playerData, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("marshalling player: %w", err)
	}

	data, err := json.MarshalIndent(&fileWire{
		Version: fileVersion,
		SavedAt: time.Now().UTC(),
		Player:  playerData,
		World:   snap,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling save: %w", err)
	}

	return storage.AtomicWrite(m.path(name), data, 0644)
}

// Load reads a save back into a player and a restored world state.
func (m *Manager) Load(name string, dict *game.Dictionary) (*game.Player, *game.WorldState, error) {
	wire, err := m.read(name)
	if err != nil {
		return nil, nil, err
	}

	player := &game.Player{}
	if err := json.Unmarshal(wire.Player, player); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling player: %w", err)
	}

	world, err := game.RestoreWorldState(dict, wire.World)
	if err != nil {
		return nil, nil, fmt.Errorf("restoring world: %w", err)
	}

	return player, world, nil
}

// List returns every save in the directory, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("reading save directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".json")]

		wire, err := m.read(name)
		if err != nil {
			// A corrupt save must not hide the rest of the list.
			infos = append(infos, Info{Name: name})
			continue
		}

		info := Info{Name: name, SavedAt: wire.SavedAt}
		var peek struct {
			Name  string `json:"name"`
			Class string `json:"player_class"`
			Room  string `json:"current_room"`
		}
		if err := json.Unmarshal(wire.Player, &peek); err == nil {
			info.PlayerName = peek.Name
			info.Class = peek.Class
			info.Room = peek.Room
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].SavedAt.After(infos[j].SavedAt) })
	return infos, nil
}

// Delete removes a save by name.
func (m *Manager) Delete(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("save name may only contain letters, digits, '-' and '_'")
	}
	if err := os.Remove(m.path(name)); err != nil {
		return fmt.Errorf("deleting save: %w", err)
	}
	return nil
}

// Exists reports whether a save of the given name is on disk.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.path(name))
	return err == nil
}

func (m *Manager) read(name string) (*fileWire, error) {
	data, err := os.ReadFile(m.path(name))
	if err != nil {
		return nil, fmt.Errorf("reading save: %w", err)
	}

	wire := &fileWire{}
	if err := json.Unmarshal(data, wire); err != nil {
		return nil, fmt.Errorf("unmarshalling save: %w", err)
	}
	return wire, nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+".json")
}
