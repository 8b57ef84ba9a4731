package command

import (
	"fmt"
	"os"

	"github.com/hollowvale/go-adventure/internal/commands"
	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	/* Core Parts */
	Rooms    AssetConfig[*game.Room]        `json:"rooms"`
	Items    AssetConfig[*game.Item]        `json:"items"`
	Enemies  AssetConfig[*game.Enemy]       `json:"enemies"`
	NPCs     AssetConfig[*game.NPC]         `json:"npcs"`
	Attacks  AssetConfig[*game.Attack]      `json:"attacks"`
	Classes  AssetConfig[*game.Class]       `json:"classes"`
	Commands AssetConfig[*commands.Command] `json:"commands"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	enemies, err := c.Enemies.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating enemy store: %w", err)
	}
	npcs, err := c.NPCs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}
	attacks, err := c.Attacks.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating attack store: %w", err)
	}
	classes, err := c.Classes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating class store: %w", err)
	}

	dict := &game.Dictionary{
		Rooms:   rooms,
		Items:   items,
		Enemies: enemies,
		NPCs:    npcs,
		Attacks: attacks,
		Classes: classes,
	}

	if err := dict.Check(); err != nil {
		return nil, fmt.Errorf("checking references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) BuildCommandStore() (storage.Storer[*commands.Command], error) {
	return c.Commands.BuildFileStore()
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Enemies.Validate("enemies"))
	el.Add(c.NPCs.Validate("npcs"))
	el.Add(c.Attacks.Validate("attacks"))
	el.Add(c.Classes.Validate("classes"))
	el.Add(c.Commands.Validate("commands"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
