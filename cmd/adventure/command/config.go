package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string        `json:"tick_interval"`
	Storage      StorageConfig `json:"storage"`
	Nats         NatsConfig    `json:"nats"`
	Saves        SavesConfig   `json:"saves"`
	Session      SessionConfig `json:"session"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < time.Second {
		el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Saves.Validate())
	el.Add(c.Session.Validate())

	return el.Err()
}

type SavesConfig struct {
	Path string `json:"path"`
}

func (c *SavesConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("saves: path is required"))
	}

	return el.Err()
}

type SessionConfig struct {
	StartRoom string `json:"start_room"`

	// Seed pins the random sequence for item placement and combat rolls.
	// Zero draws a fresh seed at startup.
	Seed uint64 `json:"seed,omitempty"`
}

func (c *SessionConfig) Validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("session: start_room is required"))
	}

	return el.Err()
}
