package command

import (
	"fmt"
	"time"

	"github.com/hollowvale/go-adventure/internal/commands"
	"github.com/hollowvale/go-adventure/internal/dice"
	"github.com/hollowvale/go-adventure/internal/driver"
	"github.com/hollowvale/go-adventure/internal/messaging"
	"github.com/hollowvale/go-adventure/internal/save"
	"github.com/hollowvale/go-adventure/internal/session"
	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the catalogs
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}

	startRoom := storage.NormalizeId(cfg.Session.StartRoom)
	if dict.Rooms.Get(string(startRoom)) == nil {
		return nil, fmt.Errorf("start room %q does not exist", cfg.Session.StartRoom)
	}

	cmdStore, err := cfg.Storage.BuildCommandStore()
	if err != nil {
		return nil, fmt.Errorf("building command store: %w", err)
	}

	// Setup the message bus
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Compile the command set
	handler := commands.NewHandler(cmdStore, messaging.NewNatsPublisher(natsServer))
	if err := handler.CompileAll(); err != nil {
		return nil, fmt.Errorf("compiling commands: %w", err)
	}

	// Saved games
	saves, err := save.NewManager(cfg.Saves.Path)
	if err != nil {
		return nil, fmt.Errorf("creating save manager: %w", err)
	}
	autosaver := save.NewAutoSaver(saves)

	seed := cfg.Session.Seed
	if seed == 0 {
		seed, err = dice.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seeding roller: %w", err)
		}
	}

	sess := session.NewSession(dict, handler, natsServer, saves, autosaver, dice.NewRoller(seed), startRoom)

	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}

	gameDriver := driver.NewGameDriver(
		[]driver.Manager{autosaver},
		driver.WithTickLength(tick),
	)

	// Create a worker list
	return service.WorkerList{
		"nats":    natsServer,
		"driver":  gameDriver,
		"session": sess,
	}, nil
}
