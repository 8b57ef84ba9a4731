package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hollowvale/go-adventure/internal/display"
	"github.com/hollowvale/go-adventure/internal/messaging"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, s *State, args []string) error

// HandlerFactory creates CommandFuncs from command configurations.
// Implementations should expose their expected config structure.
type HandlerFactory interface {
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]any) error
	// Create creates a CommandFunc from the validated config.
	Create(config map[string]any, pub Publisher) (CommandFunc, error)
}

// Publisher provides the ability to publish messages to subjects.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	name    string
	cmd     *Command
	cmdFunc CommandFunc
}

type Handler struct {
	store     storage.Storer[*Command]
	factories map[string]HandlerFactory
	compiled  map[string]*compiledCommand
	names     []string
	publisher Publisher
}

// NewHandler builds a command handler over the given command store. Commands
// missing from the store fall back to the built-in defaults, so an empty
// store still yields a playable verb set.
func NewHandler(store storage.Storer[*Command], publisher Publisher) *Handler {
	h := &Handler{
		store:     store,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[string]*compiledCommand),
		publisher: publisher,
	}

	h.RegisterFactory("look", &LookHandlerFactory{})
	h.RegisterFactory("search", &SearchHandlerFactory{})
	h.RegisterFactory("move", &MoveHandlerFactory{})
	h.RegisterFactory("take", &TakeHandlerFactory{})
	h.RegisterFactory("drop", &DropHandlerFactory{})
	h.RegisterFactory("inventory", &InventoryHandlerFactory{})
	h.RegisterFactory("equip", &EquipHandlerFactory{})
	h.RegisterFactory("use", &UseHandlerFactory{})
	h.RegisterFactory("talk", &TalkHandlerFactory{})
	h.RegisterFactory("attack", &AttackHandlerFactory{})
	h.RegisterFactory("flee", &FleeHandlerFactory{})
	h.RegisterFactory("map", &MapHandlerFactory{})
	h.RegisterFactory("stats", &StatsHandlerFactory{})
	h.RegisterFactory("save", &SaveHandlerFactory{})
	h.RegisterFactory("load", &LoadHandlerFactory{})
	h.RegisterFactory("saves", &SavesHandlerFactory{})
	h.RegisterFactory("help", &HelpHandlerFactory{handler: h})
	h.RegisterFactory("quit", &QuitHandlerFactory{})

	return h
}

// RegisterFactory registers a handler factory by name.
// The name must match the "handler" field in command definitions.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles every command from the store, then fills in defaults
// for verbs the store does not define. Call after all factories are
// registered.
func (h *Handler) CompileAll() error {
	for id, cmd := range h.store.GetAll() {
		if err := h.compile(id, cmd); err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}

	for name, cmd := range defaultCommands {
		if _, ok := h.compiled[name]; ok {
			continue
		}
		if err := h.compile(name, cmd); err != nil {
			return fmt.Errorf("compiling default command %q: %w", name, err)
		}
	}

	sort.Strings(h.names)
	return nil
}

func (h *Handler) compile(name string, cmd *Command) error {
	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create(cmd.Config, h.publisher)
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	compiled := &compiledCommand{
		name:    name,
		cmd:     cmd,
		cmdFunc: cmdFunc,
	}

	h.compiled[strings.ToLower(name)] = compiled
	h.names = append(h.names, strings.ToLower(name))
	for _, alias := range cmd.Aliases {
		h.compiled[strings.ToLower(alias)] = compiled
	}
	return nil
}

// Exec parses one line of player input and runs the matching command.
// Unknown verbs and misuse come back as UserError; anything else is a system
// failure.
func (h *Handler) Exec(ctx context.Context, s *State, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	verb := strings.ToLower(fields[0])
	compiled, ok := h.compiled[verb]
	if !ok {
		return NewUserError(fmt.Sprintf("Unknown command: %s. Try 'help'.", verb))
	}

	if s.InCombat() && !compiled.cmd.Combat {
		return NewUserError(fmt.Sprintf("You can't do that while %s has you cornered!", s.Encounter.EnemyName))
	}

	return compiled.cmdFunc(ctx, s, fields[1:])
}

// Commands returns usage and help for every primary verb, sorted.
func (h *Handler) Commands() []*Command {
	out := make([]*Command, 0, len(h.names))
	for _, name := range h.names {
		out = append(out, h.compiled[name].cmd)
	}
	return out
}

// send wraps and delivers one message to the player's subject.
func send(pub Publisher, playerId, msg string) error {
	return pub.Publish(messaging.PlayerSubject(playerId), []byte(display.Wrap(msg)))
}
