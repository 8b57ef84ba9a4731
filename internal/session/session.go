package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hollowvale/go-adventure/internal/combat"
	"github.com/hollowvale/go-adventure/internal/commands"
	"github.com/hollowvale/go-adventure/internal/dice"
	"github.com/hollowvale/go-adventure/internal/display"
	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/messaging"
	"github.com/hollowvale/go-adventure/internal/save"
	"github.com/hollowvale/go-adventure/internal/storage"
	"github.com/pixil98/go-log"
)

// Session runs one interactive game over a terminal: character setup, the
// command loop, and delivery of game output published on the player's
// subject.
type Session struct {
	dict      *game.Dictionary
	handler   *commands.Handler
	bus       *messaging.NatsServer
	saves     *save.Manager
	autosaver *save.AutoSaver
	roller    dice.Roller
	startRoom storage.Identifier

	in  io.Reader
	out io.Writer
}

type SessionOpt func(*Session)

// WithIO redirects the session's terminal, primarily for tests.
func WithIO(in io.Reader, out io.Writer) SessionOpt {
	return func(s *Session) {
		s.in = in
		s.out = out
	}
}

func NewSession(dict *game.Dictionary, handler *commands.Handler, bus *messaging.NatsServer, saves *save.Manager, autosaver *save.AutoSaver, roller dice.Roller, startRoom storage.Identifier, opts ...SessionOpt) *Session {
	s := &Session{
		dict:      dict,
		handler:   handler,
		bus:       bus,
		saves:     saves,
		autosaver: autosaver,
		roller:    roller,
		startRoom: startRoom,
		in:        os.Stdin,
		out:       os.Stdout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) Start(ctx context.Context) error {
	fmt.Fprintf(s.out, "%s\n", display.Heading("Adventure Awaits"))

	state, err := s.setup(ctx)
	if err != nil {
		return fmt.Errorf("setting up session: %w", err)
	}

	subject := messaging.PlayerSubject(state.Player.Id)
	unsub, err := s.bus.Subscribe(subject, s.deliver)
	if err != nil {
		return fmt.Errorf("subscribing to player subject: %w", err)
	}
	defer func() { unsub() }()

	s.autosaver.Attach(state.Player, state.World)
	defer s.autosaver.Attach(nil, nil)

	if err := s.handler.Exec(ctx, state, "look"); err != nil {
		return fmt.Errorf("describing starting room: %w", err)
	}

	lines := readLines(ctx, s.in)

	for !state.Quit {
		fmt.Fprintf(s.out, "> ")

		var line string
		var open bool
		select {
		case <-ctx.Done():
			s.saveOnExit(ctx, state)
			return nil
		case line, open = <-lines:
			if !open {
				s.saveOnExit(ctx, state)
				return nil
			}
		}

		err := s.handler.Exec(ctx, state, line)

		var userErr *commands.UserError
		switch {
		case errors.As(err, &userErr):
			fmt.Fprintf(s.out, "%s\n", display.Wrap(userErr.Error()))
		case err != nil:
			log.GetLogger(ctx).Warnf("command %q failed: %v", line, err)
			fmt.Fprintf(s.out, "Something went wrong.\n")
		}

		// Loading a save replaces the player and world behind the state.
		if next := messaging.PlayerSubject(state.Player.Id); next != subject {
			unsub()
			unsub, err = s.bus.Subscribe(next, s.deliver)
			if err != nil {
				return fmt.Errorf("resubscribing to player subject: %w", err)
			}
			subject = next
		}
		s.autosaver.Attach(state.Player, state.World)
	}

	s.saveOnExit(ctx, state)
	return nil
}

// setup collects the player, either restored from a save or freshly created,
// and returns the state the command loop runs against.
func (s *Session) setup(ctx context.Context) (*commands.State, error) {
	state := &commands.State{
		Dict:   s.dict,
		Engine: combat.NewEngine(s.dict, s.roller),
		Roller: s.roller,
		Saves:  s.saves,
	}

	rw := &stdio{in: s.in, out: s.out}

	infos, err := s.saves.List()
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}

	if len(infos) > 0 {
		resume, err := PromptYN(rw, "Resume a saved game? [y/n]: ")
		if err != nil {
			return nil, err
		}
		if resume {
			name, err := s.pickSave(rw, infos)
			if err != nil {
				return nil, err
			}
			player, world, err := s.saves.Load(name, s.dict)
			if err != nil {
				return nil, fmt.Errorf("loading save %q: %w", name, err)
			}
			state.Player = player
			state.World = world
			fmt.Fprintf(s.out, "Welcome back, %s.\n", player.Name)
			return state, nil
		}
	}

	player, err := s.newCharacter(rw)
	if err != nil {
		return nil, err
	}
	state.Player = player

	world := game.NewWorldState(s.dict)
	world.MarkVisited(player.CurrentRoom)
	placed := world.PlaceItems(player.Class, s.roller)
	log.GetLogger(ctx).Infof("scattered %d items for a new game", placed)
	state.World = world

	fmt.Fprintf(s.out, "\nWelcome, %s the %s. Your adventure begins.\n\n",
		player.Name, display.Capitalize(player.Class))
	return state, nil
}

func (s *Session) newCharacter(rw io.ReadWriter) (*game.Player, error) {
	name, err := Prompt(rw, "What is your name, adventurer? ", WithValidator(
		func(str string) (bool, string) {
			if strings.TrimSpace(str) == "" {
				return false, "A name is required.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	classId, err := NewSelector(s.dict.Classes.GetAll()).Prompt(rw, "\nChoose your class:")
	if err != nil {
		return nil, err
	}
	class := s.dict.Classes.Get(string(classId))

	player := game.NewPlayer(name, string(classId), class, s.startRoom)

	if class.StarterWeapon != "" {
		weaponId := string(storage.NormalizeId(class.StarterWeapon))
		if weapon := s.dict.Items.Get(weaponId); weapon != nil {
			player.Take(weaponId, weapon)
			if err := player.EquipWeapon(weaponId); err != nil {
				return nil, fmt.Errorf("equipping starter weapon: %w", err)
			}
		}
	}

	return player, nil
}

// saveSlot adapts a save listing to the selection prompt.
type saveSlot struct {
	info save.Info
}

func (s saveSlot) Selector() string {
	if s.info.PlayerName == "" {
		return s.info.Name
	}
	return fmt.Sprintf("%s (%s the %s)", s.info.Name, s.info.PlayerName, display.Capitalize(s.info.Class))
}

func (s *Session) pickSave(rw io.ReadWriter, infos []save.Info) (string, error) {
	slots := make(map[string]saveSlot, len(infos))
	for _, info := range infos {
		slots[info.Name] = saveSlot{info: info}
	}

	id, err := NewSelector(slots).Prompt(rw, "\nChoose a save:")
	if err != nil {
		return "", err
	}
	return string(id), nil
}

// saveOnExit writes a final autosave so an interrupted session can resume.
// Dead characters are not preserved.
func (s *Session) saveOnExit(ctx context.Context, state *commands.State) {
	if state.Player == nil || !state.Player.IsAlive() {
		return
	}
	if err := s.saves.Save(save.AutosaveName, state.Player, state.World); err != nil {
		log.GetLogger(ctx).Warnf("final autosave failed: %v", err)
	}
}

// deliver prints one published game message to the terminal.
func (s *Session) deliver(data []byte) {
	fmt.Fprintf(s.out, "%s\n", data)
}

// readLines feeds terminal input into a channel so the command loop can also
// watch for shutdown. The channel closes when input ends.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	scanner := bufio.NewScanner(in)

	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case lines <- scanner.Text():
			}
		}
	}()

	return lines
}

// stdio joins the session's reader and writer so the setup prompts can treat
// the terminal as one stream.
type stdio struct {
	in  io.Reader
	out io.Writer
}

func (s *stdio) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s *stdio) Write(p []byte) (int, error) { return s.out.Write(p) }
