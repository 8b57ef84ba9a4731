package commands

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Command defines one player verb loaded from command assets. The handler
// name selects a registered factory; the config carries message templates and
// knobs the factory understands.
type Command struct {
	Handler string   `json:"handler"`
	Aliases []string `json:"aliases,omitempty"`
	Usage   string   `json:"usage,omitempty"`
	Help    string   `json:"help,omitempty"`

	// Config is passed to the handler factory, may contain templates
	Config map[string]any `json:"config,omitempty"`

	// Combat marks verbs usable while a fight is running
	Combat bool `json:"combat,omitempty"`
}

func (c *Command) Validate() error {
	el := errors.NewErrorList()

	if c.Handler == "" {
		el.Add(fmt.Errorf("command handler not set"))
	}
	for i, alias := range c.Aliases {
		if alias == "" {
			el.Add(fmt.Errorf("alias %d is empty", i))
		}
	}

	return el.Err()
}
