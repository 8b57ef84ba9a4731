package commands

// defaultCommands is the built-in verb set, used for any command the asset
// store does not define or override.
var defaultCommands = map[string]*Command{
	"look": {
		Handler: "look",
		Aliases: []string{"l", "ls"},
		Usage:   "look",
		Help:    "Describe the room you are in.",
	},
	"search": {
		Handler: "search",
		Usage:   "search",
		Help:    "Examine the room closely; may reveal hidden passages.",
	},
	"go": {
		Handler: "move",
		Aliases: []string{"move", "walk", "cd"},
		Usage:   "go <room>",
		Help:    "Travel through an exit to another room.",
	},
	"take": {
		Handler: "take",
		Aliases: []string{"get", "pick"},
		Usage:   "take <item>",
		Help:    "Pick up an item from the room.",
	},
	"drop": {
		Handler: "drop",
		Usage:   "drop <item>",
		Help:    "Leave an item in the room.",
	},
	"inventory": {
		Handler: "inventory",
		Aliases: []string{"i", "inv"},
		Usage:   "inventory",
		Help:    "List what you are carrying.",
	},
	"equip": {
		Handler: "equip",
		Aliases: []string{"wield"},
		Usage:   "equip <weapon>",
		Help:    "Wield a weapon from your inventory.",
	},
	"use": {
		Handler: "use",
		Usage:   "use <item>",
		Combat:  true,
		Help:    "Use an item: drink a potion, turn a key, study a tome.",
	},
	"talk": {
		Handler: "talk",
		Usage:   "talk <name>",
		Help:    "Talk to someone in the room.",
	},
	"attack": {
		Handler: "attack",
		Aliases: []string{"fight", "cast"},
		Usage:   "attack <enemy|attack name>",
		Combat:  true,
		Help:    "Start a fight, or swing a specific attack mid-fight.",
	},
	"flee": {
		Handler: "flee",
		Aliases: []string{"run"},
		Usage:   "flee",
		Combat:  true,
		Help:    "Escape from the current fight. Bosses block the way.",
	},
	"map": {
		Handler: "map",
		Usage:   "map",
		Help:    "Show the rooms you have visited.",
	},
	"stats": {
		Handler: "stats",
		Aliases: []string{"score", "status"},
		Usage:   "stats",
		Combat:  true,
		Help:    "Show your health, damage, and active effects.",
	},
	"save": {
		Handler: "save",
		Usage:   "save [name]",
		Help:    "Save the game. Defaults to the 'quicksave' slot.",
	},
	"load": {
		Handler: "load",
		Usage:   "load <name>",
		Help:    "Load a saved game, replacing the current one.",
	},
	"saves": {
		Handler: "saves",
		Usage:   "saves",
		Help:    "List saved games.",
	},
	"help": {
		Handler: "help",
		Aliases: []string{"?"},
		Usage:   "help",
		Combat:  true,
		Help:    "Show this list.",
	},
	"quit": {
		Handler: "quit",
		Aliases: []string{"exit"},
		Usage:   "quit",
		Help:    "Leave the game.",
	},
}
