package lookup

import (
	"strings"

	"github.com/abhisek/termcommander/internal/profile"
)

// Egg is a hidden reward unlocked by learning a particular command.
type Egg struct {
	Command string
	Badge   string
	XP      int
	Art     string
}

var eggs = map[profile.OS][]Egg{
	profile.Linux: {
		{Command: "cowsay", Badge: "Easter Egg Hunter", XP: 15, Art: cowArt},
		{Command: "sl", Badge: "Train Conductor", XP: 15, Art: trainArt},
	},
	profile.Windows: {
		{Command: "tree", Badge: "Tree Hugger", XP: 15, Art: treeArt},
		{Command: "cls", Badge: "Clear Thinker", XP: 15, Art: clsArt},
	},
	profile.Mac: {
		{Command: "say", Badge: "Voice Activated", XP: 15, Art: sayArt},
		{Command: "caffeinate", Badge: "Caffeinated Coder", XP: 20, Art: coffeeArt},
	},
}

// FindEgg returns the egg hidden behind name on os.
func FindEgg(os profile.OS, name string) (Egg, bool) {
	name = strings.TrimSpace(name)
	for _, e := range eggs[os] {
		if e.Command == name {
			return e, true
		}
	}
	return Egg{}, false
}

// HintCommand is the command the welcome banner nudges the learner toward.
func HintCommand(os profile.OS) string {
	switch os {
	case profile.Windows:
		return "tree"
	case profile.Mac:
		return "say"
	default:
		return "cowsay"
	}
}

const cowArt = `
 ___________________________________________
< Moo-velous job finding this Easter egg! >
 -------------------------------------------
        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||
`

const trainArt = `
                        ____
                       /    \
 _____________________/______\___________________________
|                                                        |
|  ______________________________________________________|__
| |                                                         |
| |                                                         |
|_|_________________________________________________________|
  |___|___|___|___|___|___|___|___|___|___|___|___|___|___|

All aboard the Terminal Commander Express!
`

const treeArt = `
          /\
         /  \
        /    \
       /      \
      /        \
     /          \
    /            \
   /              \
  /                \
 /                  \
/____________________\
        ||||
        ||||
        ||||

You've discovered the Terminal Commander tree!
`

const clsArt = `
╔═══════════════════════════════════════════════╗
║                                               ║
║   Even when the screen is clear,              ║
║   knowledge remains!                          ║
║                                               ║
║   - Terminal Commander                        ║
║                                               ║
╚═══════════════════════════════════════════════╝
`

const sayArt = `
╔═══════════════════════════════════════════════╗
║                                               ║
║   🔊 If your Mac could talk, it would say:    ║
║   "You're doing great with Terminal           ║
║    Commander! Keep learning!"                 ║
║                                               ║
╚═══════════════════════════════════════════════╝
`

const coffeeArt = `
☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕

Terminal Commander has been caffeinated!
Your learning powers are now enhanced for this session!

☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕ ☕
`
