package viewer

import (
	"fmt"
	"sort"
	"strings"

	"glsnake/internal/morph"
)

// Command is a user action shared by every front end.
type Command int

const (
	CmdNone Command = iota
	CmdNext
	CmdPrev
	CmdRandom
	CmdJointLeft
	CmdJointRight
	CmdNudgeUp
	CmdNudgeDown
	CmdUndo
	CmdTogglePause
	CmdToggleAuto
	CmdToggleExplode
	CmdToggleWireframe
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:            "none",
	CmdNext:            "next model",
	CmdPrev:            "previous model",
	CmdRandom:          "random model",
	CmdJointLeft:       "select joint left",
	CmdJointRight:      "select joint right",
	CmdNudgeUp:         "turn joint +90",
	CmdNudgeDown:       "turn joint -90",
	CmdUndo:            "undo",
	CmdTogglePause:     "pause",
	CmdToggleAuto:      "auto cycle",
	CmdToggleExplode:   "explode",
	CmdToggleWireframe: "wireframe",
	CmdQuit:            "quit",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Keymap binds printable keys to commands. Front ends translate their own
// special keys (arrows, escape) before consulting it.
var Keymap = map[rune]Command{
	'n': CmdNext,
	'p': CmdPrev,
	'r': CmdRandom,
	'h': CmdJointLeft,
	'l': CmdJointRight,
	'k': CmdNudgeUp,
	'j': CmdNudgeDown,
	'u': CmdUndo,
	' ': CmdTogglePause,
	'a': CmdToggleAuto,
	'e': CmdToggleExplode,
	'w': CmdToggleWireframe,
	'q': CmdQuit,
}

// CommandForRune looks r up in Keymap, ignoring case.
func CommandForRune(r rune) Command {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Keymap[r]
}

// Keys returns the bound runes in ascending order.
func Keys() []rune {
	keys := make([]rune, 0, len(Keymap))
	for r := range Keymap {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Help lists the key bindings, one "key: action" pair per entry, sorted by key.
func Help() string {
	keys := Keys()
	parts := make([]string, 0, len(keys))
	for _, r := range keys {
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		parts = append(parts, name+": "+Keymap[r].String())
	}
	return strings.Join(parts, "  ")
}

// View holds presentation state that is not part of the morph.
type View struct {
	Explode   float64
	Wireframe bool
	Camera    Camera
}

func NewView(cfg Config) *View {
	v := &View{Wireframe: cfg.Wireframe, Camera: NewCamera()}
	if cfg.Explode {
		v.Explode = ExplodeStep
	}
	return v
}

// Apply performs cmd. It returns false once the user asked to quit.
func Apply(c *morph.Controller, v *View, cmd Command) bool {
	switch cmd {
	case CmdNext:
		c.Next()
	case CmdPrev:
		c.Prev()
	case CmdRandom:
		c.Random()
	case CmdJointLeft:
		c.SelectJoint(c.SelectedJoint() - 1)
	case CmdJointRight:
		c.SelectJoint(c.SelectedJoint() + 1)
	case CmdNudgeUp:
		c.NudgeSelected(90)
	case CmdNudgeDown:
		c.NudgeSelected(-90)
	case CmdUndo:
		c.Undo()
	case CmdTogglePause:
		c.SetPaused(!c.Paused())
	case CmdToggleAuto:
		c.SetAutoCycle(!c.AutoCycle())
	case CmdToggleExplode:
		if v.Explode > 0 {
			v.Explode = 0
		} else {
			v.Explode = ExplodeStep
		}
	case CmdToggleWireframe:
		v.Wireframe = !v.Wireframe
	case CmdQuit:
		return false
	}
	return true
}
