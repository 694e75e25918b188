// Package input maps discrete window events to simulation commands.
package input

import "fmt"

// EventKind distinguishes window events.
type EventKind uint8

const (
	EventKeyDown EventKind = iota
	EventQuit              // window close request
)

// Event is one discrete input event.
type Event struct {
	Kind EventKind
	Key  int32
}

// KeyDown builds a key press event.
func KeyDown(key int32) Event { return Event{Kind: EventKeyDown, Key: key} }

// QuitEvent builds a window close event.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// CommandKind tags a Command.
type CommandKind uint8

const (
	Quit CommandKind = iota
	TogglePause
	ToggleFocusMode
	SelectTarget
)

func (k CommandKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case TogglePause:
		return "toggle_pause"
	case ToggleFocusMode:
		return "toggle_focus"
	case SelectTarget:
		return "select_target"
	}
	return fmt.Sprintf("command(%d)", uint8(k))
}

// Command is the tagged command variant. Index is only meaningful for SelectTarget.
type Command struct {
	Kind  CommandKind
	Index int
}

// Select builds a SelectTarget command.
func Select(i int) Command { return Command{Kind: SelectTarget, Index: i} }

// Do builds an argument-less command.
func Do(k CommandKind) Command { return Command{Kind: k} }

func (c Command) String() string {
	if c.Kind == SelectTarget {
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	}
	return c.Kind.String()
}

// MaxTargets is the number of numbered selection keys.
const MaxTargets = 9

// Keymap binds key codes to commands. Codes are raylib key codes.
type Keymap struct {
	Quit       int32
	Pause      int32
	Focus      int32
	SelectBase int32 // key for target 0; targets 1..8 follow consecutively
}

// DefaultKeymap returns Escape / Space / F / 1..9.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit:       256,
		Pause:      32,
		Focus:      70,
		SelectBase: 49,
	}
}

// Command maps a single event. ok is false for unbound keys.
func (k Keymap) Command(e Event) (Command, bool) {
	if e.Kind == EventQuit {
		return Do(Quit), true
	}
	switch e.Key {
	case k.Quit:
		return Do(Quit), true
	case k.Pause:
		return Do(TogglePause), true
	case k.Focus:
		return Do(ToggleFocusMode), true
	}
	if idx := e.Key - k.SelectBase; idx >= 0 && idx < MaxTargets {
		return Select(int(idx)), true
	}
	return Command{}, false
}

// Commands maps events in arrival order, dropping unbound keys.
func (k Keymap) Commands(events []Event) []Command {
	cmds := make([]Command, 0, len(events))
	for _, e := range events {
		if c, ok := k.Command(e); ok {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
