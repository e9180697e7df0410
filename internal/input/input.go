// Package input describes the keyboard state the simulation reads once per tick.
package input

// Key is a logical game key. The window adapter maps physical keys onto these.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	KeyStart
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyPause:
		return "pause"
	case KeyStart:
		return "start"
	}
	return "unknown"
}

// Source reports key state for the current tick. Held is level-triggered,
// JustPressed is edge-triggered and true only on the tick the key went down.
type Source interface {
	IsHeld(key Key) bool
	IsJustPressed(key Key) bool
}

// Snapshot is a fixed key state, used by tests and for replaying input.
type Snapshot struct {
	Held    map[Key]bool
	Pressed map[Key]bool
}

// Hold returns a snapshot with the given keys held and nothing just pressed.
func Hold(keys ...Key) Snapshot {
	s := Snapshot{Held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.Held[k] = true
	}
	return s
}

// Press returns a copy of s where key went down this tick (and is therefore held).
func (s Snapshot) Press(key Key) Snapshot {
	out := Snapshot{Held: make(map[Key]bool, len(s.Held)+1), Pressed: make(map[Key]bool, len(s.Pressed)+1)}
	for k, v := range s.Held {
		out.Held[k] = v
	}
	for k, v := range s.Pressed {
		out.Pressed[k] = v
	}
	out.Held[key] = true
	out.Pressed[key] = true
	return out
}

func (s Snapshot) IsHeld(key Key) bool        { return s.Held[key] }
func (s Snapshot) IsJustPressed(key Key) bool { return s.Pressed[key] }

// None is a snapshot with no keys down.
var None = Snapshot{}
