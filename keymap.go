package reflow

import "github.com/gdamore/tcell/v2"

// KeyMap is an ordered list of key bindings.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(*tcell.EventKey)
	Stop    bool // If true, prevent later bindings from firing for this key
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key     tcell.Key // Specific key (tcell.KeyEscape, etc.), or 0
	Rune    rune      // Specific rune, or 0
	AnyRune bool      // Match any printable character
}

// OnKey creates a broadcast binding for a specific key.
// Other bindings for the same key will also fire.
func OnKey(key tcell.Key, handler func(*tcell.EventKey)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key tcell.Key, handler func(*tcell.EventKey)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler, Stop: true}
}

// OnRune creates a broadcast binding for a specific printable character.
func OnRune(r rune, handler func(*tcell.EventKey)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop(r rune, handler func(*tcell.EventKey)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler, Stop: true}
}

// OnRunes creates a broadcast binding for all printable characters.
func OnRunes(handler func(*tcell.EventKey)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{AnyRune: true}, Handler: handler}
}

// Matches reports whether ev matches the pattern.
func (p KeyPattern) Matches(ev *tcell.EventKey) bool {
	isRune := ev.Key() == tcell.KeyRune
	switch {
	case p.AnyRune:
		return isRune
	case p.Rune != 0:
		return isRune && ev.Rune() == p.Rune
	default:
		return p.Key != 0 && ev.Key() == p.Key
	}
}

// Handle runs the handlers of matching bindings in order until one with
// Stop set. It reports whether any binding matched.
func (km KeyMap) Handle(ev *tcell.EventKey) bool {
	matched := false
	for _, b := range km {
		if !b.Pattern.Matches(ev) {
			continue
		}
		matched = true
		if b.Handler != nil {
			b.Handler(ev)
		}
		if b.Stop {
			break
		}
	}
	return matched
}
