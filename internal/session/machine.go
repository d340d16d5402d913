// internal/session/machine.go
package session

import "errors"

// State is the wizard screen the session currently owns. Transitions are
// validated against the tables below; there is no path into StateStore
// without a selected theme and a completed enhancement, because that
// transition only exists inside Store.SelectTheme.
type State string

const (
	StateLanding     State = "landing"
	StateHome        State = "home"
	StateProcessing  State = "processing"
	StatePreview     State = "preview"
	StateThemeSelect State = "themes"
	StateFailed      State = "failed"
	StateStore       State = "store"
)

var ErrInvalidTransition = errors.New("transition not allowed from current state")

// transitions is the complete transition relation, including the guarded
// edges that only internal operations may take (into Processing, Preview,
// Failed and Store).
var transitions = map[State][]State{
	StateLanding:     {StateHome},
	StateHome:        {StateLanding, StateProcessing},
	StateProcessing:  {StatePreview, StateFailed, StateHome},
	StatePreview:     {StateThemeSelect, StateHome},
	StateThemeSelect: {StateStore, StateHome},
	StateFailed:      {StateProcessing, StateHome},
	StateStore:       {StateThemeSelect, StateHome},
}

// navigable lists the transitions a client may request directly. Guarded
// states are reachable only through their owning operations: Processing
// and Failed via generation, Preview via generation success, Store via
// theme selection.
var navigable = map[State][]State{
	StateLanding:     {StateHome},
	StateHome:        {StateLanding},
	StatePreview:     {StateThemeSelect, StateHome},
	StateThemeSelect: {StateHome},
	StateFailed:      {StateHome},
	StateStore:       {StateThemeSelect, StateHome},
}

func ValidState(s State) bool {
	_, ok := transitions[s]
	return ok
}

func canTransition(table map[State][]State, from, to State) bool {
	for _, t := range table[from] {
		if t == to {
			return true
		}
	}
	return false
}

// CanTransition reports whether the full transition relation allows
// from → to.
func CanTransition(from, to State) bool {
	return canTransition(transitions, from, to)
}

// CanNavigate reports whether a client may request from → to directly.
func CanNavigate(from, to State) bool {
	return canTransition(navigable, from, to)
}
