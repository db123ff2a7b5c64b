package statemachine

import (
	"context"
	"fmt"
	"slices"
)

// State is a node of the machine, identified by Name.
type State interface {
	Name() string
}

// Event triggers a transition, identified by Name.
type Event interface {
	Name() string
}

// Action runs while a transition is applied. A non-nil error aborts it.
// data is whatever the caller passed to Fire.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition moves From to To when Event fires, running Actions in order.
type Transition struct {
	From    State
	To      State
	Event   Event
	Actions []Action
}

// Machine is an immutable transition table. It holds no current state:
// callers pass the state they start from, so one Machine serves any number
// of entities concurrently.
type Machine struct {
	transitions map[string]map[string]Transition
}

// Fire applies event from the given state and returns the target state.
// When no transition exists it returns *ErrNoTransitionAvailable; when an
// action fails it returns the wrapped error. In both cases from is returned.
func (m *Machine) Fire(ctx context.Context, from State, event Event, data any) (State, error) {
	if from == nil || event == nil {
		return from, ErrInvalidEvent
	}

	t, ok := m.transitions[from.Name()][event.Name()]
	if !ok {
		return from, &ErrNoTransitionAvailable{StateName: from.Name(), EventName: event.Name()}
	}

	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			return from, fmt.Errorf("action failed: %w", err)
		}
	}
	return t.To, nil
}

// CanFire reports whether event has a transition from the given state.
func (m *Machine) CanFire(from State, event Event) bool {
	if from == nil || event == nil {
		return false
	}
	_, ok := m.transitions[from.Name()][event.Name()]
	return ok
}

// Events returns the sorted names of the events accepted from the given state.
func (m *Machine) Events(from State) []string {
	if from == nil {
		return nil
	}
	names := make([]string, 0, len(m.transitions[from.Name()]))
	for name := range m.transitions[from.Name()] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (m *Machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string]Transition)
		m.transitions[t.From.Name()] = byEvent
	}
	if _, dup := byEvent[t.Event.Name()]; dup {
		return fmt.Errorf("%w: %s on %s", ErrDuplicateTransition, t.From.Name(), t.Event.Name())
	}
	byEvent[t.Event.Name()] = t
	return nil
}
