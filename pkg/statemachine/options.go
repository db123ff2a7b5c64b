package statemachine

import "fmt"

// Option registers transitions on a Machine under construction.
type Option func(*Machine) error

// TransitionOption configures one transition.
type TransitionOption func(*Transition)

// New builds a Machine from opts. Registering the same state and event
// twice is an error.
func New(opts ...Option) (*Machine, error) {
	m := &Machine{transitions: make(map[string]map[string]Transition)}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New for package-level tables; it panics on error.
func MustNew(opts ...Option) *Machine {
	m, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return m.add(t)
	}
}

// WithAction appends an action to the transition. Nil actions are ignored.
func WithAction(action Action) TransitionOption {
	return func(t *Transition) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}
