// Package statemachine provides an immutable finite-state transition table.
//
// A Machine is built once from options and never changes afterwards. It does
// not track a current state: Fire takes the state to start from and returns
// the target, which makes one table usable for every entity of a kind, such
// as each stored subscription.
//
//	const (
//		Draft     = statemachine.StringState("draft")
//		Published = statemachine.StringState("published")
//		Publish   = statemachine.StringEvent("publish")
//	)
//
//	machine := statemachine.MustNew(
//		statemachine.WithTransition(Draft, Published, Publish,
//			statemachine.WithAction(notify),
//		),
//	)
//
//	next, err := machine.Fire(ctx, Draft, Publish, post)
//
// Actions run in registration order before Fire returns the new state. The
// data argument of Fire is handed to every action untouched, so actions can
// mutate the entity being transitioned.
//
// An undefined state/event pair yields *ErrNoTransitionAvailable, detectable
// with IsNoTransitionAvailableError.
package statemachine
