package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/statemachine"
)

// Event triggers a status transition.
type Event string

const (
	EventCancel Event = "cancel"
	EventExpire Event = "expire"
)

func (e Event) String() string {
	return string(e)
}

// Name implements statemachine.Event.
func (e Event) Name() string {
	return string(e)
}

// lifecycle is the transition table. A missing entry rejects the event.
// EXPIRED accepts nothing; CANCELED still accepts expire.
var lifecycle = statemachine.MustNew(
	statemachine.WithTransition(StatusActive, StatusCanceled, EventCancel),
	statemachine.WithTransition(StatusActive, StatusExpired, EventExpire,
		statemachine.WithAction(stampExpiration),
	),
	statemachine.WithTransition(StatusCanceled, StatusExpired, EventExpire,
		statemachine.WithAction(stampExpiration),
	),
)

// transitionData is what actions receive: the copy being transitioned and the
// instant of the transition.
type transitionData struct {
	sub *Subscription
	now time.Time
}

func stampExpiration(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	d, ok := data.(*transitionData)
	if !ok {
		return fmt.Errorf("unexpected transition data %T", data)
	}
	d.sub.ExpirationDate = d.now
	return nil
}

// CanTransition reports whether event is allowed from status.
func CanTransition(from Status, event Event) bool {
	return lifecycle.CanFire(from, event)
}

// Transition applies event to sub and returns the resulting value.
// The argument is never modified. A rejected event returns *StateError and
// the unchanged input.
func Transition(ctx context.Context, sub Subscription, event Event, now time.Time) (Subscription, error) {
	if event != EventCancel && event != EventExpire {
		return sub, ErrUnknownEvent
	}

	next := sub
	to, err := lifecycle.Fire(ctx, sub.Status, event, &transitionData{sub: &next, now: now})
	if err != nil {
		var noTransition *statemachine.ErrNoTransitionAvailable
		if errors.As(err, &noTransition) {
			return sub, &StateError{ID: sub.ID, Status: sub.Status, Event: event, cause: err}
		}
		return sub, err
	}

	next.Status = to.(Status)
	return next, nil
}
