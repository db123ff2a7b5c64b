package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound     = errors.New("subscription not found")
	ErrInvalidSubscriptionState = errors.New("invalid subscription state")
	ErrInvalidProvider          = errors.New("invalid subscription provider")
	ErrInvalidStatus            = errors.New("invalid subscription status")
	ErrUnknownEvent             = errors.New("unknown subscription event")

	ErrCorruptRow         = errors.New("stored subscription cannot be decoded")
	ErrFailedToGenerateID = errors.New("failed to generate subscription id")
)

// StateError is returned when a requested event is not allowed from the
// subscription's current status. It matches ErrInvalidSubscriptionState
// through errors.Is and unwraps to the state machine's rejection.
type StateError struct {
	ID     int64
	Status Status
	Event  Event

	cause error
}

func (e *StateError) Error() string {
	switch {
	case e.Event == EventCancel:
		return fmt.Sprintf("Only active subscription %d can be canceled", e.ID)
	case e.Event == EventExpire && e.Status == StatusExpired:
		return fmt.Sprintf("Subscription %d has already expired", e.ID)
	default:
		return fmt.Sprintf("subscription %d: event %q is not allowed in status %q", e.ID, e.Event, e.Status)
	}
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidSubscriptionState
}

func (e *StateError) Unwrap() error {
	return e.cause
}

// IsStateError reports whether err is a rejected transition.
func IsStateError(err error) bool {
	var e *StateError
	return errors.As(err, &e)
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", ErrSubscriptionNotFound, id)
}
