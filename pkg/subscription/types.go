package subscription

import (
	"slices"
	"strings"
)

// Status represents the current state of a subscription.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusCanceled Status = "CANCELED"
	StatusExpired  Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

// Name implements statemachine.State.
func (s Status) Name() string {
	return string(s)
}

// IsTerminal reports whether no event is accepted in this status.
func (s Status) IsTerminal() bool {
	return len(lifecycle.Events(s)) == 0
}

// Provider is the payment or service channel the subscription was bought through.
type Provider string

const (
	ProviderGoogle Provider = "GOOGLE"
	ProviderApple  Provider = "APPLE"
)

var providers = []Provider{ProviderGoogle, ProviderApple}

// Providers returns every known provider in declaration order.
func Providers() []Provider {
	return slices.Clone(providers)
}

// ProviderNames returns the textual form of every known provider.
func ProviderNames() []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, string(p))
	}
	return names
}

// ParseProvider converts raw text into a Provider.
// Matching is exact: "google" is not GOOGLE.
func ParseProvider(text string) (Provider, error) {
	p := Provider(text)
	if text == "" || !slices.Contains(providers, p) {
		return "", ErrInvalidProvider
	}
	return p, nil
}

func (p Provider) String() string {
	return string(p)
}

// parseStatus is used by stores to reject unknown values read back from storage.
func parseStatus(text string) (Status, error) {
	switch s := Status(strings.TrimSpace(text)); s {
	case StatusActive, StatusCanceled, StatusExpired:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
