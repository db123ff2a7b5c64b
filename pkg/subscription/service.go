package subscription

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/subscriptions/pkg/logger"
)

// Service manages the subscription lifecycle. Store errors are returned
// unchanged by every method.
type Service interface {
	// Upsert validates req and stores a new ACTIVE subscription.
	// An invalid request returns validator.ValidationErrors and leaves the store untouched.
	Upsert(ctx context.Context, req CreateRequest) (Subscription, error)

	// Cancel moves an ACTIVE subscription to CANCELED.
	Cancel(ctx context.Context, id int64) error

	// Expire moves a subscription to EXPIRED and stamps the expiration date with the current time.
	Expire(ctx context.Context, id int64) error

	Get(ctx context.Context, id int64) (Subscription, error)
	List(ctx context.Context) ([]Subscription, error)
	ListByUser(ctx context.Context, userID int64) ([]Subscription, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct {
	store     Store
	validator RequestValidator
	mapper    RequestMapper
	clock     Clock
	logger    *slog.Logger
}

// NewService creates a Service backed by store.
// Panics if store is nil to fail fast during initialization.
func NewService(store Store, opts ...ServiceOption) Service {
	if store == nil {
		panic("subscription: Store is required")
	}

	s := &service{
		store:     store,
		validator: NewCreateRequestValidator(),
		mapper:    NewCreateRequestMapper(),
		clock:     SystemClock{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Upsert(ctx context.Context, req CreateRequest) (Subscription, error) {
	if verrs := s.validator.Validate(req); len(verrs) > 0 {
		return Subscription{}, verrs
	}

	sub, err := s.mapper.Map(req)
	if err != nil {
		return Subscription{}, err
	}

	saved, err := s.store.Upsert(ctx, sub)
	if err != nil {
		return Subscription{}, err
	}

	s.logger.InfoContext(ctx, "subscription saved",
		logger.Component("subscription"),
		logger.SubscriptionID(saved.ID),
		logger.UserID(saved.UserID),
		slog.String("provider", saved.Provider.String()),
	)

	return saved, nil
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	return s.apply(ctx, id, EventCancel)
}

func (s *service) Expire(ctx context.Context, id int64) error {
	return s.apply(ctx, id, EventExpire)
}

// apply performs one read and, when the event is allowed, exactly one update.
func (s *service) apply(ctx context.Context, id int64, event Event) error {
	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	next, err := Transition(ctx, sub, event, s.clock.Now())
	if err != nil {
		s.logger.WarnContext(ctx, "subscription transition rejected",
			logger.Component("subscription"),
			logger.SubscriptionID(id),
			logger.Event(event.String()),
			slog.String("status", sub.Status.String()),
		)
		return err
	}

	if _, err := s.store.Update(ctx, next); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "subscription status changed",
		logger.Component("subscription"),
		logger.SubscriptionID(id),
		logger.Event(event.String()),
		slog.String("from", sub.Status.String()),
		slog.String("to", next.Status.String()),
	)

	return nil
}

func (s *service) Get(ctx context.Context, id int64) (Subscription, error) {
	return s.store.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Subscription, error) {
	return s.store.FindAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]Subscription, error) {
	return s.store.FindByUserID(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.InfoContext(ctx, "subscription deleted",
			logger.Component("subscription"),
			logger.SubscriptionID(id),
		)
	}
	return deleted, nil
}
