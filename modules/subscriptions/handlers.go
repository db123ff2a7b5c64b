package subscriptions

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/subscriptions/handler"
	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

type handlers struct {
	svc subscription.Service
}

func (h *handlers) create(ctx context.Context, req CreateRequest) handler.Response {
	sub, err := h.svc.Upsert(ctx, req.toDomain())
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(toResponse(sub), handler.WithJSONStatus(http.StatusCreated))
}

func (h *handlers) get(ctx context.Context, req idRequest) handler.Response {
	sub, err := h.svc.Get(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(toResponse(sub))
}

func (h *handlers) list(ctx context.Context, _ struct{}) handler.Response {
	subs, err := h.svc.List(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(toResponseList(subs), handler.WithJSONMeta(map[string]any{"total": len(subs)}))
}

func (h *handlers) listByUser(ctx context.Context, req userRequest) handler.Response {
	subs, err := h.svc.ListByUser(ctx, req.UserID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(toResponseList(subs), handler.WithJSONMeta(map[string]any{"total": len(subs)}))
}

func (h *handlers) cancel(ctx context.Context, req idRequest) handler.Response {
	return transition(ctx, req.ID, h.svc.Cancel)
}

func (h *handlers) expire(ctx context.Context, req idRequest) handler.Response {
	return transition(ctx, req.ID, h.svc.Expire)
}

func transition(ctx context.Context, id int64, apply func(context.Context, int64) error) handler.Response {
	if err := apply(ctx, id); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}

func (h *handlers) delete(ctx context.Context, req idRequest) handler.Response {
	deleted, err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}
	if !deleted {
		return handler.Error(subscription.ErrSubscriptionNotFound)
	}
	return handler.Empty()
}
