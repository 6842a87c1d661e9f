package internal

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	EventOrderDeclined = "ORDER_DECLINED"
	EventOrderApproved = "ORDER_APPROVED"
)

// Event is one entry of the scoring service's notification push: an analyst
// resolved an order that was left under review.
type Event struct {
	Name             string `json:"name"`
	OrderIncrementID string `json:"orderIncrementId"`
	TransactionID    string `json:"transactionId"`
}

type eventBatch struct {
	Events []Event `json:"events"`
}

type IEventHandler interface {
	Process(ctx context.Context, event Event) error
}

type Handlers struct {
	handlers map[string]IEventHandler
	logger   *zap.SugaredLogger
}

func NewHandlers(repo IRepository, decline *DeclineEngine, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{
		handlers: map[string]IEventHandler{
			EventOrderDeclined: &declineEventHandler{repo: repo, decline: decline},
			EventOrderApproved: &approveEventHandler{repo: repo, decline: decline},
		},
		logger: logger,
	}
}

// Events receives the notification batch. A failed event does not stop the
// rest of the batch; the scoring service retries on non-200 only.
func (h *Handlers) Events(c *fiber.Ctx) error {
	var batch eventBatch

	if err := c.BodyParser(&batch); err != nil {
		h.logger.Errorf("error on event request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	failed := 0
	for _, event := range batch.Events {
		if err := h.dispatch(c.Context(), event); err != nil {
			h.logger.Errorf("error on event %s for order %s: %s", event.Name, event.OrderIncrementID, err.Error())
			failed++
		}
	}

	if failed > 0 {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) dispatch(ctx context.Context, event Event) error {
	handler, ok := h.handlers[event.Name]
	if !ok {
		return ErrUnknownEventName
	}
	return handler.Process(ctx, event)
}

type declineEventHandler struct {
	repo    IRepository
	decline *DeclineEngine
}

func (h *declineEventHandler) Process(ctx context.Context, event Event) error {
	order, err := h.repo.GetOrderByIncrementID(ctx, event.OrderIncrementID)
	if err != nil {
		return err
	}
	return h.decline.Process(ctx, order, false)
}

type approveEventHandler struct {
	repo    IRepository
	decline *DeclineEngine
}

func (h *approveEventHandler) Process(ctx context.Context, event Event) error {
	order, err := h.repo.GetOrderByIncrementID(ctx, event.OrderIncrementID)
	if err != nil {
		return err
	}
	return h.decline.Unhold(ctx, order)
}
