package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/smolin/riskgate/internal/model"
)

// IPublisher hands a message to the queue and returns without waiting for
// delivery. At-least-once, no ordering guarantees.
type IPublisher interface {
	Publish(topic string, payload []byte) error
}

// Workflow is one of two checkout-lifecycle strategies, selected once from
// configuration. The surrounding pipeline invokes the matching hook at each
// lifecycle point; hooks keep no state between calls.
type Workflow struct {
	Mode string

	OnBeforePlacement  func(ctx context.Context, order *model.Order, meta RequestMeta) error
	OnPlacementFailure func(ctx context.Context, order *model.Order, meta RequestMeta) error
	OnPlacementSuccess func(ctx context.Context, order *model.Order, meta RequestMeta) error
}

func NewWorkflow(cfg *Config, service IService, flags IFlagStore, publisher IPublisher, logger *zap.SugaredLogger) (*Workflow, error) {
	switch cfg.WorkflowMode {
	case WorkflowPreAuth:
		return preAuthWorkflow(cfg, service, flags, publisher, logger), nil
	case WorkflowPostAuth:
		return postAuthWorkflow(cfg, service, flags, logger), nil
	default:
		return nil, ErrUnknownWorkflowMode
	}
}

// preAuthWorkflow scores before payment authorization: placement blocks on
// the verdict, and post-placement hooks only enqueue the async status update.
func preAuthWorkflow(cfg *Config, service IService, flags IFlagStore, publisher IPublisher, logger *zap.SugaredLogger) *Workflow {
	return &Workflow{
		Mode: WorkflowPreAuth,
		OnBeforePlacement: func(ctx context.Context, order *model.Order, meta RequestMeta) error {
			logger.Infof("pre-authorization inquiry for order %s, store %d", order.IncrementID, order.StoreID)
			return service.InquiryRequest(ctx, order, meta, true)
		},
		OnPlacementFailure: func(ctx context.Context, order *model.Order, _ RequestMeta) error {
			if !cfg.NotifyProcessorDecline {
				return nil
			}

			logger.Infof("order %s failed, queueing scoring update", order.IncrementID)
			if err := flags.Set(ctx, KeyPostAuthFailure+order.IncrementID); err != nil {
				logger.Errorf("set post-auth failure flag for order %s: %s", order.IncrementID, err.Error())
			}
			return publisher.Publish(TopicOrderUpdate, []byte(order.IncrementID))
		},
		OnPlacementSuccess: func(ctx context.Context, order *model.Order, _ RequestMeta) error {
			logger.Infof("order %s placed, queueing scoring update", order.IncrementID)
			if err := publisher.Publish(TopicOrderUpdate, []byte(order.IncrementID)); err != nil {
				return err
			}
			return service.MarkProcessed(ctx, order)
		},
	}
}

// postAuthWorkflow scores after payment authorization: nothing happens before
// placement, and submissions run synchronously in the placement hooks.
func postAuthWorkflow(cfg *Config, service IService, flags IFlagStore, logger *zap.SugaredLogger) *Workflow {
	return &Workflow{
		Mode: WorkflowPostAuth,
		OnBeforePlacement: func(_ context.Context, order *model.Order, _ RequestMeta) error {
			logger.Infof("order %s: nothing to do before placement in post-authorization mode", order.IncrementID)
			return nil
		},
		OnPlacementFailure: func(ctx context.Context, order *model.Order, meta RequestMeta) error {
			if !cfg.NotifyProcessorDecline {
				return nil
			}

			logger.Infof("order %s failed, reporting processor decline", order.IncrementID)
			if err := flags.Set(ctx, KeyPostAuthFailure+order.IncrementID); err != nil {
				logger.Errorf("set post-auth failure flag for order %s: %s", order.IncrementID, err.Error())
			}
			return service.InquiryRequest(ctx, order, meta, false)
		},
		OnPlacementSuccess: func(ctx context.Context, order *model.Order, meta RequestMeta) error {
			logger.Infof("post-authorization inquiry for order %s, store %d", order.IncrementID, order.StoreID)
			if err := service.InquiryRequest(ctx, order, meta, false); err != nil {
				return err
			}
			return service.MarkProcessed(ctx, order)
		},
	}
}
