package internal

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smolin/riskgate/internal/model"
)

const (
	commentCancelled    = "Order cancelled / voided due to risk decline."
	commentCancelFailed = "Failed to cancel order. Cancel attempt due to risk decline."
	commentRefunded     = "Order refunded due to risk decline."
	commentRefundFailed = "Failed to refund order. Refund attempt due to risk decline."
	commentHeld         = "Order declined by risk scoring."

	creditMemoNote = "Risk decline"

	declineUserMessage = "Your order was declined. Please try again or contact support."
)

// IMessenger queues a message for the shopper. Only the synchronous
// in-payment-flow decline path ever uses it.
type IMessenger interface {
	AddErrorMessage(msg string)
}

// DeclineEngine applies the configured disposition to a declined order:
// refund falls back to cancel, and whatever is left unprocessed ends held
// with the decline status. Exactly one terminal outcome per order.
type DeclineEngine struct {
	repo      IRepository
	messenger IMessenger
	cfg       *Config
	logger    *zap.SugaredLogger
}

func NewDeclineEngine(repo IRepository, messenger IMessenger, cfg *Config, logger *zap.SugaredLogger) *DeclineEngine {
	return &DeclineEngine{repo: repo, messenger: messenger, cfg: cfg, logger: logger}
}

// Process executes the disposition. inPaymentFlow signals that the decline
// happened synchronously inside an active payment flow: only then is an
// unexpected cancel error re-raised to the caller, after queueing the user
// message. Every other failure is swallowed into logs and order history.
func (e *DeclineEngine) Process(ctx context.Context, order *model.Order, inPaymentFlow bool) error {
	action := e.cfg.DeclineAction

	isProcessed := false
	isForceCancel := false

	if action == ActionRefund {
		isProcessed = e.refund(ctx, order)
		isForceCancel = !isProcessed
	}

	if action == ActionCancel || isForceCancel {
		processed, err := e.cancel(ctx, order)
		if err != nil {
			if inPaymentFlow {
				e.messenger.AddErrorMessage(declineUserMessage)
				return fmt.Errorf("%w: %s", ErrUnexpectedDisposition, err.Error())
			}
			e.logger.Errorf("cancel order %s: %s", order.IncrementID, err.Error())
		}
		isProcessed = processed
	}

	if !isProcessed {
		e.hold(ctx, order)
	}

	return nil
}

func (e *DeclineEngine) cancel(ctx context.Context, order *model.Order) (bool, error) {
	isCanceled := order.CanCancel()
	if isCanceled {
		order.State = model.StateCanceled
		order.AddStatusHistory(model.StateCanceled, commentCancelled, false)
	} else {
		e.logger.Errorf("unable to cancel order %s in state %s", order.IncrementID, order.State)
		order.AddStatusHistory("", commentCancelFailed, false)
	}

	if err := e.repo.SaveOrder(ctx, order); err != nil {
		return false, err
	}
	return isCanceled, nil
}

func (e *DeclineEngine) refund(ctx context.Context, order *model.Order) bool {
	err := e.orderRefund(ctx, order)
	if err != nil {
		e.logger.Errorf("refund order %s: %s", order.IncrementID, err.Error())
		order.AddStatusHistory("", commentRefundFailed, false)
	} else {
		order.AddStatusHistory("", commentRefunded, false)
	}

	if saveErr := e.repo.SaveOrder(ctx, order); saveErr != nil {
		e.logger.Errorf("save order %s after refund attempt: %s", order.IncrementID, saveErr.Error())
	}

	return err == nil
}

// orderRefund credits every invoice on the order. All drafts are loaded
// before any refund executes, so an unbuildable credit memo fails the whole
// attempt before money moves.
func (e *DeclineEngine) orderRefund(ctx context.Context, order *model.Order) error {
	if !order.CanCreditmemo() {
		return fmt.Errorf("%w: can't create credit memo for order %s", ErrNotRefundable, order.IncrementID)
	}

	if !order.HasInvoices() {
		return fmt.Errorf("%w: no invoices found for order %s", ErrNotRefundable, order.IncrementID)
	}

	drafts := make([]*model.CreditMemo, 0, len(order.Invoices))
	for _, invoice := range order.Invoices {
		draft, err := e.repo.LoadCreditMemoDraft(ctx, order.ID, invoice.ID)
		if err != nil {
			return fmt.Errorf("%w: invoice %s: %s", ErrCreditMemoCreation, invoice.IncrementID, err.Error())
		}

		draft.Comment = creditMemoNote
		draft.CustomerNote = creditMemoNote
		draft.CustomerNoteNotify = true
		drafts = append(drafts, draft)
	}

	for _, draft := range drafts {
		e.logger.Infof("issuing refund / credit memo for invoice %d", draft.InvoiceID)

		memoID, err := e.repo.CreateCreditMemo(ctx, draft)
		if err != nil {
			return err
		}
		if err = e.repo.NotifyCreditMemo(ctx, memoID); err != nil {
			return err
		}
	}

	reloaded, err := e.repo.GetOrderByID(ctx, order.ID)
	if err != nil {
		return err
	}
	*order = *reloaded

	return nil
}

// hold transitions the order into the held state with the decline status,
// keeping the pre-hold state/status for restoration. Re-marking an already
// marked order is a no-op.
func (e *DeclineEngine) hold(ctx context.Context, order *model.Order) {
	alreadyMarked := order.State == model.StateHolded && order.Status == model.StatusRiskDecline
	markedBeforeHold := order.HoldBeforeState == model.StateHolded && order.HoldBeforeStatus == model.StatusRiskDecline
	if alreadyMarked || markedBeforeHold {
		e.logger.Infof("order %s already in decline status/state, skipping", order.IncrementID)
		return
	}

	e.logger.Infof("setting order %s to decline status/state", order.IncrementID)

	order.HoldBeforeState = order.State
	order.HoldBeforeStatus = order.Status

	order.State = model.StateHolded
	order.AddStatusHistory(model.StatusRiskDecline, commentHeld, false)

	if err := e.repo.SaveOrder(ctx, order); err != nil {
		e.logger.Errorf("save held order %s: %s", order.IncrementID, err.Error())
	}
}

// Unhold restores the pre-hold state/status after a later approval.
func (e *DeclineEngine) Unhold(ctx context.Context, order *model.Order) error {
	if order.State != model.StateHolded {
		return nil
	}

	state := order.HoldBeforeState
	if state == "" {
		state = model.StateProcessing
	}
	status := order.HoldBeforeStatus
	if status == "" {
		status = state
	}

	order.State = state
	order.HoldBeforeState = ""
	order.HoldBeforeStatus = ""
	order.AddStatusHistory(status, "Order approved by risk scoring, hold released.", false)

	return e.repo.SaveOrder(ctx, order)
}
