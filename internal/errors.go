package internal

import "errors"

var (
	ErrNoSuchCurrencyRate = errors.New("no currency rate for conversion")

	ErrNotRefundable         = errors.New("order is not refundable")
	ErrCreditMemoCreation    = errors.New("credit memo creation failed")
	ErrRuleNotFound          = errors.New("promotion rule not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderDeclined         = errors.New("order declined by risk scoring")
	ErrUnexpectedDisposition = errors.New("unexpected disposition error")
	ErrUnknownWorkflowMode   = errors.New("unknown workflow mode")
	ErrUnknownEventName      = errors.New("unknown event name")
	ErrScoringUnavailable    = errors.New("scoring service unavailable")
	ErrScoringBadResponse    = errors.New("unexpected scoring service response")
)
