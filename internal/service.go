package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/smolin/riskgate/internal/model"
)

type IService interface {
	InquiryRequest(ctx context.Context, order *model.Order, meta RequestMeta, block bool) error
	UpdateRequest(ctx context.Context, order *model.Order, realTimeDecline bool) error
	MarkProcessed(ctx context.Context, order *model.Order) error
}

// Service drives one scoring round trip: build the inquiry, submit it, record
// the assigned transaction id and dispatch the decline disposition when the
// verdict says so.
type Service struct {
	repo    IRepository
	builder *InquiryBuilder
	scoring IScoring
	decline *DeclineEngine
	logger  *zap.SugaredLogger
}

func NewService(repo IRepository, builder *InquiryBuilder, scoring IScoring, decline *DeclineEngine, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:    repo,
		builder: builder,
		scoring: scoring,
		decline: decline,
		logger:  logger,
	}
}

// InquiryRequest submits the initial inquiry. With block set, a declined
// verdict runs the disposition in-payment-flow and surfaces ErrOrderDeclined
// so the caller can stop order placement.
func (s Service) InquiryRequest(ctx context.Context, order *model.Order, meta RequestMeta, block bool) error {
	inq, err := s.builder.BuildInitial(ctx, order, meta)
	if err != nil {
		s.logger.Errorf("build inquiry for order %s: %s", order.IncrementID, err.Error())
		return err
	}

	verdict, err := s.scoring.Submit(ctx, inq)
	if err != nil {
		s.logger.Errorf("submit inquiry for order %s: %s", order.IncrementID, err.Error())
		return err
	}

	s.logger.Infof("order %s scored %s, transaction %s", order.IncrementID, verdict.Decision, verdict.TransactionID)

	if verdict.TransactionID != "" {
		order.RiskTransactionID = verdict.TransactionID
		if err = s.repo.SaveOrder(ctx, order); err != nil {
			s.logger.Errorf("save transaction id for order %s: %s", order.IncrementID, err.Error())
		}
	}

	if verdict.Declined() {
		if err = s.decline.Process(ctx, order, block); err != nil {
			return err
		}
		if block {
			return ErrOrderDeclined
		}
	}

	return nil
}

// UpdateRequest submits the reduced update document for an already scored
// order. realTimeDecline forces the reported transaction status to refused.
func (s Service) UpdateRequest(ctx context.Context, order *model.Order, realTimeDecline bool) error {
	inq, err := s.builder.BuildUpdate(ctx, order, RequestMeta{}, order.RiskTransactionID, realTimeDecline)
	if err != nil {
		s.logger.Errorf("build update for order %s: %s", order.IncrementID, err.Error())
		return err
	}

	verdict, err := s.scoring.SubmitUpdate(ctx, inq)
	if err != nil {
		s.logger.Errorf("submit update for order %s: %s", order.IncrementID, err.Error())
		return err
	}

	s.logger.Infof("order %s update acknowledged, decision %s", order.IncrementID, verdict.Decision)
	return nil
}

// MarkProcessed records that the order went through scoring.
func (s Service) MarkProcessed(ctx context.Context, order *model.Order) error {
	order.RiskProcessed = true
	return s.repo.SaveOrder(ctx, order)
}
