package internal

import (
	"context"
	"strings"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Producer is the fire-and-forget publisher behind IPublisher. Delivery
// errors surface on the async error channel and are only logged.
type Producer struct {
	producer sarama.AsyncProducer
	logger   *zap.SugaredLogger
}

func NewProducer(brokers string, logger *zap.SugaredLogger) (*Producer, error) {
	config := sarama.NewConfig()

	config.Producer.Return.Successes = false
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForLocal

	p, err := sarama.NewAsyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, err
	}

	producer := &Producer{producer: p, logger: logger}
	go producer.drainErrors()

	return producer, nil
}

func (p *Producer) Publish(topic string, payload []byte) error {
	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(payload),
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

func (p *Producer) drainErrors() {
	for err := range p.producer.Errors() {
		p.logger.Errorf("publish to %s: %s", err.Msg.Topic, err.Err.Error())
	}
}

// OrderUpdateConsumer replays queued order increment ids into the update
// inquiry path. Messages are acknowledged after the attempt, so delivery is
// at-least-once.
type OrderUpdateConsumer struct {
	group   sarama.ConsumerGroup
	repo    IRepository
	service IService
	logger  *zap.SugaredLogger
}

func NewOrderUpdateConsumer(brokers string, repo IRepository, service IService, logger *zap.SugaredLogger) (*OrderUpdateConsumer, error) {
	config := sarama.NewConfig()

	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	cg, err := sarama.NewConsumerGroup(strings.Split(brokers, ","), "riskgate-orderupdate", config)
	if err != nil {
		return nil, err
	}

	return &OrderUpdateConsumer{
		group:   cg,
		repo:    repo,
		service: service,
		logger:  logger,
	}, nil
}

func (c *OrderUpdateConsumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stopping order update consumer")
			return

		default:
			err := c.group.Consume(ctx, []string{TopicOrderUpdate}, &updateHandler{
				repo:    c.repo,
				service: c.service,
				logger:  c.logger,
			})
			if err != nil {
				if err == sarama.ErrClosedConsumerGroup {
					c.logger.Info("consumer group closed, exiting")
					return
				}
				c.logger.Errorf("consume order updates: %s", err.Error())
			}
		}
	}
}

func (c *OrderUpdateConsumer) Close() error {
	return c.group.Close()
}

type updateHandler struct {
	repo    IRepository
	service IService
	logger  *zap.SugaredLogger
}

func (h *updateHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *updateHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *updateHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			h.process(session.Context(), string(msg.Value))
			session.MarkMessage(msg, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *updateHandler) process(ctx context.Context, incrementID string) {
	order, err := h.repo.GetOrderByIncrementID(ctx, incrementID)
	if err != nil {
		h.logger.Errorf("load order %s for update: %s", incrementID, err.Error())
		return
	}

	if err = h.service.UpdateRequest(ctx, order, false); err != nil {
		h.logger.Errorf("update request for order %s: %s", incrementID, err.Error())
	}
}
