package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"bookstore/internal/dto"
	"bookstore/internal/entities"
	"bookstore/internal/service/order"
	"bookstore/pkg/logger"
)

type Handler struct {
	processor                Processor
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, processor Processor, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order.created"))

	return &Handler{
		processor:                processor,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита
// сообщения: тогда оно будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.OrderCreatedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil || event.OrderID <= 0 {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("event_id", event.EventID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.created processing")

	outcomes, err := h.processor.ProcessOrder(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, order.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler order not found")

		default:
			// заказ без исходов подберет задача повторной доставки
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Status == entities.OutcomeFailed {
			failed++
		}
	}
	msgLog.With(
		logger.NewField("channels", len(outcomes)),
		logger.NewField("failed", failed),
	).Info("order.created: processed")

	sess.MarkMessage(message, "")
	return false
}
