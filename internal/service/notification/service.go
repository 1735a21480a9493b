package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstore/internal/entities"
	"bookstore/internal/receipt"
	"bookstore/pkg/logger"
)

type ReceiptFunc func(order *entities.Order) ([]byte, error)

const recordTimeout = 5 * time.Second

type RedeliveryConfig struct {
	// Суммарный лимит попыток канала, после которого он больше не перезапускается.
	MaxAttempts int
	GracePeriod time.Duration
	Lookback    time.Duration
	BatchSize   uint64
}

type Service struct {
	log        serviceLogger
	orders     OrderRepository
	outcomes   OutcomeRepository
	dispatcher Dispatcher
	generate   ReceiptFunc
	config     RedeliveryConfig
	now        func() time.Time
}

func NewService(
	log serviceLogger,
	orders OrderRepository,
	outcomes OutcomeRepository,
	dispatcher Dispatcher,
	generate ReceiptFunc,
	config RedeliveryConfig,
) *Service {
	return &Service{
		log:        log.With(logger.NewField("component", "notification_service")),
		orders:     orders,
		outcomes:   outcomes,
		dispatcher: dispatcher,
		generate:   generate,
		config:     config,
		now:        time.Now,
	}
}

// ProcessOrder загружает заказ, строит квитанцию и рассылает его по всем каналам.
// Ошибка возвращается только если заказ не удалось прочитать: отказы каналов
// и сохранения результатов логируются.
func (s *Service) ProcessOrder(ctx context.Context, orderID int64) ([]entities.NotificationOutcome, error) {
	return s.process(ctx, orderID)
}

func (s *Service) process(ctx context.Context, orderID int64, only ...entities.Channel) ([]entities.NotificationOutcome, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}

	outcomes := s.dispatcher.Dispatch(ctx, order, s.receipt(order), only...)
	s.record(ctx, outcomes)

	return outcomes, nil
}

// receipt возвращает nil, если PDF собрать не удалось: каналы шлют без вложения.
func (s *Service) receipt(order *entities.Order) *entities.Receipt {
	content, err := s.generate(order)
	if err != nil {
		s.log.Error("receipt generation failed, dispatching without attachment",
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		)
		return nil
	}
	return &entities.Receipt{
		OrderID:  order.ID,
		Filename: receipt.Filename(order.ID),
		Content:  content,
	}
}

// record сохраняет результаты и после истечения дедлайна рассылки.
func (s *Service) record(ctx context.Context, outcomes []entities.NotificationOutcome) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	for _, outcome := range outcomes {
		if err := s.outcomes.Upsert(ctx, outcome); err != nil {
			s.log.Error("failed to persist notification outcome",
				logger.NewField("order_id", outcome.OrderID),
				logger.NewField("channel", outcome.Channel.String()),
				logger.NewField("status", outcome.Status.String()),
				logger.NewField("error", err),
			)
		}
	}
}

// GetOutcomes возвращает сохраненные результаты рассылки по заказу.
func (s *Service) GetOutcomes(ctx context.Context, orderID int64) ([]*entities.NotificationOutcome, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}

	outcomes, err := s.outcomes.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get outcomes for order %d: %w", orderID, err)
	}
	return outcomes, nil
}

// Redeliver перезапускает упавшие каналы и заказы, рассылка которых так и не началась.
// Ошибки отдельных заказов не прерывают проход.
func (s *Service) Redeliver(ctx context.Context) error {
	var errs []error

	if err := s.redeliverFailed(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.deliverLost(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Service) redeliverFailed(ctx context.Context) error {
	failed, err := s.outcomes.GetRetryable(ctx, s.config.MaxAttempts, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("get retryable outcomes: %w", err)
	}

	byOrder := make(map[int64][]entities.Channel)
	var orderIDs []int64
	for _, outcome := range failed {
		if _, ok := byOrder[outcome.OrderID]; !ok {
			orderIDs = append(orderIDs, outcome.OrderID)
		}
		byOrder[outcome.OrderID] = append(byOrder[outcome.OrderID], outcome.Channel)
	}

	for _, orderID := range orderIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		channels := byOrder[orderID]
		s.log.Info("redelivering failed channels",
			logger.NewField("order_id", orderID),
			logger.NewField("channels", channels),
		)
		if _, err := s.process(ctx, orderID, channels...); err != nil {
			s.log.Error("redelivery failed",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
		}
	}

	return nil
}

func (s *Service) deliverLost(ctx context.Context) error {
	now := s.now()
	orderIDs, err := s.orders.GetUnnotified(ctx, now.Add(-s.config.Lookback), now.Add(-s.config.GracePeriod), s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("get unnotified orders: %w", err)
	}

	for _, orderID := range orderIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Warn("order has no notification outcomes, dispatching",
			logger.NewField("order_id", orderID),
		)
		if _, err := s.process(ctx, orderID); err != nil {
			s.log.Error("lost order delivery failed",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
		}
	}

	return nil
}
