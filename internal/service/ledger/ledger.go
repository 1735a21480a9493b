package ledger

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

type Service struct {
	log       serviceLogger
	orders    OrderRepository
	sheet     Sheet
	txManager TxManager
}

// New принимает sheet == nil, если таблица не настроена: тогда Resync возвращает ErrLedgerDisabled.
func New(log serviceLogger, orders OrderRepository, sheet Sheet, txManager TxManager) *Service {
	return &Service{
		log:       log.With(logger.NewField("component", "ledger")),
		orders:    orders,
		sheet:     sheet,
		txManager: txManager,
	}
}

// Resync полностью перезаписывает таблицу всеми заказами. Заказы читаются одним
// снимком, так что параллельный checkout не дает рваную выгрузку.
func (s *Service) Resync(ctx context.Context) (int, error) {
	if s.sheet == nil {
		return 0, ErrLedgerDisabled
	}

	start := time.Now()

	var orders []entities.Order
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		orders, err = s.orders.GetAll(ctx, entities.OrderFilter{})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("read orders snapshot: %w", err)
	}

	if err := s.sheet.Rewrite(ctx, orders); err != nil {
		return 0, fmt.Errorf("rewrite sheet: %w", err)
	}

	s.log.Info("ledger resynced",
		logger.NewField("orders", len(orders)),
		logger.NewField("duration", time.Since(start)),
	)

	return len(orders), nil
}
