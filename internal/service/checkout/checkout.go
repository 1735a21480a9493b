package checkout

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/entities"
	"bookstore/internal/service/book"
	"bookstore/pkg/logger"
)

type Checkout struct {
	log       serviceLogger
	books     BookReader
	orders    OrderRepository
	notifier  Notifier
	txManager TxManager
}

func New(log serviceLogger, books BookReader, orders OrderRepository, notifier Notifier, txManager TxManager) *Checkout {
	return &Checkout{
		log:       log.With(logger.NewField("component", "checkout")),
		books:     books,
		orders:    orders,
		notifier:  notifier,
		txManager: txManager,
	}
}

// Checkout оформляет заказ на книгу bookID.
// Ошибки отправки уведомлений наружу не выходят: заказ к этому моменту уже зафиксирован.
func (s *Checkout) Checkout(ctx context.Context, bookID int64, form entities.CheckoutForm) (*entities.Order, error) {
	bookEntity, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	orderCreate, fieldErrors := validateForm(form)
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	orderCreate.BookID = bookEntity.ID
	orderCreate.UnitPrice = bookEntity.Price
	orderCreate.Status = entities.DefaultOrderStatus

	var order *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.orders.Create(ctx, orderCreate)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	orderLog := s.log.With(
		logger.NewField("order_id", order.ID),
		logger.NewField("book_id", order.BookID),
	)
	orderLog.Info("order created")

	if err := s.notifier.Notify(ctx, order); err != nil {
		orderLog.With(logger.NewField("error", err)).
			Error("order notification hand-off failed, left to redelivery")
	}

	return order, nil
}
