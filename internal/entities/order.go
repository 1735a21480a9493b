package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID     int64
	BookID int64

	// Снимок книги на момент оформления: цена хранится в строке заказа,
	// название и автор подтягиваются join-ом.
	BookTitle  string
	AuthorName string
	UnitPrice  decimal.Decimal

	Name      string
	Email     string
	Phone     string
	Address   string
	Quantity  int
	Notes     string
	Status    OrderStatusType
	CreatedAt time.Time
}

// Total = Quantity * UnitPrice без плавающей точки.
func (o *Order) Total() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderCancelled OrderStatusType = "cancelled"
)

// Статус нового заказа до ручного подтверждения администратором.
const DefaultOrderStatus = OrderPending

const DefaultOrderQuantity = 1

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderCreate - уже провалидированные поля для вставки.
type OrderCreate struct {
	BookID    int64
	UnitPrice decimal.Decimal
	Name      string
	Email     string
	Phone     string
	Address   string
	Quantity  int
	Notes     string
	Status    OrderStatusType
}

// CheckoutForm - сырые значения формы "купить сейчас" как их прислал покупатель.
type CheckoutForm struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Quantity string
	Notes    string
}

type OrderFilter struct {
	Status *OrderStatusType
	Limit  uint64
	Offset uint64
}
