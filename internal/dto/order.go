package dto

import (
	"time"

	"bookstore/internal/entities"
)

type CheckoutResponse struct {
	OrderID  int64  `json:"order_id"`
	Status   string `json:"status"`
	Redirect string `json:"redirect"`
}

// CheckoutValues - присланные значения формы, возвращаются вместе с ошибками.
type CheckoutValues struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes"`
}

type CheckoutValidationError struct {
	Errors map[string]string `json:"errors"`
	Values CheckoutValues    `json:"values"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Order struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	BookTitle  string    `json:"book_title"`
	AuthorName string    `json:"author_name"`
	UnitPrice  string    `json:"unit_price"`
	Total      string    `json:"total"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewOrder(o entities.Order) Order {
	return Order{
		ID:         o.ID,
		BookID:     o.BookID,
		BookTitle:  o.BookTitle,
		AuthorName: o.AuthorName,
		UnitPrice:  o.UnitPrice.StringFixed(2),
		Total:      o.Total().StringFixed(2),
		Name:       o.Name,
		Email:      o.Email,
		Phone:      o.Phone,
		Address:    o.Address,
		Quantity:   o.Quantity,
		Notes:      o.Notes,
		Status:     o.Status.String(),
		CreatedAt:  o.CreatedAt,
	}
}

type OrderStatusUpdate struct {
	Status *string `json:"status"`
}

type NotificationOutcome struct {
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNotificationOutcome(o entities.NotificationOutcome) NotificationOutcome {
	return NotificationOutcome{
		Channel:   o.Channel.String(),
		Status:    o.Status.String(),
		Attempts:  o.Attempts,
		Error:     o.Error,
		UpdatedAt: o.UpdatedAt,
	}
}

type LedgerResyncResponse struct {
	Rows int `json:"rows"`
}
