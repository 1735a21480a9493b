package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	unitPrice, err := decimal.NewFromString(o.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("order %d unit price %q: %w", o.ID, o.UnitPrice, err)
	}

	return &entities.Order{
		ID:         o.ID,
		BookID:     o.BookID,
		BookTitle:  o.BookTitle,
		AuthorName: o.AuthorName,
		UnitPrice:  unitPrice,
		Name:       o.Name,
		Email:      o.Email,
		Phone:      o.Phone,
		Address:    o.Address,
		Quantity:   o.Quantity,
		Notes:      o.Notes,
		Status:     entities.OrderStatusType(o.Status),
		CreatedAt:  o.CreatedAt,
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}
