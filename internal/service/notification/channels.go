package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/entities"
)

var ErrNoRecipient = errors.New("recipient is not configured")

type adminEmailChannel struct {
	mailer Mailer
	to     string
}

// NewAdminEmailChannel - письмо администратору магазина о новом заказе с квитанцией во вложении.
func NewAdminEmailChannel(mailer Mailer, to string) Channel {
	return &adminEmailChannel{mailer: mailer, to: to}
}

func (c *adminEmailChannel) Name() entities.Channel {
	return entities.ChannelAdminEmail
}

func (c *adminEmailChannel) Send(ctx context.Context, order *entities.Order, receipt *entities.Receipt) error {
	if c.to == "" {
		return ErrNoRecipient
	}
	return c.mailer.Send(ctx, entities.Mail{
		To:         c.to,
		Subject:    fmt.Sprintf("New Order #%d - %s", order.ID, order.BookTitle),
		Body:       adminEmailBody(order),
		Attachment: receipt,
	})
}

type userEmailChannel struct {
	mailer Mailer
}

// NewUserEmailChannel - подтверждение заказа покупателю.
func NewUserEmailChannel(mailer Mailer) Channel {
	return &userEmailChannel{mailer: mailer}
}

func (c *userEmailChannel) Name() entities.Channel {
	return entities.ChannelUserEmail
}

func (c *userEmailChannel) Send(ctx context.Context, order *entities.Order, receipt *entities.Receipt) error {
	if order.Email == "" {
		return ErrNoRecipient
	}
	return c.mailer.Send(ctx, entities.Mail{
		To:         order.Email,
		Subject:    fmt.Sprintf("Order Confirmation #%d", order.ID),
		Body:       userEmailBody(order),
		Attachment: receipt,
	})
}

type whatsAppChannel struct {
	messenger Messenger
	siteURL   string
}

// NewWhatsAppChannel - короткое сообщение покупателю. Если siteURL задан,
// в сообщение добавляется ссылка на квитанцию.
func NewWhatsAppChannel(messenger Messenger, siteURL string) Channel {
	return &whatsAppChannel{messenger: messenger, siteURL: strings.TrimRight(siteURL, "/")}
}

func (c *whatsAppChannel) Name() entities.Channel {
	return entities.ChannelWhatsApp
}

func (c *whatsAppChannel) Send(ctx context.Context, order *entities.Order, _ *entities.Receipt) error {
	if strings.TrimSpace(order.Phone) == "" {
		return ErrNoRecipient
	}
	text := whatsAppBody(order)
	if c.siteURL != "" {
		text += fmt.Sprintf("\nReceipt: %s/order/%d/receipt", c.siteURL, order.ID)
	}
	return c.messenger.SendText(ctx, order.Phone, text)
}

type spreadsheetChannel struct {
	ledger Ledger
}

// NewSpreadsheetChannel - строка заказа в общей таблице.
func NewSpreadsheetChannel(ledger Ledger) Channel {
	return &spreadsheetChannel{ledger: ledger}
}

func (c *spreadsheetChannel) Name() entities.Channel {
	return entities.ChannelSpreadsheet
}

func (c *spreadsheetChannel) Send(ctx context.Context, order *entities.Order, _ *entities.Receipt) error {
	return c.ledger.AppendOrder(ctx, order)
}

func adminEmailBody(order *entities.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new order has been placed.\n\n")
	fmt.Fprintf(&b, "Order ID: %d\n", order.ID)
	fmt.Fprintf(&b, "Book: %s by %s\n", order.BookTitle, order.AuthorName)
	fmt.Fprintf(&b, "Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "Total: Rs. %s\n\n", order.Total().StringFixed(2))
	fmt.Fprintf(&b, "Customer: %s\n", order.Name)
	fmt.Fprintf(&b, "Email: %s\n", order.Email)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Address: %s\n", order.Address)
	if order.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", order.Notes)
	}
	return b.String()
}

func userEmailBody(order *entities.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", order.Name)
	fmt.Fprintf(&b, "Thank you for your order of %s.\n\n", order.BookTitle)
	fmt.Fprintf(&b, "Order ID: %d\n", order.ID)
	fmt.Fprintf(&b, "Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "Total: Rs. %s\n", order.Total().StringFixed(2))
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)
	fmt.Fprintf(&b, "Your receipt is attached when available.\n")
	return b.String()
}

func whatsAppBody(order *entities.Order) string {
	return fmt.Sprintf(
		"Order Confirmed!\nOrder ID: %d\nBook: %s\nCustomer: %s\nPhone: %s\nAddress: %s\nThank you for your order!",
		order.ID, order.BookTitle, order.Name, order.Phone, order.Address,
	)
}
