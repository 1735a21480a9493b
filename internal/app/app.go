package app

import (
	"bookstore/internal/handlers/rest/author_get"
	"bookstore/internal/handlers/rest/author_post"
	"bookstore/internal/handlers/rest/authors_get"
	"bookstore/internal/handlers/rest/book_delete"
	"bookstore/internal/handlers/rest/book_get"
	"bookstore/internal/handlers/rest/book_post"
	"bookstore/internal/handlers/rest/book_put"
	"bookstore/internal/handlers/rest/books_get"
	"bookstore/internal/handlers/rest/checkout_post"
	"bookstore/internal/handlers/rest/ledger_resync_post"
	"bookstore/internal/handlers/rest/order_get"
	"bookstore/internal/handlers/rest/order_notifications_get"
	"bookstore/internal/handlers/rest/order_receipt_get"
	"bookstore/internal/handlers/rest/order_status_put"
	"bookstore/internal/handlers/rest/orders_get"
	"bookstore/internal/handlers/rest/ping_get"
	notificationService "bookstore/internal/service/notification"
	"bookstore/pkg/background"
)

type Application struct {
	ServiceAuthor        ServiceAuthor
	ServiceBook          ServiceBook
	ServiceOrder         ServiceOrder
	ServiceCheckout      ServiceCheckout
	ServiceNotification  ServiceNotification
	ServiceLedger        ServiceLedger
	NotificationChannels ping_get.ChannelLister
	BackgroundWorkers    *background.Worker
}

type ServiceAuthor interface {
	author_get.Service
	author_post.Service
	authors_get.Service
}

type ServiceBook interface {
	book_get.Service
	books_get.Service
	book_post.Service
	book_put.Service
	book_delete.Service
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_receipt_get.Service
}

type ServiceCheckout interface {
	checkout_post.Service
}

type ServiceNotification interface {
	order_notifications_get.Service
}

type ServiceLedger interface {
	ledger_resync_post.Service
}

// WorkerApp - зависимости cmd/worker-order-notifications.
type WorkerApp struct {
	Processor *notificationService.Service
}
