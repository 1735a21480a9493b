//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/internal/handlers/rest/ping_get"
	"bookstore/internal/pkg/config"
	"bookstore/internal/pkg/credentials"
	authorService "bookstore/internal/service/author"
	bookService "bookstore/internal/service/book"
	checkoutService "bookstore/internal/service/checkout"
	ledgerService "bookstore/internal/service/ledger"
	notificationService "bookstore/internal/service/notification"
	orderService "bookstore/internal/service/order"
	"bookstore/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	googleCreds *credentials.Google,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRedisClient,

		provideAuthorRepository,
		provideBookRepository,
		provideOrderRepository,
		provideOutcomeRepository,
		provideBookStore,
		provideBookReader,

		provideMailer,
		provideMessenger,
		provideSheet,
		provideChannels,
		provideDispatcher,
		provideServiceNotification,
		provideNotifier,

		provideServiceAuthor,
		provideServiceBook,
		provideServiceOrder,
		provideServiceCheckout,
		provideServiceLedger,

		provideRedeliveryInterval,
		provideNotificationRedeliveryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuthor), new(*authorService.Author)),
		wire.Bind(new(ServiceBook), new(*bookService.Book)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCheckout), new(*checkoutService.Checkout)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Service)),
		wire.Bind(new(ping_get.ChannelLister), new(*notificationService.ChannelDispatcher)),
	)
	return nil, nil, nil
}

// InitializeWorkerApp для Kafka воркера (cmd/worker-order-notifications)
func InitializeWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	googleCreds *credentials.Google,
	cfg *config.Config,
) (*WorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideOutcomeRepository,

		provideMailer,
		provideMessenger,
		provideSheet,
		provideChannels,
		provideDispatcher,
		provideServiceNotification,

		wire.Struct(new(WorkerApp), "*"),
	)
	return nil, nil
}
