package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"bookstore/internal/gateway/email"
	"bookstore/internal/gateway/kafka/order_events"
	"bookstore/internal/gateway/sheets"
	"bookstore/internal/gateway/whatsapp"
	"bookstore/internal/handlers/tasks/notification_redelivery"
	"bookstore/internal/pkg/config"
	"bookstore/internal/pkg/credentials"
	"bookstore/internal/pkg/kafka"
	"bookstore/internal/pkg/redis"
	"bookstore/internal/receipt"
	authorRepo "bookstore/internal/repository/author"
	bookRepo "bookstore/internal/repository/book"
	"bookstore/internal/repository/bookcache"
	orderRepo "bookstore/internal/repository/order"
	outcomeRepo "bookstore/internal/repository/outcome"
	authorService "bookstore/internal/service/author"
	bookService "bookstore/internal/service/book"
	checkoutService "bookstore/internal/service/checkout"
	ledgerService "bookstore/internal/service/ledger"
	notificationService "bookstore/internal/service/notification"
	orderService "bookstore/internal/service/order"
	"bookstore/pkg/background"
	"bookstore/pkg/logger"
	"bookstore/pkg/querier"
	"bookstore/pkg/tx"
)

type RedeliveryInterval time.Duration

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAuthorRepository(querier *querier.Querier) *authorRepo.Repository {
	return authorRepo.New(querier)
}

func provideBookRepository(querier *querier.Querier) *bookRepo.Repository {
	return bookRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutcomeRepository(querier *querier.Querier) *outcomeRepo.Repository {
	return outcomeRepo.New(querier)
}

// provideRedisClient возвращает nil без ошибки, если REDIS_ADDR не задан.
func provideRedisClient(ctx context.Context, log logger.Logger, cfg *config.Config) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled() {
		log.Warn("redis disabled, book cache is off")
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	}
	return client, cleanup, nil
}

// provideBookStore оборачивает репозиторий книг кэшем, если redis настроен.
func provideBookStore(
	log logger.Logger,
	cfg *config.Config,
	client *goredis.Client,
	repository *bookRepo.Repository,
) bookService.Repository {
	if client == nil {
		return repository
	}
	return bookcache.New(log, client, repository, cfg.Redis.BookTTL)
}

func provideBookReader(store bookService.Repository) checkoutService.BookReader {
	return store
}

func provideServiceAuthor(repository *authorRepo.Repository) *authorService.Author {
	return authorService.New(repository)
}

func provideServiceBook(repository bookService.Repository) *bookService.Book {
	return bookService.New(repository)
}

func provideServiceOrder(repository *orderRepo.Repository) *orderService.Service {
	return orderService.New(repository)
}

func provideMailer(cfg *config.Config) (*email.Gateway, error) {
	if !cfg.SMTP.Enabled() {
		return nil, nil
	}

	client, err := email.NewClient(&cfg.SMTP)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return email.New(client, cfg.SMTP.From), nil
}

func provideMessenger(cfg *config.Config) *whatsapp.Gateway {
	if !cfg.Twilio.Enabled() {
		return nil
	}
	return whatsapp.New(
		whatsapp.NewClient(&cfg.Twilio),
		cfg.Twilio.WhatsAppFrom,
		cfg.Twilio.DefaultCountryCode,
	)
}

// provideSheet: creds == nil означает, что Google Sheets не настроен.
func provideSheet(ctx context.Context, cfg *config.Config, creds *credentials.Google) (*sheets.Gateway, error) {
	if creds == nil {
		return nil, nil
	}

	api, err := sheets.NewValuesAPI(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("google sheets: %w", err)
	}
	return sheets.New(api, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName), nil
}

// provideChannels собирает только настроенные каналы.
func provideChannels(
	log logger.Logger,
	cfg *config.Config,
	mailer *email.Gateway,
	messenger *whatsapp.Gateway,
	sheet *sheets.Gateway,
) []notificationService.Channel {
	var channels []notificationService.Channel

	if mailer != nil {
		channels = append(channels,
			notificationService.NewAdminEmailChannel(mailer, cfg.Notifications.AdminEmail),
			notificationService.NewUserEmailChannel(mailer),
		)
	} else {
		log.Warn("smtp disabled, email notifications are off")
	}

	if messenger != nil {
		channels = append(channels, notificationService.NewWhatsAppChannel(messenger, cfg.Notifications.SiteURL))
	} else {
		log.Warn("twilio disabled, whatsapp notifications are off")
	}

	if sheet != nil {
		channels = append(channels, notificationService.NewSpreadsheetChannel(sheet))
	} else {
		log.Warn("google sheets disabled, spreadsheet ledger is off")
	}

	return channels
}

func provideDispatcher(log logger.Logger, cfg *config.Config, channels []notificationService.Channel) *notificationService.ChannelDispatcher {
	dispatcherConfig := notificationService.DefaultDispatcherConfig()
	dispatcherConfig.MaxAttempts = cfg.Notifications.MaxAttempts
	dispatcherConfig.AttemptTimeout = cfg.Notifications.ChannelTimeout

	return notificationService.NewDispatcher(log, channels, dispatcherConfig)
}

func provideServiceNotification(
	log logger.Logger,
	cfg *config.Config,
	orders *orderRepo.Repository,
	outcomes *outcomeRepo.Repository,
	dispatcher *notificationService.ChannelDispatcher,
) *notificationService.Service {
	return notificationService.NewService(
		log,
		orders,
		outcomes,
		dispatcher,
		receipt.Generate,
		notificationService.RedeliveryConfig{
			MaxAttempts: cfg.Tasks.NotificationMaxAttempts,
			GracePeriod: cfg.Tasks.NotificationGracePeriod,
			Lookback:    cfg.Tasks.NotificationLookback,
			BatchSize:   cfg.Tasks.NotificationBatchSize,
		},
	)
}

// provideNotifier выбирает передачу заказа на рассылку по NOTIFY_MODE.
func provideNotifier(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	processor *notificationService.Service,
) (checkoutService.Notifier, func(), error) {
	if cfg.Notifications.Mode == config.NotifyModeKafka {
		producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka producer: %w", err)
		}
		cleanup := func() {
			if err := producer.Close(); err != nil {
				log.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}
		return order_events.New(producer, cfg.Kafka.Topic), cleanup, nil
	}

	notifier := notificationService.NewAsyncNotifier(
		log,
		processor,
		cfg.Notifications.QueueSize,
		cfg.Notifications.Workers,
		cfg.Notifications.ProcessTimeout,
	)
	return notifier, notifier.Close, nil
}

func provideServiceCheckout(
	log logger.Logger,
	books checkoutService.BookReader,
	orders *orderRepo.Repository,
	notifier checkoutService.Notifier,
	txManager *tx.Manager,
) *checkoutService.Checkout {
	return checkoutService.New(log, books, orders, notifier, txManager)
}

func provideServiceLedger(
	log logger.Logger,
	orders *orderRepo.Repository,
	sheet *sheets.Gateway,
	txManager *tx.Manager,
) *ledgerService.Service {
	// typed nil в интерфейсе сломал бы проверку "таблица не настроена"
	if sheet == nil {
		return ledgerService.New(log, orders, nil, txManager)
	}
	return ledgerService.New(log, orders, sheet, txManager)
}

func provideRedeliveryInterval(cfg *config.Config) RedeliveryInterval {
	return RedeliveryInterval(cfg.Tasks.NotificationRedeliveryInterval)
}

func provideNotificationRedeliveryTask(
	service *notificationService.Service,
	interval RedeliveryInterval,
) *notification_redelivery.NotificationRedelivery {
	return notification_redelivery.NewNotificationRedelivery(service, time.Duration(interval))
}

func provideTaskList(
	notificationRedeliveryTask *notification_redelivery.NotificationRedelivery,
) []background.Task {
	return []background.Task{
		notificationRedeliveryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
