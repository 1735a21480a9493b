package notification

import (
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
	"bookstore/pkg/retrier"
	"bookstore/pkg/retrier/backoff_adapter"
)

type DispatcherConfig struct {
	// Попыток на канал за один Dispatch, включая первую.
	MaxAttempts     int
	AttemptTimeout  time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		MaxAttempts:     3,
		AttemptTimeout:  10 * time.Second,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

type ChannelDispatcher struct {
	log      serviceLogger
	channels []Channel
	config   DispatcherConfig
}

func NewDispatcher(log serviceLogger, channels []Channel, config DispatcherConfig) *ChannelDispatcher {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	return &ChannelDispatcher{
		log:      log.With(logger.NewField("component", "notification_dispatcher")),
		channels: channels,
		config:   config,
	}
}

// Channels возвращает имена подключенных каналов в порядке регистрации.
func (d *ChannelDispatcher) Channels() []entities.Channel {
	names := make([]entities.Channel, 0, len(d.channels))
	for _, ch := range d.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Dispatch отправляет заказ во все каналы (или только в перечисленные в only) параллельно.
// Каналы не влияют друг на друга: ошибка, паника или зависание одного канала
// превращается в failed outcome только этого канала. Порядок результата совпадает
// с порядком регистрации каналов.
func (d *ChannelDispatcher) Dispatch(ctx context.Context, order *entities.Order, receipt *entities.Receipt, only ...entities.Channel) []entities.NotificationOutcome {
	selected := make([]Channel, 0, len(d.channels))
	for _, ch := range d.channels {
		if len(only) == 0 || slices.Contains(only, ch.Name()) {
			selected = append(selected, ch)
		}
	}

	outcomes := make([]entities.NotificationOutcome, len(selected))

	var g errgroup.Group
	for i, ch := range selected {
		g.Go(func() error {
			outcomes[i] = d.deliver(ctx, ch, order, receipt)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (d *ChannelDispatcher) deliver(ctx context.Context, ch Channel, order *entities.Order, receipt *entities.Receipt) entities.NotificationOutcome {
	name := ch.Name()
	start := time.Now()

	attempts := 0
	r := backoff_adapter.New(retrier.Config{
		InitialInterval: d.config.InitialInterval,
		MaxInterval:     d.config.MaxInterval,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      uint64(d.config.MaxAttempts - 1),
		OnRetry: func(err error, next time.Duration) {
			ChannelRetriesTotal.WithLabelValues(name.String()).Inc()
			d.log.Debug("retrying notification channel",
				logger.NewField("order_id", order.ID),
				logger.NewField("channel", name.String()),
				logger.NewField("attempt", attempts),
				logger.NewField("next", next.String()),
				logger.NewField("error", err),
			)
		},
	})

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		return d.attempt(ctx, ch, order, receipt)
	})

	outcome := entities.NotificationOutcome{
		OrderID:   order.ID,
		Channel:   name,
		Status:    entities.OutcomeSucceeded,
		Attempts:  attempts,
		UpdatedAt: time.Now(),
	}

	channelLog := d.log.With(
		logger.NewField("order_id", order.ID),
		logger.NewField("channel", name.String()),
		logger.NewField("attempts", attempts),
	)

	if err != nil {
		chErr := &ChannelError{Channel: name, OrderID: order.ID, Attempts: attempts, Err: err}
		outcome.Status = entities.OutcomeFailed
		outcome.Error = chErr.Error()
		channelLog.Error("notification channel failed", logger.NewField("error", chErr))
	} else {
		channelLog.Info("notification delivered")
	}

	ChannelDeliveriesTotal.WithLabelValues(name.String(), outcome.Status.String()).Inc()
	ChannelDuration.WithLabelValues(name.String(), outcome.Status.String()).Observe(time.Since(start).Seconds())

	return outcome
}

// attempt выполняет одну попытку. Send, который не уважает ctx, не блокирует диспетчер:
// по таймауту попытка считается неуспешной, а горутина досылается в фоне.
func (d *ChannelDispatcher) attempt(ctx context.Context, ch Channel, order *entities.Order, receipt *entities.Receipt) error {
	if d.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.AttemptTimeout)
		defer cancel()
	}

	result := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("%w: %v\n%s", ErrChannelPanic, r, debug.Stack())
			}
		}()
		result <- ch.Send(ctx, order, receipt)
	}()

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return fmt.Errorf("channel %s: %w", ch.Name(), ctx.Err())
	}
}
