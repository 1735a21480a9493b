package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc вызывается перед каждым повтором: err - ошибка прошлой попытки, next - пауза до следующей.
type OnRetryFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Ограничение на количество повторов поверх MaxElapsedTime, 0 - без ограничения.
	// Первая попытка повтором не считается: MaxRetries=2 дает максимум 3 вызова fn.
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	// Для метрик и логов повторов, может быть nil.
	OnRetry OnRetryFunc
}
