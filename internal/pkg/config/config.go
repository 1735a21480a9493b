package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	NotifyModeAsync = "async"
	NotifyModeKafka = "kafka"
)

type (
	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Tasks struct {
		NotificationRedeliveryInterval time.Duration `envconfig:"BACKGROUND_NOTIFICATION_REDELIVERY_INTERVAL" default:"1m"`
		// заказ без единой записи об отправке старше GracePeriod считается потерянным
		NotificationGracePeriod time.Duration `envconfig:"BACKGROUND_NOTIFICATION_GRACE_PERIOD" default:"2m"`
		NotificationLookback    time.Duration `envconfig:"BACKGROUND_NOTIFICATION_LOOKBACK" default:"24h"`
		// суммарный лимит попыток по каналу с учетом всех перезапусков
		NotificationMaxAttempts int    `envconfig:"BACKGROUND_NOTIFICATION_MAX_ATTEMPTS" default:"10"`
		NotificationBatchSize   uint64 `envconfig:"BACKGROUND_NOTIFICATION_BATCH_SIZE" default:"100"`
	}

	HTTPServer struct {
		Port             string        `envconfig:"PORT"`
		RequestTimeout   time.Duration `envconfig:"MIDDLEWARE_REQUEST_TIMEOUT"`  // middleware timeout
		RateLimiterQPS   int           `envconfig:"MIDDLEWARE_RATE_LIMIT_QPS"`   // middleware rate limiter refill per second
		RateLimiterBurst int           `envconfig:"MIDDLEWARE_RATE_LIMIT_BURST"` // middleware rate limiter bucket size
		PprofEnabled     bool          `envconfig:"PPROF_ENABLED"`
		PprofPort        string        `envconfig:"PPROF_PORT"`
		GRPCHealthPort   string        `envconfig:"GRPC_HEALTH_PORT"`
	}

	Database struct {
		Host     string `envconfig:"POSTGRES_HOST"`
		Port     string `envconfig:"POSTGRES_PORT"`
		User     string `envconfig:"POSTGRES_USER"`
		Password string `envconfig:"POSTGRES_PASSWORD"`
		DBName   string `envconfig:"POSTGRES_DB"`
		SSLMode  string `envconfig:"POSTGRES_SSLMODE"`
		Migrate  bool   `envconfig:"POSTGRES_MIGRATE" default:"true"`
		MaxConns int32  `envconfig:"POSTGRES_MAX_CONNS" default:"10"`
		MinConns int32  `envconfig:"POSTGRES_MIN_CONNS" default:"2"`
	}

	Redis struct {
		Addr     string        `envconfig:"REDIS_ADDR"`
		Password string        `envconfig:"REDIS_PASSWORD"`
		DB       int           `envconfig:"REDIS_DB"`
		BookTTL  time.Duration `envconfig:"REDIS_BOOK_TTL" default:"5m"`
	}

	Kafka struct {
		PortHealthcheck string `envconfig:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         string `envconfig:"KAFKA_BROKERS"`
		Topic           string `envconfig:"KAFKA_TOPIC" default:"order.created"`
		ConsumerGroup   string `envconfig:"KAFKA_CONSUMER_GROUP"`

		SaramaVersion             string `envconfig:"KAFKA_SARAMA_VERSION"`
		ConsumerOffsetsAutocommit bool   `envconfig:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"`

		OrderCreatedProcessTimeout time.Duration `envconfig:"KAFKA_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT" default:"1m"`
	}

	Notifications struct {
		Mode           string        `envconfig:"NOTIFY_MODE" default:"async"`
		QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
		Workers        int           `envconfig:"NOTIFY_WORKERS" default:"4"`
		ChannelTimeout time.Duration `envconfig:"NOTIFY_CHANNEL_TIMEOUT" default:"10s"`
		ProcessTimeout time.Duration `envconfig:"NOTIFY_PROCESS_TIMEOUT" default:"1m"`
		MaxAttempts    int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"3"`
		AdminEmail     string        `envconfig:"ORDER_NOTIFICATION_EMAIL"`
		SiteURL        string        `envconfig:"SITE_URL"`
	}

	SMTP struct {
		Host     string        `envconfig:"EMAIL_HOST"`
		Port     int           `envconfig:"EMAIL_PORT" default:"587"`
		Username string        `envconfig:"EMAIL_HOST_USER"`
		Password string        `envconfig:"EMAIL_HOST_PASSWORD"`
		From     string        `envconfig:"DEFAULT_FROM_EMAIL"`
		UseTLS   bool          `envconfig:"EMAIL_USE_TLS" default:"true"`
		Timeout  time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
	}

	Twilio struct {
		AccountSID         string `envconfig:"TWILIO_ACCOUNT_SID"`
		AuthToken          string `envconfig:"TWILIO_AUTH_TOKEN"`
		WhatsAppFrom       string `envconfig:"TWILIO_WHATSAPP_FROM"`
		DefaultCountryCode string `envconfig:"WHATSAPP_DEFAULT_COUNTRY_CODE" default:"+91"`
	}

	Sheets struct {
		SpreadsheetID   string `envconfig:"GOOGLE_SHEET_ID"`
		SheetName       string `envconfig:"GOOGLE_SHEET_NAME" default:"Sheet1"`
		CredentialsJSON string `envconfig:"GOOGLE_CREDENTIALS"`
		CredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE"`
	}

	Config struct {
		Log           Log
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		Redis         Redis
		Kafka         Kafka
		Notifications Notifications
		SMTP          SMTP
		Twilio        Twilio
		Sheets        Sheets
	}
)

func (s SMTP) Enabled() bool {
	return s.Host != ""
}

func (t Twilio) Enabled() bool {
	return t.AccountSID != ""
}

func (s Sheets) Enabled() bool {
	return s.SpreadsheetID != ""
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

func (k Kafka) Enabled() bool {
	return k.Brokers != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}

	// секции разбираются по отдельности с пустым префиксом, чтобы имена переменных
	// совпадали с тегами один в один
	sections := []any{
		&cfg.Log,
		&cfg.Tasks,
		&cfg.Server,
		&cfg.Database,
		&cfg.Redis,
		&cfg.Kafka,
		&cfg.Notifications,
		&cfg.SMTP,
		&cfg.Twilio,
		&cfg.Sheets,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.NotificationRedeliveryInterval <= 0 {
		return errors.New("BACKGROUND_NOTIFICATION_REDELIVERY_INTERVAL must be positive")
	}

	if cfg.Tasks.NotificationMaxAttempts <= 0 {
		return errors.New("BACKGROUND_NOTIFICATION_MAX_ATTEMPTS must be positive")
	}
	if cfg.Tasks.NotificationBatchSize == 0 {
		return errors.New("BACKGROUND_NOTIFICATION_BATCH_SIZE must be positive")
	}

	switch cfg.Notifications.Mode {
	case NotifyModeAsync:
		if cfg.Notifications.Workers <= 0 {
			return errors.New("NOTIFY_WORKERS must be positive")
		}
		if cfg.Notifications.QueueSize <= 0 {
			return errors.New("NOTIFY_QUEUE_SIZE must be positive")
		}
	case NotifyModeKafka:
		if !cfg.Kafka.Enabled() {
			return errors.New("KAFKA_BROKERS is required when NOTIFY_MODE=kafka")
		}
	default:
		return fmt.Errorf("NOTIFY_MODE must be %q or %q, got %q", NotifyModeAsync, NotifyModeKafka, cfg.Notifications.Mode)
	}
	if cfg.Notifications.MaxAttempts <= 0 {
		return errors.New("NOTIFY_MAX_ATTEMPTS must be positive")
	}
	if cfg.Notifications.ChannelTimeout <= 0 {
		return errors.New("NOTIFY_CHANNEL_TIMEOUT must be positive")
	}
	if cfg.Notifications.ProcessTimeout <= 0 {
		return errors.New("NOTIFY_PROCESS_TIMEOUT must be positive")
	}

	if cfg.SMTP.Enabled() {
		if cfg.SMTP.From == "" {
			return errors.New("DEFAULT_FROM_EMAIL is required when EMAIL_HOST is set")
		}
		if cfg.Notifications.AdminEmail == "" {
			return errors.New("ORDER_NOTIFICATION_EMAIL is required when EMAIL_HOST is set")
		}
	}

	if cfg.Twilio.Enabled() {
		if cfg.Twilio.AuthToken == "" {
			return errors.New("TWILIO_AUTH_TOKEN is required when TWILIO_ACCOUNT_SID is set")
		}
		if cfg.Twilio.WhatsAppFrom == "" {
			return errors.New("TWILIO_WHATSAPP_FROM is required when TWILIO_ACCOUNT_SID is set")
		}
	}

	if cfg.Sheets.Enabled() && cfg.Sheets.CredentialsJSON == "" && cfg.Sheets.CredentialsFile == "" {
		return errors.New("GOOGLE_CREDENTIALS or GOOGLE_CREDENTIALS_FILE is required when GOOGLE_SHEET_ID is set")
	}

	return nil
}

// ValidateWorker - дополнительные требования для cmd/worker-order-notifications.
func ValidateWorker(cfg *Config) error {
	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.SaramaVersion == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.OrderCreatedProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT is required")
	}
	return nil
}
