package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"bookstore/internal/pkg/config"
)

const (
	serviceName   = "twilio"
	channelPrefix = "whatsapp:"

	// номер без кода страны берется по последним localDigits цифрам
	localDigits = 10
)

var ErrInvalidPhone = errors.New("invalid phone number")

type Gateway struct {
	client      client
	from        string
	countryCode string
}

// NewClient возвращает API клиента twilio, уже с учетными данными аккаунта.
func NewClient(cfg *config.Twilio) *twilioApi.ApiService {
	restClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return restClient.Api
}

func New(client client, from, countryCode string) *Gateway {
	return &Gateway{
		client:      client,
		from:        withChannelPrefix(from),
		countryCode: countryCode,
	}
}

// SendText отправляет WhatsApp сообщение. Библиотека twilio не принимает ctx,
// поэтому отмена проверяется только перед вызовом.
func (g *Gateway) SendText(ctx context.Context, phone, text string) error {
	to, err := NormalizePhone(phone, g.countryCode)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway whatsapp: %w", err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(g.from)
	params.SetTo(withChannelPrefix(to))
	params.SetBody(text)

	start := time.Now()
	resp, err := g.client.CreateMessage(params)
	GatewayRequestDuration.WithLabelValues(serviceName, resultLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("gateway whatsapp, send to %s: %w", to, err)
	}

	if resp != nil && resp.Status != nil && *resp.Status == "failed" {
		return fmt.Errorf("gateway whatsapp, send to %s: message status %s", to, *resp.Status)
	}

	return nil
}

// NormalizePhone приводит номер к E.164. Номер с "+" считается уже полным,
// иначе берутся последние 10 цифр и к ним добавляется код страны по умолчанию.
func NormalizePhone(phone, countryCode string) (string, error) {
	phone = strings.TrimSpace(phone)
	hasPlus := strings.HasPrefix(phone, "+")

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if hasPlus {
		if len(digits) < localDigits {
			return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
		}
		return "+" + digits, nil
	}

	if len(digits) < localDigits {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}

	return "+" + strings.TrimPrefix(countryCode, "+") + digits[len(digits)-localDigits:], nil
}

func withChannelPrefix(phone string) string {
	if strings.HasPrefix(phone, channelPrefix) {
		return phone
	}
	return channelPrefix + phone
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
