package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"bookstore/internal/pkg/config"
)

var (
	ErrNotConfigured      = errors.New("google credentials are not configured")
	ErrMalformed          = errors.New("google credentials are malformed")
	ErrMissingRequiredKey = errors.New("google credentials miss a required key")
)

// Google - учетные данные service account, прочитанные один раз при старте.
// Хранятся только в памяти.
type Google struct {
	raw         []byte
	ClientEmail string
	ProjectID   string
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadGoogle читает JSON из GOOGLE_CREDENTIALS, иначе из GOOGLE_CREDENTIALS_FILE.
func LoadGoogle(cfg *config.Sheets) (*Google, error) {
	var raw []byte
	switch {
	case cfg.CredentialsJSON != "":
		raw = []byte(cfg.CredentialsJSON)
	case cfg.CredentialsFile != "":
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		raw = data
	default:
		return nil, ErrNotConfigured
	}

	return ParseGoogle(raw)
}

func ParseGoogle(raw []byte) (*Google, error) {
	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if sa.ClientEmail == "" {
		return nil, fmt.Errorf("%w: client_email", ErrMissingRequiredKey)
	}
	if sa.PrivateKey == "" {
		return nil, fmt.Errorf("%w: private_key", ErrMissingRequiredKey)
	}

	return &Google{
		raw:         raw,
		ClientEmail: sa.ClientEmail,
		ProjectID:   sa.ProjectID,
	}, nil
}

// JSON возвращает копию исходного документа для option.WithCredentialsJSON.
func (g *Google) JSON() []byte {
	out := make([]byte, len(g.raw))
	copy(out, g.raw)
	return out
}
