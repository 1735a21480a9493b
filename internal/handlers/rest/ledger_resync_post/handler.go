package ledger_resync_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/dto"
	"bookstore/internal/service/ledger"
	"bookstore/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ledger_resync_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Resync(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrLedgerDisabled):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("ledger resync failed")
			w.WriteHeader(http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.LedgerResyncResponse{Rows: rows})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
