package order_receipt_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bookstore/internal/receipt"
	"bookstore/internal/service/order"
	"bookstore/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	generator Generator
}

func New(log handlerLogger, service Service, generator Generator) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_receipt_get"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		generator: generator,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	content, err := h.generator.Generate(orderEntity)
	if err != nil {
		h.log.With(
			logger.NewField("order_id", id),
			logger.NewField("error", err),
		).Error("generate receipt")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+receipt.Filename(id)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write receipt response")
	}
}
