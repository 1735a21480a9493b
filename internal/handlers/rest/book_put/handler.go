package book_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bookstore/internal/dto"
	"bookstore/internal/service/book"
	"bookstore/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var bookModifyDTO dto.BookModify
	err = json.NewDecoder(r.Body).Decode(&bookModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Опциональные параметры, id берется из пути
	bookModifyEntity, err := bookModifyDTO.ToEntity()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	bookModifyEntity.ID = &id

	bookEntity, err := h.service.UpdateBook(r.Context(), bookModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrMissingRequiredFields),
			errors.Is(err, book.ErrInvalidTitle),
			errors.Is(err, book.ErrInvalidGenre),
			errors.Is(err, book.ErrInvalidPrice),
			errors.Is(err, book.ErrAuthorNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, book.ErrBookNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewBook(*bookEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
