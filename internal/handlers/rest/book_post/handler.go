package book_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var bookModifyDTO dto.BookModify
	err := json.NewDecoder(r.Body).Decode(&bookModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookModifyEntity, err := bookModifyDTO.ToEntity()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookEntity, err := h.service.CreateBook(r.Context(), bookModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrMissingRequiredFields),
			errors.Is(err, book.ErrInvalidTitle),
			errors.Is(err, book.ErrInvalidGenre),
			errors.Is(err, book.ErrInvalidPrice),
			errors.Is(err, book.ErrAuthorNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewBook(*bookEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
