package books_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookstore/internal/dto"
	"bookstore/internal/entities"
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
	var filter entities.BookFilter
	if authorIDStr := r.URL.Query().Get("author_id"); authorIDStr != "" {
		authorID, err := strconv.ParseInt(authorIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.AuthorID = &authorID
	}

	bookEntities, err := h.service.GetBooks(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	bookDTOs := make([]dto.Book, len(bookEntities))
	for i, b := range bookEntities {
		bookDTOs[i] = dto.NewBook(b)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(bookDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
