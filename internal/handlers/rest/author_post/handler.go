package author_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/dto"
	"bookstore/internal/entities"
	"bookstore/internal/service/author"
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
	var authorCreateDTO dto.AuthorCreate
	err := json.NewDecoder(r.Body).Decode(&authorCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	authorEntity, err := h.service.CreateAuthor(r.Context(), entities.AuthorModify{
		Name: authorCreateDTO.Name,
		Bio:  authorCreateDTO.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, author.ErrMissingRequiredFields),
			errors.Is(err, author.ErrInvalidName):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AuthorCreateResponse{
		ID: authorEntity.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
