package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bookstore/internal/dto"
	"bookstore/internal/entities"
	"bookstore/internal/service/book"
	"bookstore/internal/service/checkout"
	"bookstore/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "checkout_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	form := entities.CheckoutForm{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Phone:    r.PostForm.Get("phone"),
		Address:  r.PostForm.Get("address"),
		Quantity: r.PostForm.Get("quantity"),
		Notes:    r.PostForm.Get("notes"),
	}

	order, err := h.service.Checkout(r.Context(), bookID, form)
	if err != nil {
		var validationErr *checkout.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.CheckoutValidationError{
				Errors: validationErr.Fields,
				Values: dto.CheckoutValues{
					Name:     form.Name,
					Email:    form.Email,
					Phone:    form.Phone,
					Address:  form.Address,
					Quantity: form.Quantity,
					Notes:    form.Notes,
				},
			})
		case errors.Is(err, checkout.ErrBookNotFound),
			errors.Is(err, book.ErrBookNotFound):
			h.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "book not found"})
		default:
			h.log.With(
				logger.NewField("book_id", bookID),
				logger.NewField("error", err),
			).Error("checkout failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	redirect := "/order/" + strconv.FormatInt(order.ID, 10)
	w.Header().Set("Location", redirect)
	h.writeJSON(w, http.StatusCreated, dto.CheckoutResponse{
		OrderID:  order.ID,
		Status:   order.Status.String(),
		Redirect: redirect,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
