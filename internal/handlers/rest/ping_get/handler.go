package ping_get

import (
	"encoding/json"
	"net/http"

	"bookstore/internal/dto"
	"bookstore/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	channels ChannelLister
}

func New(log handlerLogger, channels ChannelLister) *Handler {
	return &Handler{
		log:      log.With(logger.NewField("handler", "ping_get")),
		channels: channels,
	}
}

// ServeHTTP отвечает pong и списком каналов, по которым сейчас уходят уведомления о заказах.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message:  &message,
		Channels: []string{},
	}
	for _, ch := range h.channels.Channels() {
		res.Channels = append(res.Channels, ch.String())
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
