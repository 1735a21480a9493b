package dto

type PingResponse struct {
	Message  *string  `json:"message,omitempty"`
	Channels []string `json:"channels"`
}
