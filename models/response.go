package models

// Response is the JSON envelope of every HTTP reply.
type Response struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
}
