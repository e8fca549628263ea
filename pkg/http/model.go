package http

// ErrorResponse is the envelope used for non-2xx responses. Successful data
// endpoints return their payload raw, without an envelope.
type ErrorResponse struct {
	Status  int         `json:"status" example:"404"`
	Message string      `json:"message" example:"Not Found"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"max_companies"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
