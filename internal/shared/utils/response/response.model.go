package response

// ApiResponse is the envelope for successful responses
type ApiResponse struct {
	Success bool        `json:"success"` // always true
	Data    interface{} `json:"data"`    // payload, may be null
	Message string      `json:"message"` // human-readable message
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Success bool   `json:"success"` // always false
	Error   string `json:"error"`   // human-readable error
	Code    int    `json:"code"`    // HTTP status code
}
