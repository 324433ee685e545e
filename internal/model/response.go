package model

// ErrorResponse is the envelope every failing handler returns
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// SuccessResponse wraps successful mutations with a human-readable message
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(msg, detail string) ErrorResponse {
	return ErrorResponse{Error: msg, Detail: detail}
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(msg string, data any) SuccessResponse {
	return SuccessResponse{Message: msg, Data: data}
}
