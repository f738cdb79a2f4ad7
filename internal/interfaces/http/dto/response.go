// Package dto defines the HTTP response envelope and the error-code to
// status mapping used by every handler.
package dto

// Response is the uniform envelope for all API responses.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Meta struct {
	Total int `json:"total"`
}

func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func NewSuccessResponseWithMeta(data interface{}, meta *Meta) Response {
	return Response{Success: true, Data: data, Meta: meta}
}

func NewErrorResponse(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}

func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message, RequestID: requestID}}
}

func NewValidationErrorResponse(details []ValidationDetail) Response {
	return Response{Success: false, Error: &ErrorInfo{
		Code:    ErrCodeValidation,
		Message: "request validation failed",
		Details: details,
	}}
}
