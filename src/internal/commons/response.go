package commons

import "strings"

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// Failure renders an unsuccessful response as one line for display,
// falling back to err when the response carries no message.
func (r Response[T]) Failure(err error) string {
	message := r.Message
	if message == "" && err != nil {
		message = err.Error()
	}
	if len(r.Errors) > 0 {
		message += ": " + strings.Join(r.Errors, "; ")
	}
	return message
}
