package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the error type services return to the request boundary.
// The error handler middleware turns it into a JSON response; anything
// else becomes a 500.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewValidationError: missing or malformed request fields. Rejected before
// any external call, no side effects.
func NewValidationError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

// NewUnsupportedInputError: uploaded content is not a recognized
// text-bearing format.
func NewUnsupportedInputError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

// NewNotFoundError covers both "does not exist" and "exists but not
// yours" so record existence is never leaked.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

// NewConflictError: a competing request holds the resource.
func NewConflictError(message string) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

// NewGatewayError: the text-generation backend failed or timed out.
// Session state is unchanged; the caller may retry by resubmitting.
func NewGatewayError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadGateway, Message: message}
}
