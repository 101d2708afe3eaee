package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// NewValidation builds a 400 Exception for request-specific messages that
// the shared vars in this package cannot express.
func NewValidation(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusBadRequest}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
