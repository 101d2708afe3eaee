package errors

import "net/http"

var ErrAssigneeNotFound = &Exception{
	Message:    "assigned user does not exist",
	StatusCode: http.StatusBadRequest,
}
