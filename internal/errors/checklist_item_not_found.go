package errors

import "net/http"

var ErrChecklistItemNotFound = &Exception{
	Message:    "checklist item not found",
	StatusCode: http.StatusNotFound,
}
