package errors

import "net/http"

// HTTPError is a request rejection carrying the status code the handler
// should answer with. Validators build it, handlers write it.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Write sends the rejection as a plain-text response.
func (e *HTTPError) Write(w http.ResponseWriter) {
	http.Error(w, e.Message, e.Code)
}

// BadRequest builds the 400 rejection the form validators return.
func BadRequest(msg string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: msg}
}
