package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
)

// lambdaError is the error document Lambda returns for failed
// invocations. The same shape is used for every JSON error body this
// package writes so that clients only need to decode one format.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

// errResponseStackTrace is shared by every error body. No stack is
// collected so there is nothing to put in it.
var errResponseStackTrace = []string{}

func responseFromError(err error) lambdaError {
	errType := reflect.TypeOf(err)
	if errType.Kind() == reflect.Ptr {
		errType = errType.Elem()
	}
	return lambdaError{
		Message:    err.Error(),
		Type:       errType.Name(),
		StackTrace: errResponseStackTrace,
	}
}

// statusFromError maps invocation failures onto the status codes the
// Lambda Invoke API uses. Payload decoding failures are the caller's
// fault and everything else is treated as a function failure.
func statusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		invalidErr  *json.InvalidUnmarshalError
		invalidUTF8 *json.InvalidUTF8Error    // nolint
		fieldErr    *json.UnmarshalFieldError // nolint
	)
	switch {
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.As(err, &invalidErr),
		errors.As(err, &invalidUTF8),
		errors.As(err, &fieldErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}
