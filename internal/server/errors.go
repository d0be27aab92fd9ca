package server

import (
	"net/http"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
	pkgio "github.com/matzehuels/factorygraph/pkg/io"
)

// errorBody is the JSON document returned for every failed request.
type errorBody struct {
	Code    fgerrors.Code `json:"code"`
	Message string        `json:"message"`
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code fgerrors.Code) int {
	switch code {
	case fgerrors.ErrCodeInvalidInput, fgerrors.ErrCodeInvalidFormat, fgerrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case fgerrors.ErrCodeNotFound, fgerrors.ErrCodeItemNotFound, fgerrors.ErrCodeRecipeNotFound:
		return http.StatusNotFound
	case fgerrors.ErrCodeNoRoute:
		return http.StatusUnprocessableEntity
	case fgerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := fgerrors.GetCode(err)
	if code == "" {
		code = fgerrors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Code: code, Message: fgerrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = pkgio.WriteJSON(w, v)
}

func errNotFoundRoute(path string) error {
	return fgerrors.New(fgerrors.ErrCodeNotFound, "no route for %s", path)
}
