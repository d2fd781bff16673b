package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

// Envelope is the uniform response body. Every JSON response uses it except
// writeServerError, which keeps the legacy two-field shape.
type Envelope struct {
	Success bool        `json:"success"`
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, ok bool, message string, data interface{}) {
	writeJSON(w, status, Envelope{
		Success: ok,
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// writeServerError surfaces the raw error message with HTTP 500.
func writeServerError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: false, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter) {
	writeSuccess(w, http.StatusBadRequest, false, constant.ErrorTypeMessage[constant.ErrInternal], nil)
}

// writeError routes CustomError values to their mapped status and treats
// anything else as an unexpected server failure.
func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if errors.As(err, &ce) {
		writeSuccess(w, ce.ErrorHTTPCode(), false, ce.Error(), nil)
		return
	}
	writeServerError(w, err)
}

// validationMessage surfaces the first failed rule.
func validationMessage(err error) string {
	var verrs gpvalidator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Sprintf("%s failed on the '%s' rule", strings.ToLower(f.Field()), f.Tag())
	}
	return constant.ErrorTypeMessage[constant.ErrInvalidRequest]
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeSuccess(w, http.StatusBadRequest, false, validationMessage(err), nil)
}
