package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and
// handles errors. Returns true if successful, false if an error response was
// already written.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code and payload.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Client disconnects can't be recovered from here.
		return
	}
}

// WriteData writes a success envelope mirroring the upstream API's shape.
func WriteData(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, map[string]any{"success": true, "data": data})
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
	// Fields carries per-field validation messages when present.
	Fields map[string]string
}

// WriteError writes a JSON error envelope using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	body := map[string]any{
		"success": false,
		"error":   p.ErrCode,
		"message": p.Err.Error(),
	}
	if len(p.Fields) > 0 {
		body["fields"] = p.Fields
	}
	WriteJSON(w, p.Code, body)
}

// WriteAppError maps an application error onto the wire. Validation errors
// carry per-field messages when the cause is a validator error set.
func WriteAppError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	errCode := "internal_error"

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation:
		code, errCode = http.StatusBadRequest, "validation_failed"
	case apperrors.ErrCodeUnauthorized:
		code, errCode = http.StatusUnauthorized, "unauthorized"
	case apperrors.ErrCodeDecode:
		code, errCode = http.StatusUnauthorized, "invalid_token"
	case apperrors.ErrCodeForbidden:
		code, errCode = http.StatusForbidden, "forbidden"
	case apperrors.ErrCodeNotFound:
		code, errCode = http.StatusNotFound, "not_found"
	case apperrors.ErrCodeGateway:
		code, errCode = http.StatusBadGateway, "upstream_failed"
	}

	params := ErrorParams{Code: code, ErrCode: errCode, Err: err}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		params.Fields = fieldMessages(verrs)
	}
	if field := apperrors.GetField(err); field != "" && params.Fields == nil {
		params.Fields = map[string]string{field: err.Error()}
	}

	WriteError(w, params)
}
