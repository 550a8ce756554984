package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/forgo/shows/api/internal/model"
)

// ErrResultNotObject is returned when a response result would not encode as a JSON object
var ErrResultNotObject = errors.New("response result must be a JSON object")

// Response is the envelope every endpoint responds with
type Response struct {
	Code    int         `json:"code"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

// NewResponse builds an envelope. A zero status means 200.
// data must be nil, a map keyed by strings, a struct, or a pointer to one of those.
func NewResponse(data interface{}, status int, message string) (*Response, error) {
	if status == 0 {
		status = http.StatusOK
	}

	result, err := objectResult(data)
	if err != nil {
		return nil, err
	}

	return &Response{
		Code:    status,
		Success: status >= 200 && status < 300,
		Message: message,
		Result:  result,
	}, nil
}

// objectResult checks that data encodes as a JSON object; nil maps and pointers become nil
func objectResult(data interface{}) (interface{}, error) {
	if data == nil {
		return nil, nil
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return data, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: got map keyed by %s", ErrResultNotObject, v.Type().Key())
		}
		if v.IsNil() {
			return nil, nil
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrResultNotObject, data)
	}
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteResponse writes an envelope. If data cannot be formatted the client
// gets a 500 envelope carrying the formatting error instead.
func WriteResponse(w http.ResponseWriter, status int, message string, data interface{}) {
	resp, err := NewResponse(data, status, message)
	if err != nil {
		slog.Error("format response", slog.String("error", err.Error()))
		resp = &Response{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}
	WriteJSON(w, resp.Code, resp)
}

// WriteError writes an error envelope with a null result
func WriteError(w http.ResponseWriter, err *model.APIError) {
	WriteResponse(w, err.Status, err.Message, nil)
}

// DecodeJSON decodes a JSON request body into the given struct.
// Unknown fields are ignored.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
