package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Response is the uniform envelope every API operation answers with.
// swagger:model Response
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, data any, code int) error {
	return WriteJSON(w, Response{Success: true, Data: data, Errors: []string{}}, code)
}

func WriteError(w http.ResponseWriter, code int, messages ...string) error {
	if len(messages) == 0 {
		messages = []string{http.StatusText(code)}
	}
	return WriteJSON(w, Response{Success: false, Data: nil, Errors: messages}, code)
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		messages := make([]string, 0, len(ve))
		for _, fe := range ve {
			messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
		return WriteError(w, http.StatusBadRequest, messages...)
	}
	return WriteError(w, http.StatusBadRequest, "Missing required fields")
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
