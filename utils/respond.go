package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"bistro-boss/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes the {"error":true,"message":...} body.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{Error: true, Message: message})
}

// DecodeDocument reads a JSON object body without imposing a schema. A
// client-supplied _id is dropped so the store assigns one.
func DecodeDocument(r *http.Request) (models.Document, error) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("request body is empty")
		}
		return nil, fmt.Errorf("invalid request body")
	}
	if doc == nil {
		return nil, fmt.Errorf("invalid request body")
	}
	delete(doc, "_id")
	return doc, nil
}

// DecodeJSON decodes the request body into dst and validates struct tags.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %s: failed %s", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid request body")
	}
	return nil
}
