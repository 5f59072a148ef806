package httppresentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kashoe/chessclub-api/internal/application"
	"github.com/kashoe/chessclub-api/internal/domain/event"
	"github.com/kashoe/chessclub-api/internal/domain/lesson"
	"github.com/kashoe/chessclub-api/internal/domain/order"
	"github.com/kashoe/chessclub-api/internal/domain/product"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks request bodies that are not JSON of the expected shape.
var errBadRequest = errors.New("malformed request body")

type errorResponse struct {
	Detail string                `json:"detail"`
	Errors []validate.FieldError `json:"errors,omitempty"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return decodeError(json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst))
}

// decodeOptionalJSON is decodeJSON that treats an empty body as "no fields".
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return decodeError(err)
}

func decodeError(err error) error {
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validate.Field(typeErr.Field, fmt.Sprintf("expected %s", typeErr.Type))
	}
	if errors.Is(err, isotime.ErrFormat) {
		return validate.Field("body", "invalid datetime format")
	}
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeDomainError maps use-case errors to status codes. Unexpected errors are logged and
// hidden from the client.
func writeDomainError(w http.ResponseWriter, log observability.Logger, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "Validation failed", Errors: verr.Fields})
	case errors.Is(err, errBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, product.ErrNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, event.ErrNotFound):
		writeError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, lesson.ErrNotFound):
		writeError(w, http.StatusNotFound, "Registration not found")
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	default:
		log.Error("request_failed", observability.Err(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
