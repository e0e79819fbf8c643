package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
)

// problemContentType is the media type of every error body.
const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field. Location is "path.<param>" for a
// malformed path parameter and "body.<field>" for everything else.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusTable is checked top to bottom; the first sentinel the error wraps
// decides the status. A deadline hit while replaying or appending a stream
// is reported as 504.
var statusTable = []struct {
	sentinel error
	status   int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI. Errors that match no domain sentinel become a 500 whose
// detail is withheld from the client.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, known := statusOf(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}
	if known {
		resp.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes the problem document for err with its status
// code and the application/problem+json content type.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

func statusOf(err error) (int, bool) {
	for _, row := range statusTable {
		if errors.Is(err, row.sentinel) {
			return row.status, true
		}
	}
	return http.StatusInternalServerError, false
}

// fieldDetails turns validation fields into details ordered by location.
// Keys that already name a location ("path.itemId") keep it.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		location := field
		if !strings.Contains(field, ".") {
			location = "body." + field
		}
		details = append(details, ErrorDetail{Location: location, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
