package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
)

func TestNewErrorResponse_Status(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err    error
		status int
	}{
		"validation":          {domain.FieldError("item_id", "is required"), http.StatusBadRequest},
		"not found":           {domain.ErrNotFound, http.StatusNotFound},
		"wrapped not found":   {fmt.Errorf("loading item: %w", domain.ErrNotFound), http.StatusNotFound},
		"forbidden":           {domain.ErrForbidden, http.StatusForbidden},
		"stream conflict":     {fmt.Errorf("stream is at sequence 3, expected 2: %w", domain.ErrConflict), http.StatusConflict},
		"hub unavailable":     {domain.ErrUnavailable, http.StatusBadGateway},
		"append deadline":     {fmt.Errorf("appending events: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		"unrecognised error":  {errors.New("disk on fire"), http.StatusInternalServerError},
		"canceled is unknown": {context.Canceled, http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/items/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, http.StatusText(tt.status), got.Title)
		})
	}
}

func TestNewErrorResponse_Envelope(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/items?dry=1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	assert.Equal(t, "about:blank", got.Type)
	assert.Equal(t, "/api/v1/items?dry=1", got.Instance)
	assert.Equal(t, domain.ErrNotFound.Error(), got.Detail)
	assert.Nil(t, got.Errors)
}

func TestNewErrorResponse_WithholdsInternalDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/items/42", nil)
	got := dto.NewErrorResponse(r, errors.New("sqlite: database is locked"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Empty(t, got.Detail)
}

func TestNewErrorResponse_FieldDetails(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"sku":            "is required",
		"description":    "is required",
		"path.variantId": "must be a valid UUID",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/items/1/variants", nil)
	got := dto.NewErrorResponse(r, verr)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.description", Message: "is required"},
		{Location: "body.sku", Message: "is required"},
		{Location: "path.variantId", Message: "must be a valid UUID"},
	}, got.Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/items", nil)

	dto.WriteErrorResponse(w, r, domain.FieldError("sku", "is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "about:blank", resp.Type)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "body.sku", resp.Errors[0].Location)
	assert.Equal(t, "is required", resp.Errors[0].Message)
}

func TestWriteErrorResponse_OmitsEmptyMembers(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/items/42", nil)

	dto.WriteErrorResponse(w, r, errors.New("boom"))

	var raw map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.NotContains(t, raw, "detail")
	assert.NotContains(t, raw, "errors")
	assert.InDelta(t, float64(http.StatusInternalServerError), raw["status"], 0)
}
