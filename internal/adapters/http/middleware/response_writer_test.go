package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	t.Parallel()

	rec := record(httptest.NewRecorder())

	if rec.status != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.status, http.StatusOK)
	}
	if rec.wroteHeader {
		t.Error("wroteHeader = true before any write")
	}
}

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	inner := httptest.NewRecorder()
	rec := record(inner)

	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusConflict)

	if rec.status != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.status, http.StatusCreated)
	}
	if inner.Code != http.StatusCreated {
		t.Errorf("inner Code = %d, want %d", inner.Code, http.StatusCreated)
	}
}

func TestStatusRecorder_CountsBytes(t *testing.T) {
	t.Parallel()

	rec := record(httptest.NewRecorder())

	_, _ = rec.Write([]byte(`{"item_id":`))
	n, err := rec.Write([]byte(`"mug"}`))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 6 {
		t.Errorf("Write() = %d, want 6", n)
	}
	if rec.bytes != 17 {
		t.Errorf("bytes = %d, want 17", rec.bytes)
	}
	if !rec.wroteHeader {
		t.Error("wroteHeader = false after Write")
	}
}

func TestStatusRecorder_ReusesOuterRecorder(t *testing.T) {
	t.Parallel()

	outer := record(httptest.NewRecorder())
	inner := record(outer)

	if inner != outer {
		t.Fatal("record() wrapped an existing recorder")
	}

	inner.WriteHeader(http.StatusNotFound)
	if outer.status != http.StatusNotFound {
		t.Errorf("outer status = %d, want %d", outer.status, http.StatusNotFound)
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	inner := httptest.NewRecorder()
	rec := record(inner)

	if rec.Unwrap() != inner {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
