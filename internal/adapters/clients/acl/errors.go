// Package acl implements the Anti-Corruption Layer that translates between
// the downstream catalog hub's representations and our own types. The hub
// wire format and its translator live in the acl/hub subpackage; shared
// request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
)

// maxErrorBodySize bounds how much of a hub error body is read.
const maxErrorBodySize = 64 << 10

// statusErrors maps hub status codes onto domain sentinels. Codes not listed
// fall through to the 5xx rule or to an unclassified error.
var statusErrors = map[int]error{
	http.StatusBadRequest:            domain.ErrValidation,
	http.StatusUnauthorized:          domain.ErrForbidden,
	http.StatusForbidden:             domain.ErrForbidden,
	http.StatusNotFound:              domain.ErrNotFound,
	http.StatusRequestTimeout:        domain.ErrUnavailable,
	http.StatusConflict:              domain.ErrConflict,
	http.StatusRequestEntityTooLarge: domain.ErrValidation,
	http.StatusUnprocessableEntity:   domain.ErrValidation,
	http.StatusTooManyRequests:       domain.ErrUnavailable,
}

// problem is the subset of an RFC 9457 body the hub sends that we use.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a non-2xx hub response to a domain error. The
// problem detail, when present, becomes the message; field errors on a
// validation status become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	msg := p.Detail
	if msg == "" {
		msg = p.Title
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("catalog hub: unexpected status %d: %s", resp.StatusCode, msg)
	}

	if sentinel == domain.ErrValidation && len(p.Errors) > 0 {
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}

	return fmt.Errorf("catalog hub: %s: %w", msg, sentinel)
}

// readProblem decodes an application/problem+json body. Anything else,
// including a malformed body, yields the zero problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}

	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || json.Unmarshal(b, &p) != nil {
		return problem{}
	}
	return p
}
