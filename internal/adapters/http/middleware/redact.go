package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into slog attributes sorted by name.
// Credential headers keep their name but lose their value: those listed in
// logging.SensitiveHeaders and any whose name mentions a token or secret.
// Repeated values are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if isCredentialHeader(key) {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}

func isCredentialHeader(name string) bool {
	name = strings.ToLower(name)
	return logging.SensitiveHeaders[name] ||
		strings.Contains(name, "token") ||
		strings.Contains(name, "secret")
}
