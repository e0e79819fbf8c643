package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never reach
// the log. The request logging middleware and the masq layer both read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys that carry credentials from config:
// the hub API key and the Redis password among them.
var sensitiveFields = []string{"password", "secret", "token", "api_key", "apikey"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least ten characters per segment so dotted versions and SKUs pass.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// Credentials embedded in a URL, e.g. redis://:pw@cache:6379.
	urlUserinfoPattern = regexp.MustCompile(`[a-z][a-z0-9+.\-]*://[^/\s:@]*:[^/\s@]+@`)

	inlineKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|password)\s*[:=]\s*\S+`)
)

// newRedactAttr builds the ReplaceAttr hook every logger from New installs.
// Keys are matched by name and prefix; string values are matched by pattern
// to catch credentials that slipped into free-form fields.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(urlUserinfoPattern),
		masq.WithRegex(inlineKeyPattern),
	)

	return masq.New(opts...)
}
