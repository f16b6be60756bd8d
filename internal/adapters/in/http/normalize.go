package http

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

// NormalizeJSONKeys is echo middleware that rewrites snake_case keys in
// inbound JSON bodies to camelCase before binding. Integrations written
// against the legacy snake_case contract keep working without the handlers
// or DTOs knowing about it.
func NormalizeJSONKeys(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Body == nil || !strings.Contains(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
			return next(c)
		}

		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		_ = req.Body.Close()

		if len(bytes.TrimSpace(body)) > 0 {
			normalized, normErr := normalizeKeys(body)
			if normErr == nil {
				// Malformed JSON passes through untouched so binding
				// reports the real error.
				body = normalized
			}
		}

		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
		return next(c)
	}
}

func normalizeKeys(body []byte) ([]byte, error) {
	var payload any
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}

	return json.Marshal(normalizeValue(payload))
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(v))
		for key, nested := range v {
			normalized[snakeToCamel(key)] = normalizeValue(nested)
		}
		return normalized
	case []any:
		for i, nested := range v {
			v[i] = normalizeValue(nested)
		}
		return v
	default:
		return value
	}
}

// snakeToCamel converts snake_case to camelCase. Keys already in camelCase
// contain no underscores and come back unchanged.
func snakeToCamel(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	parts := strings.Split(key, "_")
	var b strings.Builder
	b.Grow(len(key))
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
