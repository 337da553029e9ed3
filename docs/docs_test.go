package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "/api/v1", parsed.BasePath)
	for path, methods := range map[string][]string{
		"/register":             {"post"},
		"/login":                {"post"},
		"/logout":               {"post"},
		"/feed":                 {"get"},
		"/tweets":               {"post"},
		"/tweets/{id}":          {"get", "put", "delete"},
		"/tweets/{id}/like":     {"post", "delete"},
		"/tweets/{id}/likes":    {"get"},
		"/users":                {"get"},
		"/users/{id}":           {"get"},
		"/users/{id}/follow":    {"post", "delete"},
		"/users/{id}/following": {"get"},
		"/users/{id}/followers": {"get"},
	} {
		for _, m := range methods {
			assert.Contains(t, parsed.Paths[path], m, "%s %s", m, path)
		}
	}
}
