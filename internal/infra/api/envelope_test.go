package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantData string
		wantMeta bool
		failed   bool
	}{
		{"envelope with data", `{"success":true,"message":"ok","data":{"id":"w1"}}`, `{"id":"w1"}`, false, false},
		{"envelope with meta", `{"success":true,"data":[1,2],"meta":{"page":1,"limit":2,"total":4,"totalPages":2}}`, `[1,2]`, true, false},
		{"envelope without data", `{"success":true,"message":"done"}`, ``, false, false},
		{"failed envelope", `{"success":false,"message":"nope"}`, ``, false, true},
		{"bare object", `{"id":"w1","title":"Our day"}`, `{"id":"w1","title":"Our day"}`, false, false},
		{"bare array", ` [{"id":"g1"}] `, `[{"id":"g1"}]`, false, false},
		{"bare scalar", `42`, `42`, false, false},
		{"empty body", ``, ``, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Unwrap([]byte(tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantData, string(env.Data))
			assert.Equal(t, tt.wantMeta, env.Meta != nil)
			assert.Equal(t, tt.failed, env.Failed)
		})
	}
}

func TestUnwrap_InvalidJSON(t *testing.T) {
	_, err := Unwrap([]byte(`{"success":`))
	assert.Error(t, err)
}

func TestParseErrorBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		message    string
		fieldCount int
	}{
		{"field list", `{"success":false,"message":"Validation failed","errors":[{"field":"email","message":"taken"}]}`, "Validation failed", 1},
		{"string list", `{"message":"bad","errors":["one","two"]}`, "bad", 2},
		{"error string", `{"error":"boom"}`, "boom", 0},
		{"error object", `{"error":{"message":"nested"}}`, "nested", 0},
		{"not json", `<html>`, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, fields := parseErrorBody([]byte(tt.body))
			assert.Equal(t, tt.message, message)
			assert.Len(t, fields, tt.fieldCount)
		})
	}
}

func TestPath(t *testing.T) {
	ep := Path("/api/v1/invites/:id", "a b/c")
	assert.Equal(t, "/api/v1/invites/:id", ep.Route)
	assert.Equal(t, "/api/v1/invites/a%20b%2Fc", ep.Path)

	q := Path("/api/v1/gallery").WithQuery("url", "https://cdn.example.com/x.jpg")
	assert.Equal(t, "/api/v1/gallery?url=https%3A%2F%2Fcdn.example.com%2Fx.jpg", q.URL())
	assert.Empty(t, Path("/api/v1/gallery").Query)
}
