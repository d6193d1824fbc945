package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
)

func TestWriteError(t *testing.T) {
	t.Run("error with status code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteError(rr, &internal_errors.ErrorWithStatusCode{Message: "Not found", StatusCode: http.StatusNotFound})

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
	})

	t.Run("plain errors become a generic 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteError(rr, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "pq:", "internals must not leak to clients")
	})
}

func TestDecode(t *testing.T) {
	type payload struct {
		Content string `json:"content"`
	}

	t.Run("valid json", func(t *testing.T) {
		var p payload
		require.NoError(t, Decode(strings.NewReader(`{"content":"hi"}`), &p))
		assert.Equal(t, "hi", p.Content)
	})

	t.Run("invalid json", func(t *testing.T) {
		var p payload
		err := Decode(strings.NewReader(`{broken`), &p)
		var e *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	})
}

func TestDecodeValidate(t *testing.T) {
	type payload struct {
		Content string `json:"content" validate:"required"`
	}

	t.Run("missing required field", func(t *testing.T) {
		var p payload
		err := DecodeValidate(strings.NewReader(`{}`), &p)
		var e *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	})

	t.Run("valid body", func(t *testing.T) {
		var p payload
		assert.NoError(t, DecodeValidate(strings.NewReader(`{"content":"hi"}`), &p))
	})
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"-1", -1, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"", 0, true},
		{"4.5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseIntParam(tt.input, "limit")
		if tt.wantErr {
			var e *internal_errors.ErrorWithStatusCode
			require.ErrorAs(t, err, &e, "input=%q", tt.input)
			assert.Equal(t, http.StatusBadRequest, e.StatusCode)
		} else {
			require.NoError(t, err, "input=%q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}
