package utils

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"tags stripped", "<b>bold</b> text", "bold text"},
		{"script removed entirely", "<script>alert(1)</script>safe", "safe"},
		{"markup only becomes empty", "<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}

func TestTopicTitleValidator(t *testing.T) {
	v := &TopicTitleValidator{}

	assert.NoError(t, v.Title("general"))
	assert.NoError(t, v.Title(strings.Repeat("x", 200)))

	err := v.Title(strings.Repeat("x", 201))
	var e *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
}

func TestMessageValidator(t *testing.T) {
	v := &MessageValidator{}

	assert.NoError(t, v.Content("hello"))
	assert.NoError(t, v.Content(strings.Repeat("x", 10_000)))

	err := v.Content(strings.Repeat("x", 10_001))
	var e *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
}
