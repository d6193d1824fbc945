package utils

import (
	"net/http"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
)

// strictPolicy strips every HTML element from user-generated text.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes all HTML from user-generated content before it is
// persisted.
func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}

type TopicTitleValidator struct{}

func (v *TopicTitleValidator) Title(title string) error {
	if utf8.RuneCountInString(title) > 200 {
		return &internal_errors.ErrorWithStatusCode{Message: "Title is too long", StatusCode: http.StatusBadRequest}
	}
	return nil
}

type MessageValidator struct{}

func (v *MessageValidator) Content(content string) error {
	if utf8.RuneCountInString(content) > 10_000 {
		return &internal_errors.ErrorWithStatusCode{Message: "Content is too long", StatusCode: http.StatusBadRequest}
	}
	return nil
}
