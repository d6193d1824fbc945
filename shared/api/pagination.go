package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/talkboard-dev/talkboard/shared/domain"
	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
)

// Cursors are opaque to clients: base64 of the JSON-encoded keyset position.

func EncodeCursor(c domain.Cursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		// Cursor marshals two plain fields; this cannot fail at runtime.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeCursor(s string) (*domain.Cursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid cursor", StatusCode: http.StatusBadRequest}
	}
	var c domain.Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid cursor", StatusCode: http.StatusBadRequest}
	}
	return &c, nil
}
