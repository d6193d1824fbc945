package handler

import (
	"net/http"

	"github.com/talkboard-dev/talkboard/shared/api"
	"github.com/talkboard-dev/talkboard/shared/domain"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

// parsePageParams reads the optional limit and cursor query parameters.
// Limit clamping happens in the services.
func parsePageParams(r *http.Request) (int, *domain.Cursor, error) {
	var limit int
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		if limit, err = utils.ParseIntParam(limitStr, "limit"); err != nil {
			return 0, nil, err
		}
	}

	cursor, err := api.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		return 0, nil, err
	}
	return limit, cursor, nil
}
