package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/talkboard-dev/talkboard/shared/errors"
	"github.com/talkboard-dev/talkboard/shared/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError renders err as a JSON {"error": message} body. Errors without an
// attached status code become a generic 500 and the detail stays server-side.
func WriteError(w http.ResponseWriter, err error) {
	if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
		WriteErrorMessage(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("internal error", "error", err)
	WriteErrorMessage(w, "Internal server error", http.StatusInternalServerError)
}

func WriteErrorMessage(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		logger.Log.Error("failed to encode error response", "error", err)
	}
}

func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// ParseIntParam parses an integer parameter and returns a meaningful error
func ParseIntParam(param string, paramName string) (int, error) {
	val, err := strconv.Atoi(param)
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("invalid %s: must be an integer", paramName),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}
