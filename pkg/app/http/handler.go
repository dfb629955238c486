// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
// Internal errors are logged with the request route; clients only see the
// ServiceError message.
//
// Usage with chi:
//
//	r.Put("/{account}", http.HandleError(logger, handler.track))
func HandleError(logger *zap.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		if logger != nil && apperrors.IsInternalError(err) {
			logger.Error("Request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err))
		}
		DefaultErrorHandler(w, err)
	}
}

// DefaultErrorHandler writes err as a JSON error response
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	resp := errorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		resp.ErrMsg = svcErr.Message
		resp.ErrMsgCode = svcErr.StatusCode()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.ErrMsgCode)
	_ = json.NewEncoder(w).Encode(&resp)
}
