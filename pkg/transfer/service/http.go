package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-tracker/pkg/app/http"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const maxBodySize = 1 << 16

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the transfer service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/api/v1/transfers", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(logger, h.history))
		r.Put("/{account}", apphttp.HandleError(logger, h.track))
		r.Get("/{account}", apphttp.HandleError(logger, h.status))
		r.Delete("/{account}", apphttp.HandleError(logger, h.cancel))
		r.Put("/{account}/provider-chain", apphttp.HandleError(logger, h.providerChain))
	})
}

func (h *HTTP) track(w http.ResponseWriter, r *http.Request) error {
	var req transfer.TrackRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Track(r.Context(), chi.URLParam(r, "account"), &req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Status(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) cancel(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Cancel(r.Context(), chi.URLParam(r, "account")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) providerChain(w http.ResponseWriter, r *http.Request) error {
	var req transfer.ProviderChainRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.SetProviderChain(r.Context(), chi.URLParam(r, "account"), req.ChainID)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return apperrors.BadRequestError(err, "invalid limit")
		}
		limit = n
	}

	resp, err := h.service.History(r.Context(), r.URL.Query().Get("account"), limit)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}
