// Package sampleapi serves a fixed statistics data set with the same HTTP
// contract as the production backend.
package sampleapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
	"github.com/odyssey-erp/energy-dashboard/internal/platform/httpx"
)

// Handler exposes the sample backend endpoints.
type Handler struct {
	logger *slog.Logger
	data   Dataset
}

// NewHandler constructs the handler over a data set.
func NewHandler(logger *slog.Logger, data Dataset) *Handler {
	return &Handler{logger: logger, data: data}
}

// MountRoutes registers the backend endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get(energyapi.PathSummary, h.handleSummary)
	r.Get(energyapi.PathHourlyAvg, h.handleHourly)
	r.Get(energyapi.PathDailyAvg, h.handleDaily)
	r.Get(energyapi.PathTopConsumers, h.handleConsumers)
	r.Get(energyapi.PathModelInfo, h.handleModelInfo)
	r.Post(energyapi.PathPredict, h.handlePredict)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrNotFound, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondError(w, fmt.Errorf("%w: %s %s", httpx.ErrMethodNotAllowed, r.Method, r.URL.Path))
	})
}

// Router returns a standalone chi router serving the sample endpoints.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.data.Summary)
}

func (h *Handler) handleHourly(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.data.Hourly)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.data.Daily)
}

func (h *Handler) handleConsumers(w http.ResponseWriter, r *http.Request) {
	consumers := h.data.Consumers
	if consumers == nil {
		consumers = []energyapi.ConsumerEntry{}
	}
	httpx.JSON(w, http.StatusOK, consumers)
}

func (h *Handler) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, struct {
		energyapi.ModelInfo
		Status string `json:"status"`
	}{ModelInfo: h.data.Model, Status: energyapi.StatusSuccess})
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	var in energyapi.PredictionRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		msg := "invalid prediction payload"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			msg = "invalid value for " + typeErr.Field
		}
		if h.logger != nil {
			h.logger.Warn("decode prediction", slog.Any("error", err))
		}
		httpx.ErrorJSON(w, http.StatusBadRequest, msg)
		return
	}
	httpx.JSON(w, http.StatusOK, energyapi.PredictionResponse{
		Status:     energyapi.StatusSuccess,
		Prediction: Predict(in),
	})
}
