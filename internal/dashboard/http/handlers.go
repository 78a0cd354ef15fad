package dashboardhttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/energy-dashboard/internal/dashboard"
	"github.com/odyssey-erp/energy-dashboard/internal/view"
)

// FragmentHeader marks requests that want region markup instead of the page.
const FragmentHeader = "X-Fragment"

const pageTitle = "Energy Dashboard"

// Controller defines the dashboard operations used by the handler.
type Controller interface {
	Load(ctx context.Context)
	Reload(ctx context.Context, w dashboard.Widget) error
	SubmitPrediction(ctx context.Context, box *dashboard.ResultBox, form dashboard.PredictionForm) (dashboard.Node, dashboard.FieldErrors)
	Region(id dashboard.RegionID) (dashboard.Node, error)
	Snapshot() dashboard.Snapshot
}

// Handler coordinates HTTP requests for the energy dashboard page.
type Handler struct {
	logger       *slog.Logger
	dashboard    Controller
	templates    *view.Engine
	predictLimit int
	now          func() time.Time
}

// NewHandler constructs the dashboard HTTP handler. predictLimit caps
// prediction submissions per client per minute; zero disables the limit.
func NewHandler(logger *slog.Logger, controller Controller, templates *view.Engine, predictLimit int) *Handler {
	return &Handler{
		logger:       logger,
		dashboard:    controller,
		templates:    templates,
		predictLimit: predictLimit,
		now:          time.Now,
	}
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

type pageData struct {
	Regions     dashboard.Snapshot
	Form        dashboard.PredictionForm
	DailyWindow int
	GeneratedAt time.Time
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Load(r.Context())
	h.renderPage(w, r, http.StatusOK, dashboard.PredictionForm{}, dashboard.Node{})
}

func (h *Handler) handleRegion(w http.ResponseWriter, r *http.Request) {
	id := dashboard.RegionID(chi.URLParam(r, "region"))
	node, err := h.dashboard.Region(id)
	if err != nil {
		h.handleNotFound(w, err)
		return
	}
	writeFragment(w, http.StatusOK, node)
}

func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	widget := dashboard.Widget(chi.URLParam(r, "widget"))
	if err := h.dashboard.Reload(r.Context(), widget); err != nil {
		h.handleNotFound(w, err)
		return
	}
	nodes := make([]dashboard.Node, 0, 5)
	for _, id := range dashboard.WidgetRegions(widget) {
		node, err := h.dashboard.Region(id)
		if err != nil {
			h.handleServerError(w, "render region", err)
			return
		}
		nodes = append(nodes, node)
	}
	writeFragment(w, http.StatusOK, nodes...)
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logError("parse prediction form", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := dashboard.PredictionForm{
		Temperature: r.PostFormValue(dashboard.FieldTemperature),
		Humidity:    r.PostFormValue(dashboard.FieldHumidity),
		Hour:        r.PostFormValue(dashboard.FieldHour),
	}

	// No sessions: each submission gets its own box and answers with its own outcome.
	result, errs := h.dashboard.SubmitPrediction(r.Context(), dashboard.NewResultBox(), form)
	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusUnprocessableEntity
	}

	if !wantsFragment(r) {
		h.renderPage(w, r, status, form, result)
		return
	}
	writeFragment(w, status, result)
}

// renderPage renders the full page; a non-zero result replaces the result box.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, form dashboard.PredictionForm, result dashboard.Node) {
	regions := h.dashboard.Snapshot()
	if !result.IsZero() {
		regions.ResultBox = result.HTML()
	}
	viewData := view.TemplateData{
		Title:       pageTitle,
		CurrentPath: r.URL.Path,
		Data: pageData{
			Regions:     regions,
			Form:        form,
			DailyWindow: dashboard.DailyWindow,
			GeneratedAt: h.now(),
		},
	}
	if err := h.templates.RenderStatus(w, status, "pages/dashboard.html", viewData); err != nil {
		h.logError("render template", err)
	}
}

func wantsFragment(r *http.Request) bool {
	return strings.TrimSpace(r.Header.Get(FragmentHeader)) == "1"
}

func writeFragment(w http.ResponseWriter, status int, nodes ...dashboard.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	for _, node := range nodes {
		_, _ = w.Write([]byte(node.HTML()))
	}
}

func (h *Handler) handleNotFound(w http.ResponseWriter, err error) {
	if errors.Is(err, dashboard.ErrUnknownRegion) || errors.Is(err, dashboard.ErrUnknownWidget) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	h.handleServerError(w, "dashboard request", err)
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

// HandleDashboardForTest exposes the page handler for tests.
func (h *Handler) HandleDashboardForTest(w http.ResponseWriter, r *http.Request) {
	h.handleDashboard(w, r)
}

// HandlePredictForTest exposes the prediction handler for tests.
func (h *Handler) HandlePredictForTest(w http.ResponseWriter, r *http.Request) { h.handlePredict(w, r) }
