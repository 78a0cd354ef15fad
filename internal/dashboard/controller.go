// Package dashboard loads the energy statistics widgets and renders them into
// named page regions.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
)

// Widget names a data source bound to one or more regions.
type Widget string

// Dashboard widgets.
const (
	WidgetSummary    Widget = "summary"
	WidgetHourly     Widget = "hourly"
	WidgetDaily      Widget = "daily"
	WidgetConsumers  Widget = "consumers"
	WidgetModel      Widget = "model"
	WidgetPrediction Widget = "prediction"
)

// DailyWindow is how many trailing days the daily chart shows.
const DailyWindow = 30

// Fetch outcomes reported to the Recorder.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeStale   = "stale"
)

const genericPredictionError = "Unable to reach the prediction service"

// ErrUnknownWidget is returned for widgets that cannot be reloaded.
var ErrUnknownWidget = errors.New("dashboard: unknown widget")

// ErrUnknownRegion is returned for regions the page does not define.
var ErrUnknownRegion = errors.New("dashboard: unknown region")

// Source is the backend contract used by the controller.
type Source interface {
	Summary(ctx context.Context) (energyapi.SummaryStats, error)
	HourlyAverages(ctx context.Context) (energyapi.HourlySeries, error)
	DailyAverages(ctx context.Context) (energyapi.DailySeries, error)
	TopConsumers(ctx context.Context) ([]energyapi.ConsumerEntry, error)
	ModelInfo(ctx context.Context) (energyapi.ModelInfo, error)
	Predict(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error)
}

// Recorder observes fetch outcomes and chart lifecycles.
type Recorder interface {
	ObserveFetch(widget string, outcome string, elapsed time.Duration)
	SetLiveCharts(canvas string, live int)
}

// Controller owns the shared dashboard regions, chart instances and request
// tokens of the passive widgets.
type Controller struct {
	logger  *slog.Logger
	source  Source
	charts  *ChartRegistry
	metrics Recorder

	mu      sync.RWMutex
	regions map[RegionID]Node
	latest  map[Widget]uint64
}

// NewController wires a backend source. logger and metrics may be nil.
func NewController(logger *slog.Logger, source Source, metrics Recorder) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		logger:  logger,
		source:  source,
		metrics: metrics,
		regions: make(map[RegionID]Node, len(Regions)),
		latest:  make(map[Widget]uint64),
	}
	c.charts = NewChartRegistry(func(canvas RegionID, live int) {
		if c.metrics != nil {
			c.metrics.SetLiveCharts(string(canvas), live)
		}
	})
	for _, id := range Regions {
		c.regions[id] = emptyRegion(id)
	}
	return c
}

// Charts exposes the chart registry.
func (c *Controller) Charts() *ChartRegistry {
	return c.charts
}

// Load fetches all passive widgets concurrently and returns once every one
// has resolved. A failing widget never prevents the others from rendering.
func (c *Controller) Load(ctx context.Context) {
	var g errgroup.Group
	for _, load := range []func(context.Context){
		c.LoadSummary,
		c.LoadHourlySeries,
		c.LoadDailySeries,
		c.LoadTopConsumers,
		c.LoadModelInfo,
	} {
		load := load
		g.Go(func() error {
			load(ctx)
			return nil
		})
	}
	_ = g.Wait()
}

// Reload re-fetches one passive widget.
func (c *Controller) Reload(ctx context.Context, w Widget) error {
	switch w {
	case WidgetSummary:
		c.LoadSummary(ctx)
	case WidgetHourly:
		c.LoadHourlySeries(ctx)
	case WidgetDaily:
		c.LoadDailySeries(ctx)
	case WidgetConsumers:
		c.LoadTopConsumers(ctx)
	case WidgetModel:
		c.LoadModelInfo(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWidget, w)
	}
	return nil
}

// WidgetRegions lists the regions a widget renders into.
func WidgetRegions(w Widget) []RegionID {
	switch w {
	case WidgetSummary:
		return []RegionID{RegionAvgAppliances, RegionAvgLights, RegionAvgTemp, RegionTotalRecords, RegionSummaryGrid}
	case WidgetHourly:
		return []RegionID{RegionHourlyChart}
	case WidgetDaily:
		return []RegionID{RegionDailyChart}
	case WidgetConsumers:
		return []RegionID{RegionConsumersGrid}
	case WidgetModel:
		return []RegionID{RegionModelInfo}
	case WidgetPrediction:
		return []RegionID{RegionResultBox}
	default:
		return nil
	}
}

// LoadSummary renders the headline stats and the summary cards.
func (c *Controller) LoadSummary(ctx context.Context) {
	token, start := c.issue(WidgetSummary), time.Now()
	stats, err := c.source.Summary(ctx)
	if c.failed(WidgetSummary, start, err) {
		return
	}
	applied := c.commit(WidgetSummary, token, func() {
		for id, node := range RenderSummaryStats(stats) {
			c.regions[id] = node
		}
		c.regions[RegionSummaryGrid] = RenderSummaryGrid(stats)
	})
	c.finish(WidgetSummary, start, applied)
}

// LoadHourlySeries redraws the 24-hour line chart.
func (c *Controller) LoadHourlySeries(ctx context.Context) {
	token, start := c.issue(WidgetHourly), time.Now()
	series, err := c.source.HourlyAverages(ctx)
	if c.failed(WidgetHourly, start, err) {
		return
	}
	labels := HourLabels(series.Hours)
	var buildErr error
	applied := c.commit(WidgetHourly, token, func() {
		_, buildErr = c.charts.Replace(RegionHourlyChart, func() (*Chart, error) {
			return BuildHourlyChart(labels, series.Appliances, series.Lights)
		})
	})
	if c.failed(WidgetHourly, start, buildErr) {
		return
	}
	c.finish(WidgetHourly, start, applied)
}

// LoadDailySeries redraws the daily bar chart over the trailing window.
func (c *Controller) LoadDailySeries(ctx context.Context) {
	token, start := c.issue(WidgetDaily), time.Now()
	series, err := c.source.DailyAverages(ctx)
	if c.failed(WidgetDaily, start, err) {
		return
	}
	window := TailDaily(series, DailyWindow)
	var buildErr error
	applied := c.commit(WidgetDaily, token, func() {
		_, buildErr = c.charts.Replace(RegionDailyChart, func() (*Chart, error) {
			return BuildDailyChart(window.Dates, window.Appliances, window.Lights)
		})
	})
	if c.failed(WidgetDaily, start, buildErr) {
		return
	}
	c.finish(WidgetDaily, start, applied)
}

// LoadTopConsumers renders the room cards.
func (c *Controller) LoadTopConsumers(ctx context.Context) {
	token, start := c.issue(WidgetConsumers), time.Now()
	rooms, err := c.source.TopConsumers(ctx)
	if c.failed(WidgetConsumers, start, err) {
		return
	}
	applied := c.commit(WidgetConsumers, token, func() {
		c.regions[RegionConsumersGrid] = RenderConsumers(rooms)
	})
	c.finish(WidgetConsumers, start, applied)
}

// LoadModelInfo renders the model metadata panel.
func (c *Controller) LoadModelInfo(ctx context.Context) {
	token, start := c.issue(WidgetModel), time.Now()
	info, err := c.source.ModelInfo(ctx)
	if c.failed(WidgetModel, start, err) {
		return
	}
	applied := c.commit(WidgetModel, token, func() {
		c.regions[RegionModelInfo] = RenderModelInfo(info)
	})
	c.finish(WidgetModel, start, applied)
}

// ResultBox is one visitor's prediction region. Submissions into the same
// box follow last-issued-wins; separate boxes never see each other's results.
type ResultBox struct {
	mu     sync.Mutex
	latest uint64
	node   Node
}

// NewResultBox returns a box showing the input placeholder.
func NewResultBox() *ResultBox {
	return &ResultBox{node: emptyRegion(RegionResultBox)}
}

// Node returns the markup currently shown in the box.
func (b *ResultBox) Node() Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.node
}

func (b *ResultBox) issue() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latest++
	return b.latest
}

func (b *ResultBox) commit(token uint64, node Node) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.latest != token {
		return false
	}
	b.node = node
	return true
}

// SubmitPrediction validates the form, shows the loading state in box while
// the request is in flight, then renders the outcome. The returned node is
// the outcome of this submission even when a newer one has since replaced
// it in box. Rejected input is reported per field and no request is sent.
// A nil box gets a private one.
func (c *Controller) SubmitPrediction(ctx context.Context, box *ResultBox, form PredictionForm) (Node, FieldErrors) {
	if box == nil {
		box = NewResultBox()
	}
	token, start := box.issue(), time.Now()

	req, fieldErrs := ParsePredictionForm(form)
	if len(fieldErrs) > 0 {
		result := RenderFieldErrors(fieldErrs)
		box.commit(token, result)
		return result, fieldErrs
	}

	box.commit(token, RenderPredictionLoading())

	resp, err := c.source.Predict(ctx, req)
	var result Node
	switch {
	case err != nil:
		c.logger.Error("prediction request", slog.String("widget", string(WidgetPrediction)), slog.Any("error", err))
		result = RenderPredictionError(predictionErrorMessage(err))
	case resp.Status != energyapi.StatusSuccess:
		c.logger.Error("prediction status", slog.String("status", resp.Status))
		result = RenderPredictionError(fmt.Sprintf("unexpected prediction status %q", resp.Status))
	default:
		result = RenderPrediction(resp.Prediction)
	}
	applied := box.commit(token, result)
	switch {
	case !applied:
		c.logger.Debug("discard stale response",
			slog.String("widget", string(WidgetPrediction)),
			slog.Uint64("token", token))
		c.observe(WidgetPrediction, OutcomeStale, start)
	case err != nil || resp.Status != energyapi.StatusSuccess:
		c.observe(WidgetPrediction, OutcomeError, start)
	default:
		c.observe(WidgetPrediction, OutcomeSuccess, start)
	}
	return result, nil
}

func predictionErrorMessage(err error) string {
	if msg, ok := energyapi.ServerMessage(err); ok {
		return msg
	}
	var apiErr *energyapi.APIError
	if errors.As(err, &apiErr) {
		return "Request failed with status code " + strconv.Itoa(apiErr.StatusCode)
	}
	return genericPredictionError
}

// Region returns the current node of a region. The result box always shows
// the placeholder; prediction outcomes belong to the submitting visitor.
func (c *Controller) Region(id RegionID) (Node, error) {
	if !knownRegion(id) {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	switch id {
	case RegionHourlyChart, RegionDailyChart:
		return c.chartRegion(id), nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.regions[id], nil
}

func (c *Controller) chartRegion(id RegionID) Node {
	kind := ChartLine
	if id == RegionDailyChart {
		kind = ChartBar
	}
	node := region(id, "chart-canvas").With("data-chart", string(kind))
	if chart, ok := c.charts.Get(id); ok {
		node.Children = []Node{Trusted(chart.Markup())}
	}
	return node
}

// Snapshot is the rendered markup of every region.
type Snapshot struct {
	AvgAppliances template.HTML
	AvgLights     template.HTML
	AvgTemp       template.HTML
	TotalRecords  template.HTML
	SummaryGrid   template.HTML
	HourlyChart   template.HTML
	DailyChart    template.HTML
	ConsumersGrid template.HTML
	ModelInfo     template.HTML
	ResultBox     template.HTML
}

// Snapshot renders all regions.
func (c *Controller) Snapshot() Snapshot {
	html := func(id RegionID) template.HTML {
		node, _ := c.Region(id)
		return node.HTML()
	}
	return Snapshot{
		AvgAppliances: html(RegionAvgAppliances),
		AvgLights:     html(RegionAvgLights),
		AvgTemp:       html(RegionAvgTemp),
		TotalRecords:  html(RegionTotalRecords),
		SummaryGrid:   html(RegionSummaryGrid),
		HourlyChart:   html(RegionHourlyChart),
		DailyChart:    html(RegionDailyChart),
		ConsumersGrid: html(RegionConsumersGrid),
		ModelInfo:     html(RegionModelInfo),
		ResultBox:     html(RegionResultBox),
	}
}

// HourLabels formats hour values as "H:00" in input order.
func HourLabels(hours []int) []string {
	labels := make([]string, len(hours))
	for i, h := range hours {
		labels[i] = strconv.Itoa(h) + ":00"
	}
	return labels
}

// TailDaily keeps the last n days of every parallel series.
func TailDaily(s energyapi.DailySeries, n int) energyapi.DailySeries {
	return energyapi.DailySeries{
		Dates:      tail(s.Dates, n),
		Appliances: tail(s.Appliances, n),
		Lights:     tail(s.Lights, n),
	}
}

// issue hands out the next request token of a widget.
func (c *Controller) issue(w Widget) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest[w]++
	return c.latest[w]
}

// commit runs apply only while token is still the latest for the widget.
func (c *Controller) commit(w Widget, token uint64, apply func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest[w] != token {
		c.logger.Debug("discard stale response",
			slog.String("widget", string(w)),
			slog.Uint64("token", token),
			slog.Uint64("latest", c.latest[w]))
		return false
	}
	apply()
	return true
}

func (c *Controller) failed(w Widget, start time.Time, err error) bool {
	if err == nil {
		return false
	}
	c.logger.Error("load widget", slog.String("widget", string(w)), slog.Any("error", err))
	c.observe(w, OutcomeError, start)
	return true
}

func (c *Controller) finish(w Widget, start time.Time, applied bool) {
	if applied {
		c.observe(w, OutcomeSuccess, start)
		return
	}
	c.observe(w, OutcomeStale, start)
}

func (c *Controller) observe(w Widget, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveFetch(string(w), outcome, time.Since(start))
	}
}
