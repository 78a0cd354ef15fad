package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
	"github.com/odyssey-erp/energy-dashboard/internal/sampleapi"
)

type fakeSource struct {
	data sampleapi.Dataset

	summaryErr   error
	hourlyFn     func(ctx context.Context) (energyapi.HourlySeries, error)
	dailyFn      func(ctx context.Context) (energyapi.DailySeries, error)
	consumersErr error
	modelErr     error
	predictFn    func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error)

	mu           sync.Mutex
	predictCalls int
}

func newFakeSource() *fakeSource {
	return &fakeSource{data: sampleapi.DefaultDataset()}
}

func (f *fakeSource) Summary(ctx context.Context) (energyapi.SummaryStats, error) {
	if f.summaryErr != nil {
		return energyapi.SummaryStats{}, f.summaryErr
	}
	return f.data.Summary, nil
}

func (f *fakeSource) HourlyAverages(ctx context.Context) (energyapi.HourlySeries, error) {
	if f.hourlyFn != nil {
		return f.hourlyFn(ctx)
	}
	return f.data.Hourly, nil
}

func (f *fakeSource) DailyAverages(ctx context.Context) (energyapi.DailySeries, error) {
	if f.dailyFn != nil {
		return f.dailyFn(ctx)
	}
	return f.data.Daily, nil
}

func (f *fakeSource) TopConsumers(ctx context.Context) ([]energyapi.ConsumerEntry, error) {
	if f.consumersErr != nil {
		return nil, f.consumersErr
	}
	return f.data.Consumers, nil
}

func (f *fakeSource) ModelInfo(ctx context.Context) (energyapi.ModelInfo, error) {
	if f.modelErr != nil {
		return energyapi.ModelInfo{}, f.modelErr
	}
	return f.data.Model, nil
}

func (f *fakeSource) Predict(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
	f.mu.Lock()
	f.predictCalls++
	f.mu.Unlock()
	if f.predictFn != nil {
		return f.predictFn(ctx, in)
	}
	return energyapi.PredictionResponse{Status: energyapi.StatusSuccess, Prediction: sampleapi.Predict(in)}, nil
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.predictCalls
}

type recordedFetch struct {
	widget  string
	outcome string
}

type fakeRecorder struct {
	mu      sync.Mutex
	fetches []recordedFetch
	live    map[string]int
}

func (r *fakeRecorder) ObserveFetch(widget, outcome string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches = append(r.fetches, recordedFetch{widget: widget, outcome: outcome})
}

func (r *fakeRecorder) SetLiveCharts(canvas string, live int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live == nil {
		r.live = map[string]int{}
	}
	r.live[canvas] = live
}

func (r *fakeRecorder) count(widget, outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.fetches {
		if f.widget == widget && f.outcome == outcome {
			n++
		}
	}
	return n
}

func regionText(t *testing.T, c *Controller, id RegionID) string {
	t.Helper()
	node, err := c.Region(id)
	require.NoError(t, err)
	return node.TextContent()
}

func regionHTML(t *testing.T, c *Controller, id RegionID) string {
	t.Helper()
	node, err := c.Region(id)
	require.NoError(t, err)
	return string(node.HTML())
}

func TestLoadAgainstSampleBackend(t *testing.T) {
	srv := httptest.NewServer(sampleapi.NewHandler(nil, sampleapi.DefaultDataset()).Router())
	defer srv.Close()

	c := NewController(nil, energyapi.NewClient(srv.URL, 0), nil)
	c.Load(context.Background())

	assert.Equal(t, "97.69", regionText(t, c, RegionAvgAppliances))
	assert.Equal(t, "3.81", regionText(t, c, RegionAvgLights))
	assert.Equal(t, "21.90", regionText(t, c, RegionAvgTemp))
	assert.Equal(t, "19,735", regionText(t, c, RegionTotalRecords))
	assert.Contains(t, regionHTML(t, c, RegionHourlyChart), "<svg")
	assert.Contains(t, regionHTML(t, c, RegionDailyChart), "<svg")
	assert.Equal(t, 6, strings.Count(regionHTML(t, c, RegionConsumersGrid), `class="consumer-card"`))
	assert.Contains(t, regionText(t, c, RegionModelInfo), "Random Forest Regressor")
	assert.Equal(t, 2, c.Charts().Live())
}

func TestSummaryRoundsFields(t *testing.T) {
	src := newFakeSource()
	src.data.Summary.Appliances.Mean = 97.6949
	src.data.Summary.Appliances.Max = 2080
	src.data.Summary.Temperature.Min = 16.79
	src.data.Summary.Temperature.Max = 26.26
	src.data.Summary.TotalRecords = 1234567
	c := NewController(nil, src, nil)

	c.LoadSummary(context.Background())

	assert.Equal(t, "97.69", regionText(t, c, RegionAvgAppliances))
	assert.Equal(t, "1,234,567", regionText(t, c, RegionTotalRecords))
	grid := regionText(t, c, RegionSummaryGrid)
	assert.Contains(t, grid, "Date Range2016-01-11to 2016-05-27")
	assert.Contains(t, grid, "Total Records1,234,567data points")
	assert.Contains(t, grid, "Appliances Max2080.00kWh")
	assert.Contains(t, grid, "Temperature Range16.8°C - 26.3°CMin to Max")
}

func TestHourLabelsPreserveOrder(t *testing.T) {
	for _, hours := range [][]int{{}, {0}, {23, 0, 5}, {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}} {
		labels := HourLabels(hours)
		require.Len(t, labels, len(hours))
		for i, h := range hours {
			assert.Equal(t, fmt.Sprintf("%d:00", h), labels[i])
		}
	}
}

func TestHourlyChartUsesHourLabels(t *testing.T) {
	c := NewController(nil, newFakeSource(), nil)
	c.LoadHourlySeries(context.Background())

	chart, ok := c.Charts().Get(RegionHourlyChart)
	require.True(t, ok)
	assert.Equal(t, ChartLine, chart.Kind)
	require.Len(t, chart.Labels, 24)
	assert.Equal(t, "0:00", chart.Labels[0])
	assert.Equal(t, "23:00", chart.Labels[23])
	assert.Contains(t, string(chart.Markup()), "Energy (Wh)")
}

func dailySeries(n int) energyapi.DailySeries {
	s := energyapi.DailySeries{}
	for i := 0; i < n; i++ {
		s.Dates = append(s.Dates, fmt.Sprintf("d%02d", i))
		s.Appliances = append(s.Appliances, float64(i))
		s.Lights = append(s.Lights, float64(i)/10)
	}
	return s
}

func TestTailDaily(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{{0, 0}, {10, 10}, {30, 30}, {45, 30}}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.total), func(t *testing.T) {
			got := TailDaily(dailySeries(tc.total), DailyWindow)
			require.Len(t, got.Dates, tc.want)
			require.Len(t, got.Appliances, tc.want)
			require.Len(t, got.Lights, tc.want)
			offset := tc.total - tc.want
			for i := range got.Dates {
				assert.Equal(t, fmt.Sprintf("d%02d", offset+i), got.Dates[i])
				assert.Equal(t, float64(offset+i), got.Appliances[i])
			}
		})
	}
}

func TestDailyChartShowsTrailingWindow(t *testing.T) {
	src := newFakeSource()
	src.dailyFn = func(ctx context.Context) (energyapi.DailySeries, error) { return dailySeries(45), nil }
	c := NewController(nil, src, nil)

	c.LoadDailySeries(context.Background())

	chart, ok := c.Charts().Get(RegionDailyChart)
	require.True(t, ok)
	assert.Equal(t, ChartBar, chart.Kind)
	require.Len(t, chart.Labels, DailyWindow)
	assert.Equal(t, "d15", chart.Labels[0])
	assert.Equal(t, "d44", chart.Labels[29])
}

func TestReloadKeepsOneLiveChartPerCanvas(t *testing.T) {
	rec := &fakeRecorder{}
	c := NewController(nil, newFakeSource(), rec)
	ctx := context.Background()

	c.LoadHourlySeries(ctx)
	first, ok := c.Charts().Get(RegionHourlyChart)
	require.True(t, ok)

	require.NoError(t, c.Reload(ctx, WidgetHourly))
	second, ok := c.Charts().Get(RegionHourlyChart)
	require.True(t, ok)

	assert.NotSame(t, first, second)
	assert.True(t, first.Disposed())
	assert.Empty(t, first.Markup())
	assert.False(t, second.Disposed())
	assert.Equal(t, 1, c.Charts().Live())
	assert.Equal(t, 1, strings.Count(regionHTML(t, c, RegionHourlyChart), "<svg"))
	assert.Equal(t, 1, rec.live[string(RegionHourlyChart)])
}

func TestConcurrentReloadsNeverDuplicateCharts(t *testing.T) {
	c := NewController(nil, newFakeSource(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.LoadDailySeries(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Charts().Live())
	assert.Equal(t, 1, strings.Count(regionHTML(t, c, RegionDailyChart), "<svg"))
}

func TestConsumersRenderInInputOrder(t *testing.T) {
	c := NewController(nil, newFakeSource(), nil)
	c.LoadTopConsumers(context.Background())

	html := regionHTML(t, c, RegionConsumersGrid)
	assert.Equal(t, 6, strings.Count(html, `class="consumer-card"`))
	last := -1
	for _, name := range []string{"T1", "T2", "T3", "T4", "T5", "T6"} {
		idx := strings.Index(html, `<div class="room-name">`+name+`</div>`)
		require.Greater(t, idx, last, name)
		last = idx
	}
	assert.Contains(t, html, `style="animation-delay: 0.0s;"`)
	assert.Contains(t, html, `style="animation-delay: 0.5s;"`)
	assert.Contains(t, html, "21.9°C")
	assert.Contains(t, html, "Max: 26.3°C")
}

func TestModelInfoPercentages(t *testing.T) {
	c := NewController(nil, newFakeSource(), nil)
	c.LoadModelInfo(context.Background())

	text := regionText(t, c, RegionModelInfo)
	assert.Contains(t, text, "Model Type: Random Forest Regressor")
	assert.Contains(t, text, "Estimators: 100")
	assert.Contains(t, text, "Train Accuracy: 89.56%")
	assert.Contains(t, text, "Test Accuracy: 82.34%")
}

func TestFailingWidgetDoesNotBlockOthers(t *testing.T) {
	src := newFakeSource()
	src.summaryErr = errors.New("backend down")
	src.consumersErr = errors.New("timeout")
	rec := &fakeRecorder{}
	c := NewController(nil, src, rec)

	c.Load(context.Background())

	assert.Equal(t, placeholder, regionText(t, c, RegionAvgAppliances))
	assert.Empty(t, regionText(t, c, RegionSummaryGrid))
	assert.Empty(t, regionText(t, c, RegionConsumersGrid))
	assert.Contains(t, regionText(t, c, RegionModelInfo), "Estimators: 100")
	assert.Equal(t, 2, c.Charts().Live())
	assert.Equal(t, 1, rec.count(string(WidgetSummary), OutcomeError))
	assert.Equal(t, 1, rec.count(string(WidgetModel), OutcomeSuccess))
}

func TestFailedReloadKeepsPriorContent(t *testing.T) {
	src := newFakeSource()
	c := NewController(nil, src, nil)
	ctx := context.Background()

	c.LoadModelInfo(ctx)
	src.modelErr = errors.New("boom")
	c.LoadModelInfo(ctx)

	assert.Contains(t, regionText(t, c, RegionModelInfo), "Estimators: 100")
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	src := newFakeSource()
	release := make(chan struct{})
	var mu sync.Mutex
	call := 0
	src.hourlyFn = func(ctx context.Context) (energyapi.HourlySeries, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			<-release
			return energyapi.HourlySeries{Hours: []int{1}, Appliances: []float64{1}, Lights: []float64{1}}, nil
		}
		return energyapi.HourlySeries{Hours: []int{2, 3}, Appliances: []float64{2, 3}, Lights: []float64{2, 3}}, nil
	}
	rec := &fakeRecorder{}
	c := NewController(nil, src, rec)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		c.LoadHourlySeries(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return call == 1
	}, time.Second, 5*time.Millisecond)

	c.LoadHourlySeries(ctx)
	close(release)
	<-done

	chart, ok := c.Charts().Get(RegionHourlyChart)
	require.True(t, ok)
	assert.Equal(t, []string{"2:00", "3:00"}, chart.Labels)
	assert.Equal(t, 1, rec.count(string(WidgetHourly), OutcomeStale))
}

func TestMalformedSeriesLeavesCanvasEmpty(t *testing.T) {
	src := newFakeSource()
	src.hourlyFn = func(ctx context.Context) (energyapi.HourlySeries, error) {
		return energyapi.HourlySeries{Hours: []int{1, 2}, Appliances: []float64{1}, Lights: []float64{1, 2}}, nil
	}
	c := NewController(nil, src, nil)

	c.LoadHourlySeries(context.Background())

	_, ok := c.Charts().Get(RegionHourlyChart)
	assert.False(t, ok)
	assert.NotContains(t, regionHTML(t, c, RegionHourlyChart), "<svg")
}

func submit(c *Controller, box *ResultBox, temperature, humidity, hour string) (Node, FieldErrors) {
	return c.SubmitPrediction(context.Background(), box, PredictionForm{Temperature: temperature, Humidity: humidity, Hour: hour})
}

func TestSubmitPredictionSuccess(t *testing.T) {
	src := newFakeSource()
	src.predictFn = func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
		assert.Equal(t, energyapi.PredictionRequest{T1: 21.5, RH1: 40, Hour: 18}, in)
		return energyapi.PredictionResponse{Status: energyapi.StatusSuccess, Prediction: 123.456}, nil
	}
	c := NewController(nil, src, nil)
	box := NewResultBox()

	result, errs := submit(c, box, "21.5", " 40 ", "18")
	require.Empty(t, errs)

	html := string(result.HTML())
	assert.Contains(t, html, `class="result-box"`)
	assert.Contains(t, html, `<div class="prediction-value">123.46</div>`)
	assert.Contains(t, html, PredictionUnit)
	assert.Equal(t, result, box.Node())
}

func TestSubmitPredictionShowsServerError(t *testing.T) {
	src := newFakeSource()
	src.predictFn = func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
		return energyapi.PredictionResponse{}, &energyapi.APIError{Endpoint: energyapi.PathPredict, StatusCode: 500, Message: "could not convert <T1>"}
	}
	c := NewController(nil, src, nil)

	result, _ := submit(c, nil, "20", "50", "3")

	assert.Equal(t, "Error: could not convert <T1>", result.TextContent())
	html := string(result.HTML())
	assert.Contains(t, html, `class="result-box error"`)
	assert.Contains(t, html, "&lt;T1&gt;")
}

func TestSubmitPredictionFallbackMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"transport", errors.New("dial tcp: connection refused"), "Error: " + genericPredictionError},
		{"status without body", &energyapi.APIError{Endpoint: energyapi.PathPredict, StatusCode: 502}, "Error: Request failed with status code 502"},
		{"wrapped status without body", fmt.Errorf("predict: %w", &energyapi.APIError{Endpoint: energyapi.PathPredict, StatusCode: 503}), "Error: Request failed with status code 503"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := newFakeSource()
			src.predictFn = func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
				return energyapi.PredictionResponse{}, tc.err
			}
			c := NewController(nil, src, nil)
			result, _ := submit(c, nil, "20", "50", "3")
			assert.Equal(t, tc.want, result.TextContent())
		})
	}
}

func TestSubmitPredictionStatusWithoutBodyOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewController(nil, energyapi.NewClient(srv.URL, 0), nil)
	result, errs := submit(c, nil, "20", "50", "3")
	require.Empty(t, errs)
	assert.Equal(t, "Error: Request failed with status code 500", result.TextContent())
}

func TestSubmitPredictionRejectsInvalidInput(t *testing.T) {
	src := newFakeSource()
	c := NewController(nil, src, nil)

	result, errs := submit(c, nil, "warm", "120", "7.5")

	require.Len(t, errs, 3)
	assert.Equal(t, "Temperature (°C) must be a number", errs[FieldTemperature])
	assert.Equal(t, "Humidity (%) must be at most 100", errs[FieldHumidity])
	assert.Equal(t, "Hour must be a whole number", errs[FieldHour])
	assert.Zero(t, src.calls())

	html := string(result.HTML())
	assert.Contains(t, html, `data-field="humidity"`)
	assert.Less(t, strings.Index(html, FieldTemperature), strings.Index(html, FieldHour))
}

func TestSubmitPredictionShowsLoadingWhileInFlight(t *testing.T) {
	src := newFakeSource()
	entered := make(chan struct{})
	release := make(chan struct{})
	src.predictFn = func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
		close(entered)
		<-release
		return energyapi.PredictionResponse{Status: energyapi.StatusSuccess, Prediction: 1}, nil
	}
	c := NewController(nil, src, nil)
	box := NewResultBox()

	done := make(chan struct{})
	go func() {
		submit(c, box, "20", "50", "3")
		close(done)
	}()
	<-entered
	assert.Contains(t, string(box.Node().HTML()), `<div class="loading-spinner"></div>`)
	close(release)
	<-done
	assert.Contains(t, string(box.Node().HTML()), "1.00")
}

func TestSubmitPredictionUnexpectedStatus(t *testing.T) {
	src := newFakeSource()
	src.predictFn = func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
		return energyapi.PredictionResponse{Status: "pending"}, nil
	}
	c := NewController(nil, src, nil)
	result, _ := submit(c, nil, "20", "50", "3")
	assert.Equal(t, `Error: unexpected prediction status "pending"`, result.TextContent())
}

// blockingPredictions holds the hour=1 request until released.
func blockingPredictions(src *fakeSource) (entered, release chan struct{}) {
	entered, release = make(chan struct{}), make(chan struct{})
	src.predictFn = func(ctx context.Context, in energyapi.PredictionRequest) (energyapi.PredictionResponse, error) {
		if in.Hour == 1 {
			close(entered)
			<-release
		}
		return energyapi.PredictionResponse{Status: energyapi.StatusSuccess, Prediction: sampleapi.Predict(in)}, nil
	}
	return entered, release
}

func TestOverlappingSubmissionsKeepTheirOwnResults(t *testing.T) {
	src := newFakeSource()
	entered, release := blockingPredictions(src)
	recorder := &fakeRecorder{}
	c := NewController(nil, src, recorder)

	var first Node
	done := make(chan struct{})
	go func() {
		first, _ = submit(c, NewResultBox(), "20", "45", "1")
		close(done)
	}()
	<-entered

	second, errs := submit(c, NewResultBox(), "20", "45", "10")
	require.Empty(t, errs)
	invalid, errs := submit(c, NewResultBox(), "warm", "45", "10")
	require.NotEmpty(t, errs)
	close(release)
	<-done

	assert.Contains(t, string(first.HTML()), `<div class="prediction-value">97.50</div>`)
	assert.Contains(t, string(second.HTML()), `<div class="prediction-value">120.00</div>`)
	assert.NotContains(t, string(invalid.HTML()), "prediction-value")
	assert.Contains(t, regionText(t, c, RegionResultBox), "Enter values and press Predict")
	assert.Contains(t, string(c.Snapshot().ResultBox), "Enter values and press Predict")
	assert.Zero(t, recorder.count(string(WidgetPrediction), OutcomeStale))
	assert.Equal(t, 2, recorder.count(string(WidgetPrediction), OutcomeSuccess))
}

func TestNewerSubmissionWinsWithinOneBox(t *testing.T) {
	src := newFakeSource()
	entered, release := blockingPredictions(src)
	c := NewController(nil, src, nil)
	box := NewResultBox()

	var first Node
	done := make(chan struct{})
	go func() {
		first, _ = submit(c, box, "20", "45", "1")
		close(done)
	}()
	<-entered
	second, _ := submit(c, box, "20", "45", "10")
	close(release)
	<-done

	assert.Contains(t, string(first.HTML()), "97.50")
	assert.Equal(t, second, box.Node())
	assert.Contains(t, string(box.Node().HTML()), "120.00")
}

func TestReloadUnknownWidget(t *testing.T) {
	c := NewController(nil, newFakeSource(), nil)
	assert.ErrorIs(t, c.Reload(context.Background(), WidgetPrediction), ErrUnknownWidget)
	assert.ErrorIs(t, c.Reload(context.Background(), Widget("weather")), ErrUnknownWidget)

	_, err := c.Region(RegionID("nope"))
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestSnapshotStartsEmpty(t *testing.T) {
	c := NewController(nil, newFakeSource(), nil)
	snap := c.Snapshot()
	assert.Equal(t, `<p class="stat-value" id="avgAppliances">--</p>`, string(snap.AvgAppliances))
	assert.Equal(t, `<div class="chart-canvas" data-chart="bar" id="dailyChart"></div>`, string(snap.DailyChart))
	assert.Contains(t, string(snap.ResultBox), "Enter values and press Predict")
}

func TestClientFailureIsIsolatedEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	sample := sampleapi.NewHandler(nil, sampleapi.DefaultDataset()).Router()
	mux.Handle("/", sample)
	mux.HandleFunc(energyapi.PathDailyAvg, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"daily aggregation failed"}`, http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewController(nil, energyapi.NewClient(srv.URL, 0), nil)
	c.Load(context.Background())

	_, ok := c.Charts().Get(RegionDailyChart)
	assert.False(t, ok)
	_, ok = c.Charts().Get(RegionHourlyChart)
	assert.True(t, ok)
	assert.Equal(t, "97.69", regionText(t, c, RegionAvgAppliances))
}

func TestEmptyDailySeriesDrawsEmptyChart(t *testing.T) {
	src := newFakeSource()
	src.dailyFn = func(ctx context.Context) (energyapi.DailySeries, error) { return energyapi.DailySeries{}, nil }
	c := NewController(nil, src, nil)

	c.LoadDailySeries(context.Background())

	chart, ok := c.Charts().Get(RegionDailyChart)
	require.True(t, ok)
	assert.Empty(t, chart.Labels)
	assert.NotContains(t, string(chart.Markup()), "<rect")
}
