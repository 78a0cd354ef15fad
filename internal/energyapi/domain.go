package energyapi

// MetricStats summarises one measured series.
type MetricStats struct {
	Mean float64  `json:"mean"`
	Min  float64  `json:"min"`
	Max  float64  `json:"max"`
	Std  *float64 `json:"std,omitempty"`
}

// DateRange bounds the recorded data set.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SummaryStats is the payload of GET /api/summary.
type SummaryStats struct {
	Appliances   MetricStats `json:"appliances"`
	Lights       MetricStats `json:"lights"`
	Temperature  MetricStats `json:"temperature"`
	TotalRecords int64       `json:"total_records"`
	DateRange    DateRange   `json:"date_range"`
}

// HourlySeries carries the 24-hour average profile.
type HourlySeries struct {
	Hours      []int     `json:"hours"`
	Appliances []float64 `json:"appliances"`
	Lights     []float64 `json:"lights"`
}

// DailySeries carries per-day averages in date order.
type DailySeries struct {
	Dates      []string  `json:"dates"`
	Appliances []float64 `json:"appliances"`
	Lights     []float64 `json:"lights"`
}

// ConsumerEntry describes one room in the ranked consumer list.
type ConsumerEntry struct {
	Name    string  `json:"name"`
	AvgTemp float64 `json:"avg_temp"`
	MaxTemp float64 `json:"max_temp"`
}

// ModelInfo describes the prediction model served by the backend.
type ModelInfo struct {
	ModelType   string  `json:"model_type"`
	NEstimators int     `json:"n_estimators"`
	TrainScore  float64 `json:"train_score"`
	TestScore   float64 `json:"test_score"`
}

// PredictionRequest is the body of POST /api/predict.
type PredictionRequest struct {
	T1   float64 `json:"T1"`
	RH1  float64 `json:"RH_1"`
	Hour int     `json:"hour"`
}

// PredictionResponse is the success body of POST /api/predict.
type PredictionResponse struct {
	Status     string  `json:"status"`
	Prediction float64 `json:"prediction"`
}

// StatusSuccess marks a successful prediction response.
const StatusSuccess = "success"

// Validate checks that the parallel series line up with the hour labels.
func (s HourlySeries) Validate() error {
	if len(s.Appliances) != len(s.Hours) || len(s.Lights) != len(s.Hours) {
		return malformed("hourly series length mismatch: hours=%d appliances=%d lights=%d", len(s.Hours), len(s.Appliances), len(s.Lights))
	}
	for _, h := range s.Hours {
		if h < 0 || h > 23 {
			return malformed("hour %d out of range", h)
		}
	}
	return nil
}

// Validate checks that the parallel series line up with the dates.
func (s DailySeries) Validate() error {
	if len(s.Appliances) != len(s.Dates) || len(s.Lights) != len(s.Dates) {
		return malformed("daily series length mismatch: dates=%d appliances=%d lights=%d", len(s.Dates), len(s.Appliances), len(s.Lights))
	}
	return nil
}
