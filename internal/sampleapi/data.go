package sampleapi

import (
	"fmt"

	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
)

// Dataset holds the fixed payloads served by the sample backend.
type Dataset struct {
	Summary   energyapi.SummaryStats
	Hourly    energyapi.HourlySeries
	Daily     energyapi.DailySeries
	Consumers []energyapi.ConsumerEntry
	Model     energyapi.ModelInfo
}

// DefaultDataset returns the pre-aggregated household data set.
func DefaultDataset() Dataset {
	applianceStd := 102.47
	return Dataset{
		Summary: energyapi.SummaryStats{
			TotalRecords: 19735,
			DateRange:    energyapi.DateRange{Start: "2016-01-11", End: "2016-05-27"},
			Appliances:   energyapi.MetricStats{Mean: 97.69, Min: 10, Max: 2080, Std: &applianceStd},
			Lights:       energyapi.MetricStats{Mean: 3.81, Min: 0, Max: 163},
			Temperature:  energyapi.MetricStats{Mean: 21.90, Min: 16.79, Max: 26.26},
		},
		Hourly: energyapi.HourlySeries{
			Hours: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23},
			Appliances: []float64{
				74.56, 68.92, 67.34, 65.87, 67.12, 72.45, 92.34, 110.23, 125.67, 118.92, 112.45, 108.76,
				115.43, 120.87, 118.34, 115.67, 122.45, 125.78, 119.34, 110.45, 98.76, 87.65, 79.87, 75.34,
			},
			Lights: []float64{
				2.34, 1.87, 1.56, 1.34, 1.45, 1.78, 2.45, 3.67, 4.56, 5.12, 4.89, 4.67,
				4.45, 4.23, 4.12, 3.89, 4.01, 4.34, 5.67, 6.12, 5.89, 4.45, 3.34, 2.67,
			},
		},
		Daily: generateDaily(30),
		Consumers: []energyapi.ConsumerEntry{
			{Name: "T1", AvgTemp: 21.90, MaxTemp: 26.26},
			{Name: "T2", AvgTemp: 21.45, MaxTemp: 25.89},
			{Name: "T3", AvgTemp: 20.87, MaxTemp: 25.12},
			{Name: "T4", AvgTemp: 19.23, MaxTemp: 23.45},
			{Name: "T5", AvgTemp: 18.56, MaxTemp: 22.78},
			{Name: "T6", AvgTemp: 17.89, MaxTemp: 21.34},
		},
		Model: energyapi.ModelInfo{
			ModelType:   "Random Forest Regressor",
			NEstimators: 100,
			TrainScore:  0.8956,
			TestScore:   0.8234,
		},
	}
}

// generateDaily builds n days starting 2016-01-11, rolling into February
// after the twentieth entry.
func generateDaily(n int) energyapi.DailySeries {
	series := energyapi.DailySeries{
		Dates:      make([]string, 0, n),
		Appliances: make([]float64, 0, n),
		Lights:     make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		if i < 20 {
			series.Dates = append(series.Dates, fmt.Sprintf("2016-01-%02d", 11+i))
		} else {
			series.Dates = append(series.Dates, fmt.Sprintf("2016-02-%02d", i-20+1))
		}
		series.Appliances = append(series.Appliances, float64(95+i%15))
		series.Lights = append(series.Lights, 3.5+float64(i%4)*0.5)
	}
	return series
}

// Predict is the placeholder estimator of the sample backend.
func Predict(in energyapi.PredictionRequest) float64 {
	prediction := 95.0 + float64(in.Hour)*2.5
	if prediction < 0 {
		return 0
	}
	return prediction
}
