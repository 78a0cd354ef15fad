package dashboard

import (
	"fmt"

	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
)

// RegionID names a render target on the dashboard page.
type RegionID string

// Dashboard regions.
const (
	RegionAvgAppliances RegionID = "avgAppliances"
	RegionAvgLights     RegionID = "avgLights"
	RegionAvgTemp       RegionID = "avgTemp"
	RegionTotalRecords  RegionID = "totalRecords"
	RegionSummaryGrid   RegionID = "summaryGrid"
	RegionHourlyChart   RegionID = "hourlyChart"
	RegionDailyChart    RegionID = "dailyChart"
	RegionConsumersGrid RegionID = "consumersGrid"
	RegionModelInfo     RegionID = "modelInfo"
	RegionResultBox     RegionID = "resultBox"
)

// Regions lists every region in page order.
var Regions = []RegionID{
	RegionAvgAppliances,
	RegionAvgLights,
	RegionAvgTemp,
	RegionTotalRecords,
	RegionSummaryGrid,
	RegionHourlyChart,
	RegionDailyChart,
	RegionConsumersGrid,
	RegionModelInfo,
	RegionResultBox,
}

// PredictionUnit labels prediction values.
const PredictionUnit = "Wh (Watt-hours)"

const placeholder = "--"

func region(id RegionID, class string, children ...Node) Node {
	return El("div", class, children...).With("id", string(id))
}

func statRegion(id RegionID, value string) Node {
	return Node{Tag: "p", Class: "stat-value", Text: value}.With("id", string(id))
}

func emptyRegion(id RegionID) Node {
	switch id {
	case RegionAvgAppliances, RegionAvgLights, RegionAvgTemp, RegionTotalRecords:
		return statRegion(id, placeholder)
	case RegionSummaryGrid:
		return region(id, "summary-grid")
	case RegionConsumersGrid:
		return region(id, "consumers-grid")
	case RegionModelInfo:
		return region(id, "model-info")
	case RegionResultBox:
		return region(id, "result-box", Node{Tag: "p", Class: "result-placeholder", Text: "Enter values and press Predict"})
	default:
		return region(id, "")
	}
}

func knownRegion(id RegionID) bool {
	for _, r := range Regions {
		if r == id {
			return true
		}
	}
	return false
}

func summaryCard(title, value, note string) Node {
	return El("div", "summary-card",
		Node{Tag: "h4", Text: title},
		Node{Tag: "p", Text: value},
		Node{Tag: "small", Text: note},
	)
}

// RenderSummaryStats renders the four headline stat values.
func RenderSummaryStats(s energyapi.SummaryStats) map[RegionID]Node {
	return map[RegionID]Node{
		RegionAvgAppliances: statRegion(RegionAvgAppliances, fixed(s.Appliances.Mean, 2)),
		RegionAvgLights:     statRegion(RegionAvgLights, fixed(s.Lights.Mean, 2)),
		RegionAvgTemp:       statRegion(RegionAvgTemp, fixed(s.Temperature.Mean, 2)),
		RegionTotalRecords:  statRegion(RegionTotalRecords, grouped(s.TotalRecords)),
	}
}

// RenderSummaryGrid renders the four summary cards.
func RenderSummaryGrid(s energyapi.SummaryStats) Node {
	return region(RegionSummaryGrid, "summary-grid",
		summaryCard("Date Range", s.DateRange.Start, "to "+s.DateRange.End),
		summaryCard("Total Records", grouped(s.TotalRecords), "data points"),
		summaryCard("Appliances Max", fixed(s.Appliances.Max, 2), "kWh"),
		summaryCard("Temperature Range",
			fmt.Sprintf("%s°C - %s°C", fixed(s.Temperature.Min, 1), fixed(s.Temperature.Max, 1)),
			"Min to Max"),
	)
}

// RenderConsumers renders one card per room, in input order.
func RenderConsumers(rooms []energyapi.ConsumerEntry) Node {
	cards := make([]Node, 0, len(rooms))
	for i, room := range rooms {
		card := El("div", "consumer-card",
			Node{Tag: "div", Class: "room-name", Text: room.Name},
			Node{Tag: "div", Class: "room-temp", Text: "Average Temp"},
			Node{Tag: "div", Class: "temp-value", Text: fixed(room.AvgTemp, 1) + "°C"},
			Node{Tag: "div", Class: "room-temp", Text: "Max: " + fixed(room.MaxTemp, 1) + "°C"},
		).With("style", fmt.Sprintf("animation-delay: %.1fs;", float64(i)*0.1))
		cards = append(cards, card)
	}
	return region(RegionConsumersGrid, "consumers-grid", cards...)
}

func labelled(label, value string) Node {
	return El("p", "", Node{Tag: "strong", Text: label + ":"}, Text(" "+value))
}

// RenderModelInfo renders model metadata with accuracy percentages.
func RenderModelInfo(m energyapi.ModelInfo) Node {
	return region(RegionModelInfo, "model-info",
		labelled("Model Type", m.ModelType),
		labelled("Estimators", fmt.Sprintf("%d", m.NEstimators)),
		labelled("Train Accuracy", percent(m.TrainScore)),
		labelled("Test Accuracy", percent(m.TestScore)),
		El("p", "", Node{Tag: "small", Text: fmt.Sprintf("Using %s with %d trees for accurate predictions", m.ModelType, m.NEstimators)}),
	)
}

// RenderPredictionLoading renders the in-flight state of the result box.
func RenderPredictionLoading() Node {
	return region(RegionResultBox, "result-box loading", El("div", "loading-spinner"))
}

// RenderPrediction renders a successful prediction.
func RenderPrediction(value float64) Node {
	return region(RegionResultBox, "result-box",
		El("div", "",
			Node{Tag: "p", Text: "Predicted Energy Consumption"},
			Node{Tag: "div", Class: "prediction-value", Text: fixed(value, 2)},
			Node{Tag: "div", Class: "prediction-unit", Text: PredictionUnit},
		),
	)
}

// RenderPredictionError renders a failed prediction.
func RenderPredictionError(message string) Node {
	return region(RegionResultBox, "result-box error", Node{Tag: "p", Text: "Error: " + message})
}

// RenderFieldErrors renders rejected form input, one item per field.
func RenderFieldErrors(errs FieldErrors) Node {
	items := make([]Node, 0, len(errs))
	for _, field := range predictionFields {
		if msg, ok := errs[field]; ok {
			items = append(items, Node{Tag: "li", Text: msg}.With("data-field", field))
		}
	}
	return region(RegionResultBox, "result-box error",
		Node{Tag: "p", Text: "Error: invalid input"},
		El("ul", "field-errors", items...),
	)
}
