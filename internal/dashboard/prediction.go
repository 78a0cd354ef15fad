package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
)

// Prediction form fields.
const (
	FieldTemperature = "temperature"
	FieldHumidity    = "humidity"
	FieldHour        = "hour"
)

var predictionFields = []string{FieldTemperature, FieldHumidity, FieldHour}

// PredictionForm carries the raw text of the prediction inputs.
type PredictionForm struct {
	Temperature string
	Humidity    string
	Hour        string
}

// FieldErrors maps a form field to its error message.
type FieldErrors map[string]string

type predictionInput struct {
	Temperature float64 `validate:"gte=5,lte=30"`
	Humidity    float64 `validate:"gte=0,lte=100"`
	Hour        int     `validate:"gte=0,lte=23"`
}

var inputValidator = validator.New()

var fieldByStruct = map[string]string{
	"Temperature": FieldTemperature,
	"Humidity":    FieldHumidity,
	"Hour":        FieldHour,
}

var fieldLabels = map[string]string{
	FieldTemperature: "Temperature (°C)",
	FieldHumidity:    "Humidity (%)",
	FieldHour:        "Hour",
}

// ParsePredictionForm converts the raw inputs into a backend request.
// Nothing is returned for submission when any field is rejected.
func ParsePredictionForm(form PredictionForm) (energyapi.PredictionRequest, FieldErrors) {
	errs := FieldErrors{}
	var in predictionInput

	if v, err := parseFinite(form.Temperature); err != nil {
		errs[FieldTemperature] = fieldLabels[FieldTemperature] + " " + err.Error()
	} else {
		in.Temperature = v
	}
	if v, err := parseFinite(form.Humidity); err != nil {
		errs[FieldHumidity] = fieldLabels[FieldHumidity] + " " + err.Error()
	} else {
		in.Humidity = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(form.Hour)); err != nil {
		errs[FieldHour] = fieldLabels[FieldHour] + " must be a whole number"
	} else {
		in.Hour = v
	}

	if err := inputValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := fieldByStruct[fe.StructField()]
				if _, seen := errs[field]; seen {
					continue
				}
				errs[field] = fieldLabels[field] + " " + describe(fe)
			}
		}
	}
	if len(errs) > 0 {
		return energyapi.PredictionRequest{}, errs
	}
	return energyapi.PredictionRequest{T1: in.Temperature, RH1: in.Humidity, Hour: in.Hour}, nil
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("must be a number")
	}
	return v, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
