package engine

import (
	"math"
	"strconv"
	"strings"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// GaugeColor is the fixed display color of the category's gauge segment.
func (c BMICategory) GaugeColor() string {
	switch c {
	case BMIUnderweight:
		return "blue"
	case BMINormal:
		return "green"
	case BMIOverweight:
		return "orange"
	default:
		return "red"
	}
}

type BMIReport struct {
	Value    float64
	Category BMICategory
}

// ComputeBMI parses the profile's free-form weight (kg) and height (cm) and
// returns nil when either is blank, non-numeric, or not positive. Invalid
// input is an expected state, not an error.
func ComputeBMI(weight, height string) *BMIReport {
	w, errW := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return nil
	}
	// ParseFloat accepts "NaN" and "Inf", which pass the sign checks.
	if math.IsNaN(w) || math.IsInf(w, 0) || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil
	}

	m := h / 100
	v := w / (m * m)
	return &BMIReport{Value: v, Category: classifyBMI(v)}
}

func classifyBMI(v float64) BMICategory {
	switch {
	case v < 18.5:
		return BMIUnderweight
	case v < 25:
		return BMINormal
	case v < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
