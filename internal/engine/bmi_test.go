package engine

import (
	"math"
	"testing"
)

func TestComputeBMI(t *testing.T) {
	rep := ComputeBMI("70", "175")
	if rep == nil {
		t.Fatalf("ComputeBMI(70,175)=nil, want report")
	}
	if math.Abs(rep.Value-22.857) > 0.01 {
		t.Fatalf("value=%v, want ~22.86", rep.Value)
	}
	if rep.Category != BMINormal {
		t.Fatalf("category=%q, want Normal", rep.Category)
	}
}

func TestComputeBMIUndetermined(t *testing.T) {
	cases := []struct {
		name   string
		weight string
		height string
	}{
		{"missing weight", "", "170"},
		{"missing height", "70", ""},
		{"zero height", "70", "0"},
		{"negative weight", "-5", "170"},
		{"non-numeric", "seventy", "170"},
		{"NaN weight", "NaN", "170"},
		{"infinite weight", "+Inf", "170"},
		{"infinite height", "70", "Inf"},
	}
	for _, tc := range cases {
		if rep := ComputeBMI(tc.weight, tc.height); rep != nil {
			t.Fatalf("%s: got %+v, want nil", tc.name, rep)
		}
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		v    float64
		want BMICategory
	}{
		{18.4, BMIUnderweight},
		{18.5, BMINormal},
		{24.9, BMINormal},
		{25.0, BMIOverweight},
		{29.9, BMIOverweight},
		{30.0, BMIObese},
	}
	for _, tc := range cases {
		if got := classifyBMI(tc.v); got != tc.want {
			t.Fatalf("classifyBMI(%v)=%q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestBMIGaugeColors(t *testing.T) {
	want := map[BMICategory]string{
		BMIUnderweight: "blue",
		BMINormal:      "green",
		BMIOverweight:  "orange",
		BMIObese:       "red",
	}
	for cat, color := range want {
		if got := cat.GaugeColor(); got != color {
			t.Fatalf("%s color=%q, want %q", cat, got, color)
		}
	}
}
