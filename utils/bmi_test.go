package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmi-22.86) > 0.01 {
		t.Errorf("bmi = %.2f, want ~22.86", bmi)
	}

	for _, tc := range []struct {
		name   string
		height float64
		weight float64
	}{
		{"zero height", 0, 70},
		{"negative weight", 175, -5},
		{"implausible height", 400, 70},
		{"implausible weight", 175, 900},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CalculateBMI(tc.height, tc.weight); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	if got := BMICategory(22); got != "Normal weight" {
		t.Errorf("BMICategory(22) = %q", got)
	}
	if got := BMICategory(17); got != "Underweight" {
		t.Errorf("BMICategory(17) = %q", got)
	}
	if got := BMICategory(31); got != "Obesity class I" {
		t.Errorf("BMICategory(31) = %q", got)
	}
}
