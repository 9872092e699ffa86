package utils_test

import (
	"testing"

	"detail-genius/utils"
)

func TestCombineStartTime(t *testing.T) {
	got := utils.CombineStartTime("2024-06-01", "13:00")
	if got != "2024-06-01T13:00:00" {
		t.Fatalf("want 2024-06-01T13:00:00, got %q", got)
	}

	// Plain concatenation: garbage in, garbage out, but deterministic.
	if got := utils.CombineStartTime("not-a-date", "25:99"); got != "not-a-dateT25:99:00" {
		t.Fatalf("unexpected combination %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:       "$0",
		150:     "$150",
		14500:   "$14,500",
		1234.56: "$1,234.56",
	}
	for amount, want := range cases {
		if got := utils.FormatCurrency(amount); got != want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", amount, got, want)
		}
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	if got := utils.FormatTimeOfDay("2024-06-01T13:00:00"); got != "1:00 PM" {
		t.Fatalf("want 1:00 PM, got %q", got)
	}
	if got := utils.FormatTimeOfDay("2024-06-01T09:30:00"); got != "9:30 AM" {
		t.Fatalf("want 9:30 AM, got %q", got)
	}
	// Unparseable values pass through untouched.
	if got := utils.FormatTimeOfDay("garbage"); got != "garbage" {
		t.Fatalf("want passthrough, got %q", got)
	}
}

func TestFormatVehicleLabel(t *testing.T) {
	if got := utils.FormatVehicleLabel(2022, "Tesla", "Model S"); got != "2022 Tesla Model S" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := utils.FormatVehicleLabel(0, "Tesla", "Model S"); got != "Tesla Model S" {
		t.Fatalf("zero year should be omitted, got %q", got)
	}
}
