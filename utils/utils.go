package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jinzhu/now"
)

// StartTimeLayout matches the naive instant strings stored on appointments.
const StartTimeLayout = "2006-01-02T15:04:05"

// VehicleTypes are the labels the booking wizard offers.
var VehicleTypes = []string{"Sedan", "SUV", "Truck", "Van", "Coupe"}

// CombineStartTime builds the stored start instant from a date ("2006-01-02")
// and a time-of-day ("15:04") by plain concatenation with a seconds suffix.
// No timezone normalization and no validation that the result parses.
func CombineStartTime(date, timeOfDay string) string {
	return fmt.Sprintf("%sT%s:00", date, timeOfDay)
}

// FormatCurrency renders an amount with thousands separators, e.g. "$14,500.00".
func FormatCurrency(amount float64) string {
	return "$" + humanize.CommafWithDigits(amount, 2)
}

// FormatTimeOfDay renders the time-of-day portion of a stored start instant,
// e.g. "1:00 PM". Unparseable values are returned unchanged.
func FormatTimeOfDay(startTime string) string {
	t, err := time.Parse(StartTimeLayout, startTime)
	if err != nil {
		return startTime
	}
	return t.Format("3:04 PM")
}

// FormatVehicleLabel renders a vehicle the way the dashboard lists it,
// e.g. "2021 Tesla Model 3". A zero year is omitted.
func FormatVehicleLabel(year int, make, model string) string {
	if year == 0 {
		return fmt.Sprintf("%s %s", make, model)
	}
	return fmt.Sprintf("%d %s %s", year, make, model)
}

// TodayRange returns today's start-instant bounds in the stored string form.
func TodayRange() (string, string) {
	n := now.With(time.Now())
	return n.BeginningOfDay().Format(StartTimeLayout), n.EndOfDay().Format(StartTimeLayout)
}
