package domain

import "fmt"

type DayRef struct {
	Day      string  `json:"day"`
	Index    int     `json:"index"`
	TotalKWh float64 `json:"total_kwh"`
}

type WeeklySummary struct {
	TotalKWh            float64        `json:"total_kwh"`
	AverageKWh          float64        `json:"average_kwh"`
	MinDay              DayRef         `json:"min_day"`
	MaxDay              DayRef         `json:"max_day"`
	CategoryTotals      CategoryValues `json:"category_totals"`
	AverageTemperatureC float64        `json:"average_temperature_c"`
}

// NewWeeklySummary aggregates exactly seven readings. The readings are assumed
// to come from the same housing configuration; that is not re-checked here.
// Ties for min/max go to the earliest reading.
func NewWeeklySummary(readings []DailyReading) (WeeklySummary, error) {
	if len(readings) != DaysPerWeek {
		return WeeklySummary{}, fmt.Errorf("%w: got %d", ErrMalformedAggregateInput, len(readings))
	}

	var s WeeklySummary
	tempSum := 0.0

	for i, r := range readings {
		s.TotalKWh += r.TotalKWh
		s.CategoryTotals = s.CategoryTotals.Add(r.Categories)
		tempSum += r.EffectiveTemperatureC

		ref := DayRef{Day: r.Day, Index: i, TotalKWh: r.TotalKWh}
		if i == 0 || r.TotalKWh < s.MinDay.TotalKWh {
			s.MinDay = ref
		}
		if i == 0 || r.TotalKWh > s.MaxDay.TotalKWh {
			s.MaxDay = ref
		}
	}

	s.AverageKWh = s.TotalKWh / DaysPerWeek
	s.AverageTemperatureC = tempSum / DaysPerWeek

	return s, nil
}
