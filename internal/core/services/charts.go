package services

import "github.com/comitanigiacomo/kanso-energy/internal/core/domain"

type PieSlice struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	KWh      float64         `json:"kwh"`
}

type ScatterPoint struct {
	Day          string  `json:"day"`
	TemperatureC float64 `json:"temperature_c"`
	TotalKWh     float64 `json:"total_kwh"`
}

type Charts struct {
	Breakdown map[string][]PieSlice `json:"breakdown"`
	Trend     []Point               `json:"trend"`
	Scatter   []ScatterPoint        `json:"scatter"`
	TrendLine TrendLine             `json:"trend_line"`
}

func breakdownSlices(values domain.CategoryValues) []PieSlice {
	slices := make([]PieSlice, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		slices = append(slices, PieSlice{Category: c, Label: c.Label(), KWh: values.Get(c)})
	}
	return slices
}

// buildCharts lays out the series the dashboard draws: one pie per day, the
// weekly line (x is the day index) and temperature vs energy with its fit.
func buildCharts(readings []domain.DailyReading, line TrendLine) Charts {
	charts := Charts{
		Breakdown: make(map[string][]PieSlice, len(readings)),
		Trend:     make([]Point, 0, len(readings)),
		Scatter:   make([]ScatterPoint, 0, len(readings)),
		TrendLine: line,
	}

	for i, r := range readings {
		charts.Breakdown[r.Day] = breakdownSlices(r.Categories)
		charts.Trend = append(charts.Trend, Point{X: float64(i), Y: r.TotalKWh})
		charts.Scatter = append(charts.Scatter, ScatterPoint{
			Day:          r.Day,
			TemperatureC: r.EffectiveTemperatureC,
			TotalKWh:     r.TotalKWh,
		})
	}

	return charts
}
