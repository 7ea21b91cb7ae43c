package services

import "github.com/comitanigiacomo/kanso-energy/internal/core/domain"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrendLine is the least squares fit of daily total kWh on temperature.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	From      Point   `json:"from"`
	To        Point   `json:"to"`
}

func (l TrendLine) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// FitTrend regresses TotalKWh on the effective temperature. With no spread in
// temperature the line is flat at the mean total.
func FitTrend(readings []domain.DailyReading) TrendLine {
	n := float64(len(readings))
	if n == 0 {
		return TrendLine{}
	}

	var sumX, sumY float64
	minX, maxX := readings[0].EffectiveTemperatureC, readings[0].EffectiveTemperatureC
	for _, r := range readings {
		x := r.EffectiveTemperatureC
		sumX += x
		sumY += r.TotalKWh
		minX = min(minX, x)
		maxX = max(maxX, x)
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for _, r := range readings {
		dx := r.EffectiveTemperatureC - meanX
		sxx += dx * dx
		sxy += dx * (r.TotalKWh - meanY)
	}

	line := TrendLine{Intercept: meanY}
	if sxx > 0 {
		line.Slope = sxy / sxx
		line.Intercept = meanY - line.Slope*meanX
	}

	line.From = Point{X: minX, Y: line.At(minX)}
	line.To = Point{X: maxX, Y: line.At(maxX)}
	return line
}
