package domain

import "math"

const (
	MinTemperatureC = 10.0
	MaxTemperatureC = 45.0

	MinAdjustmentFactor = 0.10
	MaxAdjustmentFactor = 1.30
)

type curvePoint struct {
	tempC  float64
	factor float64
}

// Anchors of the fan/AC multiplier curve. Flat through the cool range, steep
// around comfort, saturating toward the hot end. 27°C is neutral (1.0).
var adjustmentCurve = []curvePoint{
	{10, MinAdjustmentFactor},
	{18, 0.20},
	{22, 0.45},
	{27, 1.00},
	{35, 1.20},
	{45, MaxAdjustmentFactor},
}

// ClampTemperature saturates a temperature into the accepted domain.
// NaN saturates to the minimum.
func ClampTemperature(tempC float64) float64 {
	if math.IsNaN(tempC) || tempC < MinTemperatureC {
		return MinTemperatureC
	}
	if tempC > MaxTemperatureC {
		return MaxTemperatureC
	}
	return tempC
}

// AdjustmentFactor maps a daily temperature to the fan/AC multiplier by linear
// interpolation between curve anchors. It never fails; out-of-range input
// saturates.
func AdjustmentFactor(tempC float64) float64 {
	t := ClampTemperature(tempC)

	prev := adjustmentCurve[0]
	if t <= prev.tempC {
		return prev.factor
	}

	for _, next := range adjustmentCurve[1:] {
		if t == next.tempC {
			return next.factor
		}
		if t < next.tempC {
			f := prev.factor + (t-prev.tempC)*(next.factor-prev.factor)/(next.tempC-prev.tempC)
			return math.Min(math.Max(f, prev.factor), next.factor)
		}
		prev = next
	}

	return MaxAdjustmentFactor
}

type WeatherBand string

const (
	WeatherVeryCold    WeatherBand = "Very Cold"
	WeatherCool        WeatherBand = "Cool"
	WeatherComfortable WeatherBand = "Comfortable"
	WeatherWarm        WeatherBand = "Warm"
	WeatherHot         WeatherBand = "Hot"
	WeatherVeryHot     WeatherBand = "Very Hot"
)

// WeatherBandFor describes a temperature for display.
func WeatherBandFor(tempC float64) WeatherBand {
	switch {
	case tempC < 18:
		return WeatherVeryCold
	case tempC < 22:
		return WeatherCool
	case tempC < 26:
		return WeatherComfortable
	case tempC < 30:
		return WeatherWarm
	case tempC < 35:
		return WeatherHot
	default:
		return WeatherVeryHot
	}
}
