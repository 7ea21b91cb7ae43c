package domain

type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var (
	hotDayTip = Tip{
		Title: "Hot Day Tips",
		Body:  "Use AC efficiently, close curtains during day, use fans with AC",
	}
	coldDayTip = Tip{
		Title: "Cold Day Tips",
		Body:  "Reduced fan usage, use natural light, water heater usage may increase",
	}
	comfortableDayTip = Tip{
		Title: "Comfortable Day Tips",
		Body:  "Perfect weather for natural ventilation, minimal AC usage needed",
	}
)

func DayTipFor(tempC float64) Tip {
	switch {
	case tempC > 30:
		return hotDayTip
	case tempC < 20:
		return coldDayTip
	default:
		return comfortableDayTip
	}
}

const (
	hotWeekThresholdC  = 30.0
	highUsageThreshold = 15.0
)

var (
	hotWeekRecommendations = []string{
		"Install ceiling fans to reduce AC load by 20-30%",
		"Use solar water heater to reduce electricity consumption",
		"Improve insulation to maintain cool temperatures",
	}
	highUsageRecommendations = []string{
		"Switch to LED lights to reduce lighting energy by 80%",
		"Look for 5-star rated appliances for better efficiency",
		"Use timer-based water heaters",
	}
	tenementRecommendations = []string{
		"Consider rainwater harvesting to reduce water heating needs",
		"Plant trees around the house for natural cooling",
	}
	generalRecommendations = []string{
		"Use smart power strips to eliminate standby power consumption",
		"Set AC temperature to 24°C instead of lower temperatures",
	}
)

// Recommendations builds the weekly saving tips. Order is stable: hot-week,
// high-usage, housing-specific, then the general tips that always apply.
func Recommendations(housing HousingType, avgTempC, avgDailyKWh float64) []string {
	var recs []string
	if avgTempC > hotWeekThresholdC {
		recs = append(recs, hotWeekRecommendations...)
	}
	if avgDailyKWh > highUsageThreshold {
		recs = append(recs, highUsageRecommendations...)
	}
	if housing == Tenement {
		recs = append(recs, tenementRecommendations...)
	}
	return append(recs, generalRecommendations...)
}
