package domain

// WeekDays are the day labels of one estimate week, in order.
var WeekDays = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

const DaysPerWeek = 7

type DailyReading struct {
	Day                   string         `json:"day"`
	TemperatureC          float64        `json:"temperature_c"`
	EffectiveTemperatureC float64        `json:"effective_temperature_c"`
	AdjustmentFactor      float64        `json:"adjustment_factor"`
	Categories            CategoryValues `json:"categories"`
	TotalKWh              float64        `json:"total_kwh"`
}

// DailyEnergy estimates one day's consumption. Only the fan/AC category is
// weather adjusted; the other categories stay at their base values.
func DailyEnergy(housing HousingType, bhk BHK, tempC float64) (DailyReading, error) {
	return DailyEnergyFor("", housing, bhk, tempC)
}

// DailyEnergyFor is DailyEnergy with a day label attached to the reading.
func DailyEnergyFor(day string, housing HousingType, bhk BHK, tempC float64) (DailyReading, error) {
	base, err := LookupBaseProfile(housing, bhk)
	if err != nil {
		return DailyReading{}, err
	}

	factor := AdjustmentFactor(tempC)

	values := base
	values.FanAC = base.FanAC * factor

	return DailyReading{
		Day:                   day,
		TemperatureC:          tempC,
		EffectiveTemperatureC: ClampTemperature(tempC),
		AdjustmentFactor:      factor,
		Categories:            values,
		TotalKWh:              values.Total(),
	}, nil
}
