package domain

// Category is an appliance grouping with its own base kWh contribution.
type Category string

const (
	CategoryLighting     Category = "lighting"
	CategoryFanAC        Category = "fan_ac"
	CategoryAppliances   Category = "appliances"
	CategoryWaterHeater  Category = "water_heater"
	CategoryRefrigerator Category = "refrigerator"
)

// Categories lists every category in display and summation order.
var Categories = []Category{
	CategoryLighting,
	CategoryFanAC,
	CategoryAppliances,
	CategoryWaterHeater,
	CategoryRefrigerator,
}

var categoryLabels = map[Category]string{
	CategoryLighting:     "Lighting",
	CategoryFanAC:        "Fan/AC",
	CategoryAppliances:   "Appliances",
	CategoryWaterHeater:  "Water Heater",
	CategoryRefrigerator: "Refrigerator",
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// CategoryValues holds kWh per category. It is a plain value: copies never alias.
type CategoryValues struct {
	Lighting     float64 `json:"lighting"`
	FanAC        float64 `json:"fan_ac"`
	Appliances   float64 `json:"appliances"`
	WaterHeater  float64 `json:"water_heater"`
	Refrigerator float64 `json:"refrigerator"`
}

func (v CategoryValues) Get(c Category) float64 {
	switch c {
	case CategoryLighting:
		return v.Lighting
	case CategoryFanAC:
		return v.FanAC
	case CategoryAppliances:
		return v.Appliances
	case CategoryWaterHeater:
		return v.WaterHeater
	case CategoryRefrigerator:
		return v.Refrigerator
	}
	return 0
}

// Total sums the categories in Categories order.
func (v CategoryValues) Total() float64 {
	total := 0.0
	for _, c := range Categories {
		total += v.Get(c)
	}
	return total
}

func (v CategoryValues) Add(o CategoryValues) CategoryValues {
	return CategoryValues{
		Lighting:     v.Lighting + o.Lighting,
		FanAC:        v.FanAC + o.FanAC,
		Appliances:   v.Appliances + o.Appliances,
		WaterHeater:  v.WaterHeater + o.WaterHeater,
		Refrigerator: v.Refrigerator + o.Refrigerator,
	}
}
