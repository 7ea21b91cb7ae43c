package domain

import "fmt"

// Base daily kWh per category. With a neutral adjustment factor of 1.0 the
// totals are 12.8/17.2/22.2 for flats and 12.9/17.3/22.5 for tenements.
var baseProfiles = map[ProfileKey]CategoryValues{
	{Flat, 1}: {Lighting: 1.5, FanAC: 4.0, Appliances: 3.5, WaterHeater: 2.0, Refrigerator: 1.8},
	{Flat, 2}: {Lighting: 2.2, FanAC: 6.0, Appliances: 4.5, WaterHeater: 2.5, Refrigerator: 2.0},
	{Flat, 3}: {Lighting: 3.0, FanAC: 8.0, Appliances: 6.0, WaterHeater: 3.0, Refrigerator: 2.2},

	{Tenement, 1}: {Lighting: 1.8, FanAC: 5.0, Appliances: 3.0, WaterHeater: 1.5, Refrigerator: 1.6},
	{Tenement, 2}: {Lighting: 2.5, FanAC: 7.0, Appliances: 4.0, WaterHeater: 2.0, Refrigerator: 1.8},
	{Tenement, 3}: {Lighting: 3.5, FanAC: 9.0, Appliances: 5.5, WaterHeater: 2.5, Refrigerator: 2.0},
}

var profileOrder = []ProfileKey{
	{Flat, 1}, {Flat, 2}, {Flat, 3},
	{Tenement, 1}, {Tenement, 2}, {Tenement, 3},
}

// LookupBaseProfile returns the base category values for a registered
// configuration. There is no fallback profile.
func LookupBaseProfile(housing HousingType, bhk BHK) (CategoryValues, error) {
	values, ok := baseProfiles[ProfileKey{Housing: housing, BHK: bhk}]
	if !ok {
		return CategoryValues{}, fmt.Errorf("%w: %s %s", ErrInvalidConfig, housing, bhk)
	}
	return values, nil
}

type Profile struct {
	Key  ProfileKey     `json:"key"`
	Base CategoryValues `json:"base"`
	// NeutralTotalKWh is the daily total at an adjustment factor of 1.0.
	NeutralTotalKWh float64 `json:"neutral_total_kwh"`
}

// SupportedProfiles lists the table in housing then BHK order.
func SupportedProfiles() []Profile {
	profiles := make([]Profile, 0, len(profileOrder))
	for _, key := range profileOrder {
		base := baseProfiles[key]
		profiles = append(profiles, Profile{
			Key:             key,
			Base:            base,
			NeutralTotalKWh: base.Total(),
		})
	}
	return profiles
}
