package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
)

type EstimateService struct {
	tariff Tariff
	now    func() time.Time
}

func NewEstimateService(tariff Tariff) *EstimateService {
	return &EstimateService{
		tariff: tariff,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type DailyEstimateInput struct {
	Day          string
	HousingType  string
	BHK          string
	TemperatureC float64
}

type WeeklyEstimateInput struct {
	Name         string
	City         string
	Area         string
	Age          int
	HousingType  string
	BHK          string
	Temperatures []float64
}

type DayEstimate struct {
	domain.DailyReading
	Weather domain.WeatherBand `json:"weather"`
	Tip     domain.Tip         `json:"tip"`
	Cost    decimal.Decimal    `json:"cost"`
}

type WeeklyEstimate struct {
	ID              string               `json:"id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	Household       domain.Household     `json:"household"`
	Profile         domain.ProfileKey    `json:"profile"`
	Days            []DayEstimate        `json:"days"`
	Summary         domain.WeeklySummary `json:"summary"`
	Bill            Bill                 `json:"bill"`
	Charts          Charts               `json:"charts"`
	Recommendations []string             `json:"recommendations"`
}

func (s *EstimateService) Tariff() Tariff {
	return s.tariff
}

func (s *EstimateService) Profiles() []domain.Profile {
	return domain.SupportedProfiles()
}

func (s *EstimateService) Profile(housingType, bhk string) (domain.Profile, error) {
	key, base, err := resolveProfile(housingType, bhk)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{Key: key, Base: base, NeutralTotalKWh: base.Total()}, nil
}

func resolveProfile(housingType, bhk string) (domain.ProfileKey, domain.CategoryValues, error) {
	housing, err := domain.ParseHousingType(housingType)
	if err != nil {
		return domain.ProfileKey{}, domain.CategoryValues{}, err
	}
	b, err := domain.ParseBHK(bhk)
	if err != nil {
		return domain.ProfileKey{}, domain.CategoryValues{}, err
	}
	base, err := domain.LookupBaseProfile(housing, b)
	if err != nil {
		return domain.ProfileKey{}, domain.CategoryValues{}, err
	}
	return domain.ProfileKey{Housing: housing, BHK: b}, base, nil
}

func (s *EstimateService) dayEstimate(r domain.DailyReading) DayEstimate {
	return DayEstimate{
		DailyReading: r,
		Weather:      domain.WeatherBandFor(r.EffectiveTemperatureC),
		Tip:          domain.DayTipFor(r.EffectiveTemperatureC),
		Cost:         s.tariff.Cost(r.TotalKWh),
	}
}

func (s *EstimateService) EstimateDay(ctx context.Context, input DailyEstimateInput) (*DayEstimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, _, err := resolveProfile(input.HousingType, input.BHK)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTemperature(input.TemperatureC); err != nil {
		return nil, err
	}

	reading, err := domain.DailyEnergyFor(input.Day, key.Housing, key.BHK, input.TemperatureC)
	if err != nil {
		return nil, err
	}

	day := s.dayEstimate(reading)
	return &day, nil
}

// EstimateWeek runs the full pass for one interaction: validate, seven daily
// readings, weekly summary, bill, charts and recommendations. Nothing is
// cached between calls.
func (s *EstimateService) EstimateWeek(ctx context.Context, input WeeklyEstimateInput) (*WeeklyEstimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	household, err := domain.NewHousehold(input.Name, input.City, input.Area, input.Age)
	if err != nil {
		return nil, err
	}

	key, _, err := resolveProfile(input.HousingType, input.BHK)
	if err != nil {
		return nil, err
	}

	if len(input.Temperatures) != domain.DaysPerWeek {
		return nil, fmt.Errorf("%w: got %d", domain.ErrTemperatureCount, len(input.Temperatures))
	}

	readings := make([]domain.DailyReading, 0, domain.DaysPerWeek)
	for i, temp := range input.Temperatures {
		if err := domain.ValidateTemperature(temp); err != nil {
			return nil, fmt.Errorf("%s: %w", domain.WeekDays[i], err)
		}
		r, err := domain.DailyEnergyFor(domain.WeekDays[i], key.Housing, key.BHK, temp)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}

	summary, err := domain.NewWeeklySummary(readings)
	if err != nil {
		return nil, fmt.Errorf("aggregating week: %w", err)
	}

	days := make([]DayEstimate, 0, len(readings))
	for _, r := range readings {
		days = append(days, s.dayEstimate(r))
	}

	return &WeeklyEstimate{
		ID:              uuid.New().String(),
		GeneratedAt:     s.now(),
		Household:       household,
		Profile:         key,
		Days:            days,
		Summary:         summary,
		Bill:            s.tariff.Estimate(readings, summary),
		Charts:          buildCharts(readings, FitTrend(readings)),
		Recommendations: domain.Recommendations(key.Housing, summary.AverageTemperatureC, summary.AverageKWh),
	}, nil
}
