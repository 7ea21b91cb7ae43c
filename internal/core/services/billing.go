package services

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
)

const (
	DefaultRatePerKWh    = 6.0
	DefaultCurrency      = "INR"
	DefaultWeeksPerMonth = 4.3
)

// Tariff converts estimated kWh into money. It is a flat per-kWh rate with
// no time-of-day structure.
type Tariff struct {
	RatePerKWh    decimal.Decimal
	Currency      string
	WeeksPerMonth decimal.Decimal
}

func DefaultTariff() Tariff {
	return NewTariff(DefaultRatePerKWh, DefaultCurrency, DefaultWeeksPerMonth)
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// NewTariff fills zero, negative or non-finite inputs with defaults.
func NewTariff(ratePerKWh float64, currency string, weeksPerMonth float64) Tariff {
	if !usable(ratePerKWh) {
		ratePerKWh = DefaultRatePerKWh
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	if !usable(weeksPerMonth) {
		weeksPerMonth = DefaultWeeksPerMonth
	}
	return Tariff{
		RatePerKWh:    decimal.NewFromFloat(ratePerKWh),
		Currency:      currency,
		WeeksPerMonth: decimal.NewFromFloat(weeksPerMonth),
	}
}

type DayCost struct {
	Day    string          `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

type Bill struct {
	Currency   string          `json:"currency"`
	RatePerKWh decimal.Decimal `json:"rate_per_kwh"`
	Daily      []DayCost       `json:"daily"`
	Weekly     decimal.Decimal `json:"weekly"`
	Monthly    decimal.Decimal `json:"monthly"`
}

func (t Tariff) Cost(kwh float64) decimal.Decimal {
	return decimal.NewFromFloat(kwh).Mul(t.RatePerKWh).Round(2)
}

// Estimate prices a week. Weekly and monthly figures are computed from the
// unrounded kWh total, not by summing rounded daily amounts.
func (t Tariff) Estimate(readings []domain.DailyReading, summary domain.WeeklySummary) Bill {
	daily := make([]DayCost, 0, len(readings))
	for _, r := range readings {
		daily = append(daily, DayCost{Day: r.Day, Amount: t.Cost(r.TotalKWh)})
	}

	weeklyKWh := decimal.NewFromFloat(summary.TotalKWh)

	return Bill{
		Currency:   t.Currency,
		RatePerKWh: t.RatePerKWh,
		Daily:      daily,
		Weekly:     weeklyKWh.Mul(t.RatePerKWh).Round(2),
		Monthly:    weeklyKWh.Mul(t.WeeksPerMonth).Mul(t.RatePerKWh).Round(2),
	}
}
