package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
)

func TestDailyEnergy(t *testing.T) {
	t.Run("Bands: Neutral temperature lands in the documented band", func(t *testing.T) {
		bands := map[domain.BHK][2]float64{
			1: {12, 13},
			2: {17, 18},
			3: {22, 23},
		}

		for _, housing := range []domain.HousingType{domain.Flat, domain.Tenement} {
			for bhk, band := range bands {
				r, err := domain.DailyEnergy(housing, bhk, 27)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, r.TotalKWh, band[0], "%s %s", housing, bhk)
				assert.LessOrEqual(t, r.TotalKWh, band[1], "%s %s", housing, bhk)
			}
		}
	})

	t.Run("Invariant: Total equals the sum of categories", func(t *testing.T) {
		for _, p := range domain.SupportedProfiles() {
			for temp := 0.0; temp <= 50; temp += 2.5 {
				r, err := domain.DailyEnergy(p.Key.Housing, p.Key.BHK, temp)
				require.NoError(t, err)

				sum := 0.0
				for _, c := range domain.Categories {
					v := r.Categories.Get(c)
					assert.GreaterOrEqual(t, v, 0.0)
					sum += v
				}
				assert.Equal(t, sum, r.TotalKWh)
			}
		}
	})

	t.Run("Scenario: Hot Monday beats cool Tuesday only through fan/AC", func(t *testing.T) {
		monday, err := domain.DailyEnergyFor("Monday", domain.Flat, 2, 40)
		require.NoError(t, err)
		tuesday, err := domain.DailyEnergyFor("Tuesday", domain.Flat, 2, 15)
		require.NoError(t, err)

		assert.Equal(t, "Monday", monday.Day)
		assert.Greater(t, monday.TotalKWh, tuesday.TotalKWh)

		assert.Equal(t, monday.Categories.Lighting, tuesday.Categories.Lighting)
		assert.Equal(t, monday.Categories.Appliances, tuesday.Categories.Appliances)
		assert.Equal(t, monday.Categories.WaterHeater, tuesday.Categories.WaterHeater)
		assert.Equal(t, monday.Categories.Refrigerator, tuesday.Categories.Refrigerator)

		fanDelta := monday.Categories.FanAC - tuesday.Categories.FanAC
		assert.InDelta(t, fanDelta, monday.TotalKWh-tuesday.TotalKWh, 1e-9)
	})

	t.Run("Swing: Total stays within the fan/AC swing of the band", func(t *testing.T) {
		base, err := domain.LookupBaseProfile(domain.Tenement, 3)
		require.NoError(t, err)

		hot, _ := domain.DailyEnergy(domain.Tenement, 3, 45)
		cold, _ := domain.DailyEnergy(domain.Tenement, 3, 10)

		assert.InDelta(t, base.Total()+0.3*base.FanAC, hot.TotalKWh, 1e-9)
		assert.InDelta(t, base.Total()-0.9*base.FanAC, cold.TotalKWh, 1e-9)
	})

	t.Run("Clamping: Reading keeps the supplied and effective temperature", func(t *testing.T) {
		r, err := domain.DailyEnergy(domain.Flat, 1, 52)
		require.NoError(t, err)

		assert.Equal(t, 52.0, r.TemperatureC)
		assert.Equal(t, 45.0, r.EffectiveTemperatureC)
		assert.Equal(t, 1.30, r.AdjustmentFactor)
	})

	t.Run("Error: Invalid configuration propagates", func(t *testing.T) {
		_, err := domain.DailyEnergy(domain.Flat, 4, 27)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("Determinism: Same inputs give the same reading", func(t *testing.T) {
		a, _ := domain.DailyEnergy(domain.Tenement, 2, 31.3)
		b, _ := domain.DailyEnergy(domain.Tenement, 2, 31.3)
		assert.Equal(t, a, b)
	})
}
