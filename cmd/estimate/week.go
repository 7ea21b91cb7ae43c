package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

var (
	weekHousing string
	weekBHK     string
	weekTemps   string
	weekName    string
	weekCity    string
	weekArea    string
	weekAge     int
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Estimate a full week",
	Long: `Estimates Monday through Sunday for a household and prints the daily table,
the weekly summary, the bill and saving recommendations.`,
	Example: `  estimate week --name Asha --city Pune --area Kothrud --age 34 \
    --housing flat --bhk 2 --temps 31,33,35,30,28,26,29`,
	RunE: runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekHousing, "housing", "flat", "housing type (flat or tenement)")
	weekCmd.Flags().StringVar(&weekBHK, "bhk", "1", "BHK size (1, 2 or 3)")
	weekCmd.Flags().StringVar(&weekTemps, "temps", "25,25,25,25,25,25,25", "seven comma separated temperatures, Monday first")
	weekCmd.Flags().StringVar(&weekName, "name", "", "household name")
	weekCmd.Flags().StringVar(&weekCity, "city", "", "city")
	weekCmd.Flags().StringVar(&weekArea, "area", "", "area or locality")
	weekCmd.Flags().IntVar(&weekAge, "age", 25, "age of the respondent")
	rootCmd.AddCommand(weekCmd)
}

// parseTemperatures splits a comma separated list. The count is checked by
// the estimate service.
func parseTemperatures(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	temps := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrTemperatureNotNumeric, p)
		}
		temps = append(temps, t)
	}
	return temps, nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	temps, err := parseTemperatures(weekTemps)
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	est, err := svc.EstimateWeek(cmd.Context(), services.WeeklyEstimateInput{
		Name:         weekName,
		City:         weekCity,
		Area:         weekArea,
		Age:          weekAge,
		HousingType:  weekHousing,
		BHK:          weekBHK,
		Temperatures: temps,
	})
	if err != nil {
		return err
	}

	printWeek(cmd, est)
	return nil
}

func printWeek(cmd *cobra.Command, est *services.WeeklyEstimate) {
	out := cmd.OutOrStdout()
	currency := est.Bill.Currency

	fmt.Fprintf(out, "%s, %s (%s) - %s %s\n\n", est.Household.Name, est.Household.Area, est.Household.City,
		est.Profile.Housing, est.Profile.BHK)

	fmt.Fprintf(out, "%-10s %6s %-12s %10s %14s\n", "Day", "Temp", "Weather", "kWh", "Cost")
	fmt.Fprintln(out, "------------------------------------------------------------")
	for _, d := range est.Days {
		fmt.Fprintf(out, "%-10s %5.0f° %-12s %10s %14s\n",
			d.Day, d.EffectiveTemperatureC, d.Weather, formatKWh(d.TotalKWh), formatMoney(currency, d.Cost))
	}
	fmt.Fprintln(out, "------------------------------------------------------------")

	s := est.Summary
	fmt.Fprintf(out, "Total:    %s kWh\n", formatKWh(s.TotalKWh))
	fmt.Fprintf(out, "Average:  %s kWh/day\n", formatKWh(s.AverageKWh))
	fmt.Fprintf(out, "Lowest:   %s (%s kWh)\n", s.MinDay.Day, formatKWh(s.MinDay.TotalKWh))
	fmt.Fprintf(out, "Highest:  %s (%s kWh)\n", s.MaxDay.Day, formatKWh(s.MaxDay.TotalKWh))
	fmt.Fprintf(out, "Weekly:   %s\n", formatMoney(currency, est.Bill.Weekly))
	fmt.Fprintf(out, "Monthly:  %s\n", formatMoney(currency, est.Bill.Monthly))

	fmt.Fprintln(out, "\nBy category:")
	for _, c := range domain.Categories {
		fmt.Fprintf(out, "  %-14s %10s kWh\n", c.Label(), formatKWh(s.CategoryTotals.Get(c)))
	}

	fmt.Fprintf(out, "\nTrend: %+.3f kWh per °C\n", est.Charts.TrendLine.Slope)

	fmt.Fprintln(out, "\nRecommendations:")
	for i, r := range est.Recommendations {
		fmt.Fprintf(out, "  %d. %s\n", i+1, r)
	}
}
