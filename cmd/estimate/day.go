package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

var (
	dayHousing string
	dayBHK     string
	dayTemp    float64
	dayName    string
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Estimate a single day",
	Long:  `Estimates one day of consumption for a housing configuration at the given temperature.`,
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&dayHousing, "housing", "flat", "housing type (flat or tenement)")
	dayCmd.Flags().StringVar(&dayBHK, "bhk", "1", "BHK size (1, 2 or 3)")
	dayCmd.Flags().Float64Var(&dayTemp, "temp", 25, "temperature in degrees Celsius")
	dayCmd.Flags().StringVar(&dayName, "day", "", "day label shown in the output")
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	est, err := svc.EstimateDay(cmd.Context(), services.DailyEstimateInput{
		Day:          dayName,
		HousingType:  dayHousing,
		BHK:          dayBHK,
		TemperatureC: dayTemp,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if est.Day != "" {
		fmt.Fprintf(out, "%s\n", est.Day)
	}
	fmt.Fprintf(out, "Temperature: %.1f°C (%s), factor %.2f\n", est.EffectiveTemperatureC, est.Weather, est.AdjustmentFactor)
	fmt.Fprintln(out, "----------------------------------------")
	for _, c := range domain.Categories {
		fmt.Fprintf(out, "%-14s %10s kWh\n", c.Label(), formatKWh(est.Categories.Get(c)))
	}
	fmt.Fprintln(out, "----------------------------------------")
	fmt.Fprintf(out, "%-14s %10s kWh\n", "Total", formatKWh(est.TotalKWh))
	fmt.Fprintf(out, "%-14s %14s\n", "Cost", formatMoney(svc.Tariff().Currency, est.Cost))
	fmt.Fprintf(out, "\n%s: %s\n", est.Tip.Title, est.Tip.Body)
	return nil
}
