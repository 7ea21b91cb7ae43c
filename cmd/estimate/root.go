package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-energy/internal/config"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate household electricity use from housing type and weather",
	Long: `estimate computes daily and weekly electricity consumption for a household
from its housing type, BHK size and the week's temperatures, and prices the
result with the configured tariff.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// newService builds an estimate service priced with the configured tariff.
func newService() (*services.EstimateService, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	tariff := services.NewTariff(cfg.Tariff.RatePerKWh, cfg.Tariff.Currency, cfg.Tariff.WeeksPerMonth)
	return services.NewEstimateService(tariff), nil
}

func formatKWh(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func formatMoney(currency string, d decimal.Decimal) string {
	return currency + " " + humanize.FormatFloat("#,###.##", d.InexactFloat64())
}
