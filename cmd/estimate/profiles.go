package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the supported housing configurations",
	Long:  `Prints the base daily kWh of every category for each supported housing type and BHK size.`,
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %-5s", "Housing", "BHK")
	for _, c := range domain.Categories {
		fmt.Fprintf(out, " %12s", c.Label())
	}
	fmt.Fprintf(out, " %10s\n", "Total")
	fmt.Fprintln(out, "--------------------------------------------------------------------------------------------")

	for _, p := range svc.Profiles() {
		fmt.Fprintf(out, "%-10s %-5s", p.Key.Housing, p.Key.BHK)
		for _, c := range domain.Categories {
			fmt.Fprintf(out, " %12s", formatKWh(p.Base.Get(c)))
		}
		fmt.Fprintf(out, " %10s\n", formatKWh(p.NeutralTotalKWh))
	}
	return nil
}
