package cli

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/minutes/pkg/observability"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the store and broker connections",
	Long: `Run a minimal read against the store and ping any configured
notification broker.

Exits non-zero when the store is unhealthy. Broker failures only
degrade the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := RequireApp()
		if err != nil {
			return err
		}

		health := app.HealthRegistry.GetOverallHealth(cmd.Context())
		out := cmd.OutOrStdout()

		if jsonOutput {
			data, err := health.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		} else {
			names := make([]string, 0, len(health.Checks))
			for name := range health.Checks {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Fprintf(out, "Status: %s\n", health.Status)
			for _, name := range names {
				check := health.Checks[name]
				fmt.Fprintf(out, "  %-10s %-10s %s\n", name, check.Status, check.Message)
			}
		}

		if health.Status == observability.HealthStatusUnhealthy {
			return fmt.Errorf("store is unhealthy")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
