package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/minutes/pkg/config"
	"github.com/felixgeelhaar/minutes/schema"
	"github.com/spf13/cobra"
)

var schemaDriver string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the store setup script",
	Long: `Print the DDL that creates the meeting_minutes, attendees and
meeting_attendees tables. Apply it with the store's own tooling.

Examples:
  minutes schema --driver postgres | psql "$MINUTES_STORE_URL"
  minutes schema --driver sqlite | sqlite3 minutes.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := database.Driver(schemaDriver)
		if schemaDriver == "" || schemaDriver == "auto" {
			driver = database.DetectDriver(storeURL())
		}

		switch driver {
		case database.DriverPostgres:
			fmt.Fprint(cmd.OutOrStdout(), schema.Postgres)
		case database.DriverSQLite:
			fmt.Fprint(cmd.OutOrStdout(), schema.SQLite)
		default:
			return fmt.Errorf("unsupported database driver: %s", driver)
		}
		return nil
	},
}

func storeURL() string {
	if app != nil && app.Config != nil {
		return app.Config.StoreURL
	}
	return os.Getenv(config.EnvStoreURL)
}

func init() {
	schemaCmd.Flags().StringVar(&schemaDriver, "driver", "auto", "store driver (postgres, sqlite, auto)")
	rootCmd.AddCommand(schemaCmd)
}
