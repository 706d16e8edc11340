package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/plant-telemetry/internal/api/client"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func alertsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "alerts",
		Short: "Inspect alerts raised by rules",
	}

	root.AddCommand(alertListCmd())
	return root
}

func alertListCmd() *cobra.Command {
	var (
		f      apiclient.AlertFilter
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts, most recent first",
		Example: `  plantctl alerts list
  plantctl alerts list --sensor TK1-LVL --status NEW --limit 20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			f.Status = domain.AlertStatus(strings.ToUpper(status))

			page, err := newClient().ListAlerts(context.Background(), f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertTable(os.Stdout, page.Alerts)
		},
	}
	cmd.Flags().StringVar(&f.SensorCode, "sensor", "", "only alerts for this sensor code")
	cmd.Flags().StringVar(&status, "status", "", "only alerts in this status (NEW, IN_PROGRESS, RESOLVED)")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "maximum alerts to return (server default 50)")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "alerts to skip")

	return cmd
}
