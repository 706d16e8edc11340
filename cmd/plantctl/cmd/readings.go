package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/plant-telemetry/internal/normalize"
)

func readingsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "readings",
		Short: "Submit and inspect readings",
	}

	root.AddCommand(
		readingSubmitCmd(),
		readingGetCmd(),
	)

	return root
}

func readingSubmitCmd() *cobra.Command {
	var sensor, value, unit, timestamp, source string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a reading through the ingest endpoint",
		Long: "Submit a reading exactly as a device would. The server evaluates the\n" +
			"sensor's rules against it and may raise alerts or switch actuators.",
		Example: `  plantctl readings submit --sensor TK1-LVL --value 82.5
  plantctl readings submit --sensor TK1-LVL --value 40 --timestamp 2025-11-18T04:30:00Z --source MANUAL`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if sensor == "" || value == "" {
				return errors.New("--sensor and --value are required")
			}
			payload := readingPayload(sensor, value, unit, timestamp, source)

			res, err := newClient().SubmitReading(context.Background(), payload)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Reading %d accepted for sensor %s.\n", res.ReadingID, res.SensorCode)
			return nil
		},
	}
	cmd.Flags().StringVar(&sensor, "sensor", "", "sensor code")
	cmd.Flags().StringVar(&value, "value", "", "measured value")
	cmd.Flags().StringVar(&unit, "unit", "", "unit (defaults to the sensor unit)")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "ISO 8601 timestamp (defaults to now)")
	cmd.Flags().StringVar(&source, "source", "", "source (DEVICE, MANUAL, SIMULATED)")

	return cmd
}

// readingPayload builds an ingest payload. Numeric values are sent as
// numbers; anything else is sent verbatim for the server to judge.
func readingPayload(sensor, value, unit, timestamp, source string) map[string]any {
	payload := map[string]any{normalize.FieldSensorCode: sensor}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		payload[normalize.FieldValue] = f
	} else {
		payload[normalize.FieldValue] = value
	}
	if unit != "" {
		payload[normalize.FieldUnit] = unit
	}
	if timestamp != "" {
		payload[normalize.FieldTimestamp] = timestamp
	}
	if source != "" {
		payload[normalize.FieldSource] = source
	}
	return payload
}

func readingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a reading",
		Example: `  plantctl readings get 1042`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid reading id %q", args[0])
			}
			r, err := newClient().GetReading(context.Background(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(r)
			}
			return printReadingDetail(os.Stdout, r)
		},
	}
}
