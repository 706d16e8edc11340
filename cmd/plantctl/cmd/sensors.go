package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/plant-telemetry/internal/api/client"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func sensorsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sensors",
		Short: "Manage sensors",
		Long: "Register sensors, inspect their latest reading and range state,\n" +
			"and page through their reading history.",
	}

	root.AddCommand(
		sensorListCmd(),
		sensorGetCmd(),
		sensorCreateCmd(),
		sensorActivateCmd(),
		sensorDeactivateCmd(),
		sensorReadingsCmd(),
		sensorDeleteCmd(),
	)

	return root
}

func sensorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sensors",
		Example: `  plantctl sensors list
  plantctl sensors list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sensors, err := newClient().ListSensors(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(sensors)
			}
			if len(sensors) == 0 {
				fmt.Println("No sensors found.")
				return nil
			}
			return printSensorTable(os.Stdout, sensors)
		},
	}
}

func sensorGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <code>",
		Short:   "Show sensor details and its latest reading",
		Example: `  plantctl sensors get TK1-LVL`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := newClient().GetSensor(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(d)
			}
			return printSensorDetail(os.Stdout, d)
		},
	}
}

func sensorCreateCmd() *cobra.Command {
	var (
		req        apiclient.SensorRequest
		kind       string
		rangeMin   float64
		rangeMax   float64
		tankCode   string
		isCritical bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new sensor",
		Long: "Register a new sensor. pH sensors are created inactive and must be\n" +
			"activated explicitly before their readings are expected.",
		Example: `  plantctl sensors create --code TK1-LVL --name "Nivel TK1" --kind LEVEL --unit cm \
    --range-min 10 --range-max 90 --critical`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Code == "" || req.Name == "" || req.Unit == "" {
				return errors.New("--code, --name and --unit are required")
			}
			req.Kind = domain.SensorKind(kind)
			if cmd.Flags().Changed("range-min") {
				req.RangeMin = &rangeMin
			}
			if cmd.Flags().Changed("range-max") {
				req.RangeMax = &rangeMax
			}
			if tankCode != "" {
				req.TankCode = &tankCode
			}
			req.IsCritical = isCritical

			created, err := newClient().CreateSensor(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Sensor created: %s (active: %v)\n", created.Code, created.Active)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Code, "code", "", "unique device code")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&kind, "kind", string(domain.SensorLevel), "sensor kind (LEVEL, INFRARED, PH, OTHER)")
	cmd.Flags().StringVar(&req.Unit, "unit", "", "measurement unit")
	cmd.Flags().StringVar(&req.Model, "model", "", "hardware model")
	cmd.Flags().StringVar(&req.Location, "location", "", "location reference")
	cmd.Flags().StringVar(&req.Description, "description", "", "free-form description")
	cmd.Flags().Float64Var(&rangeMin, "range-min", 0, "lower bound of the expected range")
	cmd.Flags().Float64Var(&rangeMax, "range-max", 0, "upper bound of the expected range")
	cmd.Flags().StringVar(&tankCode, "tank", "", "tank code the sensor belongs to")
	cmd.Flags().BoolVar(&isCritical, "critical", false, "mark the sensor as critical")

	return cmd
}

func sensorActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "activate <code>",
		Short:   "Activate a sensor",
		Example: `  plantctl sensors activate TK1-PH`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSensorSetActive(args[0], true)
		},
	}
}

func sensorDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deactivate <code>",
		Short:   "Deactivate a sensor",
		Example: `  plantctl sensors deactivate TK1-PH`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSensorSetActive(args[0], false)
		},
	}
}

func runSensorSetActive(code string, active bool) error {
	if _, err := newClient().SetSensorActive(context.Background(), code, active); err != nil {
		return err
	}

	action := "activated"
	if !active {
		action = "deactivated"
	}
	fmt.Printf("Sensor %s %s.\n", code, action)
	return nil
}

func sensorReadingsCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "readings <code>",
		Short: "List a sensor's readings, most recent first",
		Example: `  plantctl sensors readings TK1-LVL
  plantctl sensors readings TK1-LVL --limit 10 --offset 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			page, err := newClient().ListSensorReadings(context.Background(), args[0], limit, offset)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Readings) == 0 {
				fmt.Println("No readings found.")
				return nil
			}
			return printReadingTable(os.Stdout, page.Readings)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum readings to return (server default 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "readings to skip")

	return cmd
}

func sensorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <code>",
		Short:   "Delete a sensor with its readings, rules and alerts",
		Example: `  plantctl sensors delete TK1-LVL`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteSensor(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Sensor %s deleted.\n", args[0])
			return nil
		},
	}
}
