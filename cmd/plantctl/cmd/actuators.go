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

func actuatorsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "actuators",
		Short: "Manage actuators",
		Long: "Register actuators and switch them on or off. Rules only ever switch\n" +
			"an actuator on; switching it off is always a manual action.",
	}

	root.AddCommand(
		actuatorListCmd(),
		actuatorGetCmd(),
		actuatorCreateCmd(),
		actuatorSwitchCmd("on", true),
		actuatorSwitchCmd("off", false),
		actuatorDeleteCmd(),
	)

	return root
}

func actuatorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all actuators",
		Example: `  plantctl actuators list
  plantctl actuators list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			actuators, err := newClient().ListActuators(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(actuators)
			}
			if len(actuators) == 0 {
				fmt.Println("No actuators found.")
				return nil
			}
			return printActuatorTable(os.Stdout, actuators)
		},
	}
}

func actuatorGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <code>",
		Short:   "Show actuator details",
		Example: `  plantctl actuators get TK1-PUMP`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newClient().GetActuator(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printActuatorDetail(os.Stdout, a)
		},
	}
}

func actuatorCreateCmd() *cobra.Command {
	var (
		req      apiclient.ActuatorRequest
		kind     string
		power    float64
		tankCode string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new actuator",
		Example: `  plantctl actuators create --code TK1-PUMP --name "Bomba TK1" --kind PUMP \
    --channel GPIO23 --power 750`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Code == "" || req.Name == "" || req.Channel == "" {
				return errors.New("--code, --name and --channel are required")
			}
			req.Kind = domain.ActuatorKind(kind)
			if cmd.Flags().Changed("power") {
				req.PowerWatts = &power
			}
			if tankCode != "" {
				req.TankCode = &tankCode
			}

			created, err := newClient().CreateActuator(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Actuator created: %s (%s)\n", created.Code, onOff(created.IsOn))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Code, "code", "", "unique device code")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&kind, "kind", string(domain.ActuatorPump), "actuator kind (PUMP, VALVE, ALARM, OTHER)")
	cmd.Flags().StringVar(&req.Channel, "channel", "", "hardware channel, e.g. GPIO23")
	cmd.Flags().StringVar(&req.Location, "location", "", "location reference")
	cmd.Flags().StringVar(&req.Description, "description", "", "free-form description")
	cmd.Flags().Float64Var(&power, "power", 0, "rated power in watts")
	cmd.Flags().StringVar(&tankCode, "tank", "", "tank code the actuator serves")

	return cmd
}

func actuatorSwitchCmd(state string, on bool) *cobra.Command {
	return &cobra.Command{
		Use:     state + " <code>",
		Short:   "Switch an actuator " + state,
		Example: "  plantctl actuators " + state + " TK1-PUMP",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newClient().SwitchActuator(context.Background(), args[0], on)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			fmt.Printf("Actuator %s is %s.\n", a.Code, onOff(a.IsOn))
			return nil
		},
	}
}

func actuatorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <code>",
		Short:   "Delete an actuator",
		Example: `  plantctl actuators delete TK1-PUMP`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteActuator(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Actuator %s deleted.\n", args[0])
			return nil
		},
	}
}
