package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/plant-telemetry/internal/api/client"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func rulesCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rules",
		Short: "Manage threshold rules",
		Long: "Rules compare each new reading of a sensor against a threshold. A rule\n" +
			"that fires raises an alert and switches its actuator on, if it has one.",
	}

	root.AddCommand(
		ruleListCmd(),
		ruleCreateCmd(),
		ruleSetActiveCmd("enable", "Enable a rule", true),
		ruleSetActiveCmd("disable", "Disable a rule", false),
	)

	return root
}

func ruleListCmd() *cobra.Command {
	var sensor string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules",
		Example: `  plantctl rules list
  plantctl rules list --sensor TK1-LVL`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules, err := newClient().ListRules(context.Background(), sensor)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rules)
			}
			if len(rules) == 0 {
				fmt.Println("No rules found.")
				return nil
			}
			return printRuleTable(os.Stdout, rules)
		},
	}
	cmd.Flags().StringVar(&sensor, "sensor", "", "only rules for this sensor code")

	return cmd
}

func ruleCreateCmd() *cobra.Command {
	var (
		req        apiclient.RuleRequest
		comparator string
		severity   string
		inactive   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a threshold rule",
		Example: `  # Alert and start the pump when the level exceeds 80 cm
  plantctl rules create --sensor TK1-LVL --comparator GT --threshold 80 \
    --actuator TK1-PUMP --message "nivel alto en TK1"

  # Alert only, as critical
  plantctl rules create --sensor TK1-PH --comparator LT --threshold 6.5 \
    --severity CRITICAL --message "pH bajo"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.SensorCode == "" || !cmd.Flags().Changed("threshold") || req.ActionMessage == "" {
				return errors.New("--sensor, --threshold and --message are required")
			}
			req.Comparator = domain.Comparator(comparator)
			req.Severity = domain.Severity(severity)
			if inactive {
				active := false
				req.Active = &active
			}

			created, err := newClient().CreateRule(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Rule created: %d (%s %s)\n", created.ID, created.Comparator, formatFloat(created.Threshold))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.SensorCode, "sensor", "", "sensor code")
	cmd.Flags().StringVar(&req.ActuatorCode, "actuator", "", "actuator code to switch on when the rule fires")
	cmd.Flags().StringVar(&comparator, "comparator", string(domain.CompareGT), "comparator (GT, LT, GE, LE, EQ)")
	cmd.Flags().Float64Var(&req.Threshold, "threshold", 0, "threshold value")
	cmd.Flags().StringVar(&req.ActionMessage, "message", "", "alert message")
	cmd.Flags().StringVar(&severity, "severity", "", "alert severity (INFO, WARN, CRITICAL; default WARN)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the rule disabled")

	return cmd
}

func ruleSetActiveCmd(action, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:     action + " <id>",
		Short:   short,
		Example: "  plantctl rules " + action + " 12",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid rule id %q", args[0])
			}
			if err := newClient().SetRuleActive(context.Background(), id, active); err != nil {
				return err
			}
			fmt.Printf("Rule %d %sd.\n", id, action)
			return nil
		},
	}
}
