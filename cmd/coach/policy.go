package main

import (
	"fmt"

	"toxicity-coach/domain"
	"toxicity-coach/services"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Show or change the thresholds of a guild channel",
	}
	cmd.AddCommand(newPolicyShowCmd(), newPolicySetCmd())
	return cmd
}

func scopeFlags(cmd *cobra.Command, scope *domain.Scope) {
	cmd.Flags().StringVar(&scope.Guild, "guild", "", "guild id")
	cmd.Flags().StringVar(&scope.Channel, "channel", "", "channel id")
	_ = cmd.MarkFlagRequired("guild")
	_ = cmd.MarkFlagRequired("channel")
}

func newPolicyShowCmd() *cobra.Command {
	var scope domain.Scope
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the threshold in force for every label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			thresholds, err := services.NewPolicyService(a.log, a.policies).EffectiveThresholds(scope)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Label", "Threshold", "Source"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, t := range thresholds {
				source := "default"
				if t.Overridden {
					source = "override"
				}
				table.Append([]string{string(t.Label), fmt.Sprintf("%.2f", t.Value), source})
			}
			table.Render()
			return nil
		},
	}
	scopeFlags(cmd, &scope)
	return cmd
}

func newPolicySetCmd() *cobra.Command {
	var (
		scope domain.Scope
		label string
		value float64
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Override the threshold of one label (clamped into [0,1])",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			stored, err := services.NewPolicyService(a.log, a.policies).SetThreshold(scope, label, value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s threshold for %s set to %.2f\n", label, scope, stored)
			return nil
		},
	}
	scopeFlags(cmd, &scope)
	cmd.Flags().StringVar(&label, "label", "", "toxicity, severe_toxicity, insult, threat, obscene or identity_attack")
	cmd.Flags().Float64Var(&value, "value", 0, "threshold in [0,1]")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
