package main

import (
	"fmt"
	"strings"

	"toxicity-coach/domain"
	"toxicity-coach/policy"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var scope domain.Scope
	cmd := &cobra.Command{
		Use:   "score <text>",
		Short: "Score a text and show the policy decision for a guild channel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			_, scorer, err := a.loadScorer()
			if err != nil {
				return err
			}
			analysis := scorer.Analyze(strings.Join(args, " "))
			decision, err := policy.NewEvaluator(a.policies).Decide(scope, analysis.Scores)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Label", "Score", "Threshold", "Over"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, l := range domain.Labels {
				ld := decision.Labels[l]
				over := "no"
				if ld.Over {
					over = color.New(color.FgRed, color.OpBold).Render("yes")
				}
				table.Append([]string{string(l), fmt.Sprintf("%.4f", ld.Score), fmt.Sprintf("%.2f", ld.Threshold), over})
			}
			table.Render()

			if terms := analysis.Hits.Terms(); len(terms) > 0 {
				fmt.Fprintf(out, "Matched: %s\n", strings.Join(terms, ", "))
			}
			if len(analysis.Fired) > 0 {
				fmt.Fprintf(out, "Rules: %s\n", strings.Join(analysis.Fired, ", "))
			}
			fmt.Fprintf(out, "Triggered: %t\n%s\n", decision.Triggered, decision.Explain())
			return nil
		},
	}
	cmd.Flags().StringVar(&scope.Guild, "guild", "default", "guild id")
	cmd.Flags().StringVar(&scope.Channel, "channel", "default", "channel id")
	return cmd
}
