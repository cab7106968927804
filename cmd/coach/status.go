package main

import (
	"fmt"
	"os"

	"toxicity-coach/services"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var guild, user, csvPath string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the respect score of a user, optionally exporting the history as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			respect, records, err := services.NewStatusService(a.log, a.scores, a.config.StatusWindow()).Status(guild, user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Respect %3.0f/100 %s\n", respect.Score, services.Meter(respect.Score, services.DefaultMeterWidth))
			fmt.Fprintf(out, "Messages: %d  average toxicity: %.2f  peak: %.2f\n",
				respect.Samples, respect.AvgToxicity, respect.PeakToxicity)

			if csvPath == "" {
				return nil
			}
			f, err := os.Create(csvPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := services.ExportCSV(f, records); err != nil {
				return err
			}
			fmt.Fprintf(out, "Exported %d rows to %s\n", len(records), csvPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&guild, "guild", "", "guild id")
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the history to this CSV file")
	_ = cmd.MarkFlagRequired("guild")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
