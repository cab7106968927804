package main

import (
	goerrors "errors"
	"fmt"
	"os"

	"toxicity-coach/compiler"
	"toxicity-coach/errors"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexicon-compiler: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	var opts compiler.Options
	cmd := &cobra.Command{
		Use:           "lexicon-compiler",
		Short:         "Compile a HurtLex lemma table into the scoring lexicon artifact",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := compiler.Compile(opts)
			if report.Terms > 0 {
				printReport(cmd, report)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d terms to %s\n", report.Terms, report.Out)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "lemma table (tsv/csv, optionally gzipped)")
	cmd.Flags().StringVar(&opts.Out, "out", compiler.DefaultOutput, "artifact destination")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "write even when fewer than 100 lemmas were parsed")
	_ = cmd.MarkFlagRequired("input")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if goerrors.Is(err, errors.ErrTooFewTerms) || goerrors.Is(err, errors.ErrEmptyLemmaSource) || goerrors.Is(err, os.ErrNotExist) {
			return exitConfig, err
		}
		return exitRuntime, err
	}
	return exitOK, nil
}

func printReport(cmd *cobra.Command, report compiler.Report) {
	fmt.Fprintf(cmd.OutOrStdout(), "Parsed lemmas: %d\n", report.Terms)
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Category", "Lemmas"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, c := range report.TopCategories {
		table.Append([]string{string(c.Category), fmt.Sprint(c.Count)})
	}
	table.Render()
}
