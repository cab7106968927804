package main

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"

	"toxicity-coach/errors"

	"github.com/spf13/cobra"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

var errConfig = goerrors.New("config error")

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coach terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run executes the command line and maps the error to an exit code,
// letting every defer (Badger close included) run before main exits.
func run(args []string, out io.Writer) (int, error) {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	if err := root.Execute(); err != nil {
		return exitCode(err), err
	}
	return exitOK, nil
}

func exitCode(err error) int {
	for _, target := range []error{
		errConfig,
		errors.ErrConfiguration,
		errors.ErrLexiconNotFound,
		errors.ErrLexiconMalformed,
		errors.ErrInvalidScope,
		errors.ErrUnknownLabel,
		errors.ErrInvalidThreshold,
	} {
		if goerrors.Is(err, target) {
			return exitConfig
		}
	}
	return exitRuntime
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coach",
		Short:         "Lexicon based toxicity coach for chat communities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newScoreCmd(), newPolicyCmd(), newStatusCmd())
	return root
}
