// asklinedemo is a playground binary for the askline packages. Each
// subcommand exercises one part of the library interactively.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askline/askline/ask"
	"github.com/askline/askline/output"
)

func main() {
	root := &cobra.Command{
		Use:           "asklinedemo",
		Short:         "Interactive demos for the askline input library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDataCmd(),
		newClosingCmd(),
		newChooseCmd(),
		newSurveyCmd(),
		newSecretCmd(),
	)

	if err := root.Execute(); err != nil {
		if errors.Is(err, ask.ErrCanceled) {
			fmt.Println("Exiting early - goodbye!")
			return
		}
		output.Error(err.Error())
		os.Exit(1)
	}
}
