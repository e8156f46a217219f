package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askline/askline/ask"
)

const quitKeyword = "quit"

func newClosingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "closing",
		Short: "Demonstrate quitting a prompt early with a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Enter the phrase %q to close the application early!\n", quitKeyword)

			_, err := ask.New[string]().
				Prompt("Enter: ").
				CancelOn(quitKeyword).
				Styled().
				Wait()
			if errors.Is(err, ask.ErrCanceled) {
				fmt.Println("Exiting early - goodbye!")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println("Exiting normally - goodbye!")
			return nil
		},
	}
}
