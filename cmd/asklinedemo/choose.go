package main

import (
	"github.com/spf13/cobra"

	"github.com/askline/askline/ask"
	"github.com/askline/askline/choose"
	"github.com/askline/askline/output"
)

func newChooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose",
		Short: "Pick an option from a list, then answer a yes/no question",
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := choose.Choose("Do you want to hear the dog speak?", "Yes", "No")
			if err != nil {
				return err
			}
			if answer == "Yes" {
				output.Info("Bark!")
			} else {
				output.Info("Awww ok :(")
			}

			ok, err := ask.Confirm("Erase everything?", false)
			if err != nil {
				return err
			}
			if ok {
				output.Success("Everything erased!")
			} else {
				output.Info("No action taken.")
			}
			return nil
		},
	}
}
