package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askline/askline/ask"
)

func newDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Prompt for a message and a repeat count",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := ask.New[string]().
				Prompt("Enter a message: ").
				Styled().
				Wait()
			if err != nil {
				return err
			}

			repeat, err := ask.New[uint]().
				Prompt("Enter the number of times to repeat the message: ").
				ErrMsg("That wasn't a number... try again").
				Styled().
				Wait()
			if err != nil {
				return err
			}

			for i := uint(0); i < repeat; i++ {
				fmt.Printf("%d. %s\n", i+1, message)
			}
			return nil
		},
	}
}
