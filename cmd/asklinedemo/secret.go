package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askline/askline/ask"
	"github.com/askline/askline/output"
)

func newSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Read a value without echoing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := ask.Secret("API token")
			if err != nil {
				return err
			}
			output.Success(fmt.Sprintf("Read %d characters (not echoed)", len(token)))
			return nil
		},
	}
}
