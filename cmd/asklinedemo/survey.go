package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askline/askline/ask"
	"github.com/askline/askline/output"
)

type material struct {
	ID       string
	Quantity float64
	Unit     string
}

func newSurveyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "survey",
		Short: "Collect a list of materials, entry by entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := ask.New[uint]().
				Prompt("# of materials: ").
				Styled().
				Wait()
			if err != nil {
				return err
			}

			text := ask.New[string]().
				CancelOn(quitKeyword).
				ErrMsg("Unexpected input, please retry").
				Styled()
			number := ask.New[float64]().
				CancelOn(quitKeyword).
				ErrMsg("Unexpected input, please retry").
				Styled()

			materials := make([]material, 0, count)
			for i := uint(0); i < count; i++ {
				var m material
				if m.ID, err = text.Prompt("Material ID: ").Wait(); err != nil {
					return err
				}
				if m.Quantity, err = number.Prompt("Quantity: ").Wait(); err != nil {
					return err
				}
				if m.Unit, err = text.Prompt("Unit of Measure: ").Wait(); err != nil {
					return err
				}
				materials = append(materials, m)
			}

			for _, m := range materials {
				fmt.Printf("Mat: %s - Quantity: %g - UoM: %s\n", m.ID, m.Quantity, m.Unit)
			}
			output.Success(fmt.Sprintf("Collected %d materials", len(materials)))
			return nil
		},
	}
}
