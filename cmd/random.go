package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Display a random card",
	Long:  `Random fetches a random card from Scryfall and displays it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		results := make(chan lookupResult, 1)
		go func() {
			c, err := app.client.Random(context.Background())
			results <- lookupResult{card: c, err: err}
		}()

		res := <-results
		if res.err != nil {
			return errors.New(lookupErrorMessage(res.err))
		}

		app.display(res.card)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(randomCmd)
}
