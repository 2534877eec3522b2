package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [card name]",
	Short: "Look up a single card by name and display it",
	Long: `Search looks up one card on Scryfall by name and prints its details and art.
The lookup uses fuzzy matching, so partial or slightly misspelled names
resolve to the closest card.

Examples:
  scryglass search Lightning Bolt
  scryglass search "black lotus"
  scryglass search --no-art counterspell`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return errors.New("please enter a card name")
		}

		results := make(chan lookupResult, 1)
		go func() {
			c, err := app.client.Named(context.Background(), name)
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
	RootCmd.AddCommand(searchCmd)
}
