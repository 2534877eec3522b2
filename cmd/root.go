package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	noArt   bool
	verbose bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "scryglass",
	Short: "Search and display Magic: The Gathering cards in your terminal",
	Long: `Scryglass is an interactive terminal client for the Scryfall card database.
Run it without arguments to enter an interactive search prompt: type a card
name (fuzzy matching is applied, so partial names work) and the card's
details are displayed alongside ANSI art rendered from its image.

Use the search and random subcommands for one-shot lookups.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.runInteractive(cmd.InOrStdin())
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&noArt, "no-art", false, "Disable card art rendering")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
