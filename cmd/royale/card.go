package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/m0t0k1ch1/royale-go/refdata"
)

func newCardCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "card <name|id>",
		Short: "Look up a card in the bundled game data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := refdata.LoadDefault()
			if err != nil {
				return err
			}

			var card refdata.CardDetails
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				card, err = tables.CardByID(id)
			} else {
				card, err = tables.CardByName(args[0], refdata.Locale(locale))
			}
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), card)
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", string(refdata.LocaleEN), "locale of the card name")

	return cmd
}
