package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	royale "github.com/m0t0k1ch1/royale-go"
)

// newAPICmd builds a command which runs fn against a client and prints its
// result as JSON.
func newAPICmd(a *app, use, short string, args cobra.PositionalArgs, fn func(ctx context.Context, client *royale.Client, args []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			v, err := fn(cmd.Context(), client, args)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}

func newPlayerCmd(a *app) *cobra.Command {
	return newAPICmd(a, "player <tag>...", "Fetch player profiles", cobra.MinimumNArgs(1),
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			if len(args) == 1 {
				return client.PlayerProfile(ctx, args[0])
			}
			return client.PlayerProfiles(ctx, args...)
		},
	)
}

func newChestsCmd(a *app) *cobra.Command {
	return newAPICmd(a, "chests <tag>", "Fetch the upcoming chests of a player", cobra.ExactArgs(1),
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			return client.PlayerUpcomingChests(ctx, args[0])
		},
	)
}

func newBattlesCmd(a *app) *cobra.Command {
	return newAPICmd(a, "battles <tag>", "Fetch the battle log of a player", cobra.ExactArgs(1),
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			return client.PlayerBattleLogs(ctx, args[0])
		},
	)
}

func newClanCmd(a *app) *cobra.Command {
	return newAPICmd(a, "clan <tag>", "Fetch a clan profile", cobra.ExactArgs(1),
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			return client.ClanProfile(ctx, args[0])
		},
	)
}

func newCardsCmd(a *app) *cobra.Command {
	return newAPICmd(a, "cards", "Fetch the cards available in the game", cobra.NoArgs,
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			return client.Cards(ctx)
		},
	)
}

func newLocationsCmd(a *app) *cobra.Command {
	return newAPICmd(a, "locations", "Fetch the locations", cobra.NoArgs,
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			return client.Locations(ctx)
		},
	)
}

func newLeaderboardCmd(a *app) *cobra.Command {
	var locationID int

	cmd := newAPICmd(a, "leaderboard <players|clans|clanwars>", "Fetch a leaderboard", cobra.ExactArgs(1),
		func(ctx context.Context, client *royale.Client, args []string) (any, error) {
			id := royale.LocationID(locationID)

			switch royale.RankingType(args[0]) {
			case royale.RankingTypePlayers:
				return client.PlayerLeaderboard(ctx, id)
			case royale.RankingTypeClans:
				return client.ClanLeaderboard(ctx, id)
			case royale.RankingTypeClanWars:
				return client.ClanWarLeaderboard(ctx, id)
			default:
				return nil, errors.Errorf("unknown ranking type: %s", args[0])
			}
		},
	)
	cmd.Flags().IntVar(&locationID, "location", int(royale.GlobalLocation), "location id, 0 for global")

	return cmd
}
