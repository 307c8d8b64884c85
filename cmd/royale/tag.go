package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/m0t0k1ch1/royale-go/hashtag"
)

type tagInfo struct {
	Tag        string `json:"tag"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
}

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Work with player and clan hashtags offline",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize <tag>...",
			Short: "Print the canonical form of hashtags",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, tag := range args {
					fmt.Fprintln(cmd.OutOrStdout(), hashtag.Normalize(tag))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate <tag>...",
			Short: "Report whether hashtags are potentially valid",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				infos := make([]tagInfo, 0, len(args))
				for _, tag := range args {
					normalized := hashtag.Normalize(tag)
					infos = append(infos, tagInfo{
						Tag:        tag,
						Normalized: normalized,
						Valid:      hashtag.IsValid(normalized),
					})
				}
				return printJSON(cmd.OutOrStdout(), infos)
			},
		},
		&cobra.Command{
			Use:   "decode <tag>",
			Short: "Decode a hashtag to its high and low ids",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := hashtag.Parse(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), hashtag.Decode(tag))
			},
		},
		&cobra.Command{
			Use:   "encode <high> <low>",
			Short: "Encode high and low ids to a hashtag",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				high, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return errors.Wrap(err, "invalid high id")
				}
				low, err := strconv.ParseUint(args[1], 10, 64)
				if err != nil {
					return errors.Wrap(err, "invalid low id")
				}

				tag := hashtag.Encode(high, low)
				if len(tag) == 0 {
					return errors.Errorf("no hashtag for ids %d:%d", high, low)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "#"+tag)
				return nil
			},
		},
	)

	return cmd
}
