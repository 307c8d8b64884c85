package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	royale "github.com/m0t0k1ch1/royale-go"
	"github.com/m0t0k1ch1/royale-go/internal/config"
)

type app struct {
	configPath string
	envFile    string
	verbose    bool
	token      string
	baseURL    string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "royale",
		Short:         "Query the Clash Royale API and the bundled game data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "royale.yaml", "config file path")
	flags.StringVar(&a.envFile, "env-file", ".env", "env file path")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.token, "token", "", "API token (overrides "+config.EnvToken+")")
	flags.StringVar(&a.baseURL, "url", "", "API base URL (overrides "+config.EnvBaseURL+")")

	rootCmd.AddCommand(
		newTagCmd(),
		newCardCmd(),
		newPlayerCmd(a),
		newChestsCmd(a),
		newBattlesCmd(a),
		newClanCmd(a),
		newCardsCmd(a),
		newLocationsCmd(a),
		newLeaderboardCmd(a),
	)

	return rootCmd
}

func (a *app) setup() error {
	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return errors.Wrap(err, "failed to initialize the logger")
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if len(a.token) > 0 {
		cfg.API.Token = a.token
	}
	if len(a.baseURL) > 0 {
		cfg.API.BaseURL = a.baseURL
	}
	a.cfg = cfg

	return nil
}

func (a *app) client() (*royale.Client, error) {
	opts := []royale.Option{
		royale.WithTimeout(a.cfg.API.Timeout),
		royale.WithValidateTags(a.cfg.API.ValidateTags),
		royale.WithRetryMax(a.cfg.API.RetryMax),
		royale.WithLogger(a.logger),
	}
	if a.cfg.RateLimit.RequestsPerSecond > 0 {
		opts = append(opts, royale.WithRateLimit(rate.Limit(a.cfg.RateLimit.RequestsPerSecond), a.cfg.RateLimit.Burst))
	}

	return royale.NewClient(a.cfg.API.BaseURL, a.cfg.API.Token, opts...)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
