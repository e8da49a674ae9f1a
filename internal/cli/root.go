// Package cli implements the wayfarer command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfarer/dataset"
	"github.com/katalvlaran/wayfarer/internal/config"
	"github.com/katalvlaran/wayfarer/internal/ctxlog"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	lookup     config.LookupFunc

	cfg config.Config
}

// NewRootCommand returns the wayfarer root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	return newRoot(&app{})
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "wayfarer",
		Short:             "Route search and adversarial play over road networks",
		Long:              `wayfarer answers route queries (BFS, DFS, UCS, A*) over a road table and picks moves in a two-player travel game.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		a.pathCommand(),
		a.tourCommand(),
		a.bestMoveCommand(),
		a.nearestCommand(),
		a.validateCommand(),
	)

	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "wayfarer: %v\n", err)
		return 1
	}

	return 0
}

// setup merges file, environment and flags into a.cfg and installs the
// logger on the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, a.lookup)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := ctxlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := ctxlog.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return err
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("Configuration resolved", "config", a.configPath, "data", cfg.DataPath, "minimax", cfg.MinimaxPath)

	return nil
}

// roads loads the route table: the --data flag, then the configured path,
// then the embedded network.
func (a *app) roads(ctx context.Context, flagPath string) (*dataset.Dataset, error) {
	return load(ctx, orDefault(flagPath, a.cfg.DataPath), dataset.Roads)
}

// game loads the minimax table the same way.
func (a *app) game(ctx context.Context, flagPath string) (*dataset.Dataset, error) {
	return load(ctx, orDefault(flagPath, a.cfg.MinimaxPath), dataset.Game)
}

func load(ctx context.Context, path string, embedded func() (*dataset.Dataset, error)) (*dataset.Dataset, error) {
	if path == "" {
		ctxlog.FromContext(ctx).Debug("Using embedded table")
		return embedded()
	}

	return dataset.LoadFile(ctx, path)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}

	return def
}
