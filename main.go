package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vyevs/aoc2022/internal/calendar"
	"github.com/vyevs/aoc2022/internal/config"
	"github.com/vyevs/aoc2022/internal/logging"
)

const version = "1.0.0"

const defaultConfigPath = "aoc.yaml"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the flags and the state shared by the commands.
type app struct {
	configPath string
	dataDir    string
	verbose    bool
	color      bool
	timing     bool

	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "aoc2022 [day]",
		Short: "Solve the Advent of Code 2022 puzzles",
		Long: `Solves the puzzles of Advent of Code 2022, days 1 through 15.

Every day reads its input from <data>/day_<N>.txt and prints the answers of both parts.
Without a day every day with an input file is solved in order.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.runner()
			if len(args) == 0 {
				return r.RunAll()
			}
			d, err := lookupDay(args[0])
			if err != nil {
				return err
			}
			return r.Run(d)
		},
	}
	rootCmd.SetOut(out)

	checkCmd := &cobra.Command{
		Use:   "check [day]",
		Short: "Solve the worked examples and compare them with their known answers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.runner()
			if len(args) == 0 {
				return r.CheckAll()
			}
			d, err := lookupDay(args[0])
			if err != nil {
				return err
			}
			return r.Check(d)
		},
	}
	rootCmd.AddCommand(checkCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath, "path to the YAML configuration file")
	flags.StringVar(&a.dataDir, "data", "", "directory holding the puzzle inputs, overrides the configuration")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.color, "color", false, "color the answers, overrides the configuration")
	flags.BoolVar(&a.timing, "time", false, "print how long every day took")

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	logger, err := logging.New(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("data") {
		cfg.DataDir = a.dataDir
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = a.color
	}
	a.cfg = cfg

	logger.Debug("configured",
		zap.String("config", a.configPath),
		zap.String("data", cfg.DataDir),
		zap.Bool("color", cfg.Color),
	)
	return nil
}

func (a *app) runner() *calendar.Runner {
	return &calendar.Runner{
		Config: a.cfg,
		Logger: a.logger,
		Out:    a.out,
		Timing: a.timing,
	}
}

func lookupDay(arg string) (calendar.Day, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("invalid day %q: %v", arg, err)
	}
	return calendar.Lookup(n)
}
