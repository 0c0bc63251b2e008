package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/showdown/config"
)

// app carries the settings shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	var (
		configPath string
		debug      bool
		plain      bool
	)

	cmd := &cobra.Command{
		Use:          "showdown",
		Short:        "Rank and compare five-card poker hands",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.LogLevel = slog.LevelDebug
			}
			if cmd.Flags().Changed("plain") {
				cfg.Plain = plain
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			a.logger.Debug("config loaded", "path", configPath, "plain", cfg.Plain)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.Plain {
				title, err := banner()
				if err != nil {
					a.logger.Warn("banner", "error", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), title)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "showdown.yaml", "path of the YAML config file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colors and boxes")

	cmd.AddCommand(
		rankCmd(a),
		compareCmd(a),
		playCmd(a),
		dealCmd(a),
		verifyCmd(a),
	)
	return cmd
}

func banner() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("howdown", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

// newLogger returns a slog logger backed by the pterm logger.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	pl := pterm.DefaultLogger.WithWriter(w).WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(pl))
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
