// cli.go
//
// Command wiring for numguess.
//   - numguess / numguess play: terminal game.
//   - numguess serve:           JSON API over HTTP.
//
// Settings come from the environment (see internal/config); --port and
// --seed override PORT and GUESS_SEED.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/httpserver"
	"github.com/robalobadob/numguess/internal/remarks"
	"github.com/robalobadob/numguess/internal/rng"
	"github.com/robalobadob/numguess/internal/store"
	"github.com/robalobadob/numguess/internal/tui"
)

var (
	flagPort string
	flagSeed uint64
)

var rootCmd = &cobra.Command{
	Use:           "numguess",
	Short:         "Guess the hidden number in six tries",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE:  runPlay,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game as a JSON API",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "seed for reproducible rounds (0 = crypto randomness)")
	serveCmd.Flags().StringVar(&flagPort, "port", "", "listen port (overrides PORT)")
	rootCmd.AddCommand(playCmd, serveCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed = flagSeed
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = flagPort
	}
	return cfg, nil
}

// setupLogging configures the global zerolog logger. Interactive sessions
// own the terminal, so they only log when LOG_FILE is set.
func setupLogging(cfg config.Config, interactive bool) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	}
	if interactive {
		log.Logger = zerolog.Nop()
	}
	return func() {}, nil
}

// newEngine builds the engine from config. A shared engine needs a locked
// source because seeded generators are not safe for concurrent use.
func newEngine(cfg config.Config) (*game.Engine, error) {
	pool, err := remarks.Load(cfg.RemarksFile)
	if err != nil {
		return nil, err
	}
	var src rng.Source = rng.Crypto{}
	if cfg.Seed != 0 {
		src = rng.NewLocked(rng.NewSeeded(cfg.Seed))
	}
	return game.NewEngine(cfg.Rules, src, pool)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	log.Info().Uint64("seed", cfg.Seed).Msg("starting terminal game")

	p := tea.NewProgram(tui.New(eng, tui.DefaultStyles()))
	_, err = p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	srv := httpserver.New(store.NewMemoryStore(), eng, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
	})
	log.Info().Str("port", cfg.Port).Msg("starting numguess server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
