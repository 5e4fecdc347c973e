// Package main is the entry point for termsweeper.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/termsweeper/internal/config"
	"github.com/samdwyer/termsweeper/internal/console"
	"github.com/samdwyer/termsweeper/internal/game"
	"github.com/samdwyer/termsweeper/internal/logging"
	"github.com/samdwyer/termsweeper/internal/telemetry"
	"github.com/samdwyer/termsweeper/internal/theme"
	"github.com/samdwyer/termsweeper/internal/ui"
)

var log = logrus.StandardLogger()

func main() {
	// Variables may also be set directly in the environment.
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	if err := run(cfg, envErr); err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatal("exit reason: ", err)
	}
}

// run sets up logging and tracing and plays until the game ends or a signal
// arrives.
func run(cfg *config.Config, envErr error) error {
	closeLog, err := logging.Setup(log, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	mode := cfg.ResolveMode(int(os.Stdin.Fd()))
	log.WithFields(cfg.Fields()).WithField("driver", string(mode)).Info("starting up")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	shutdown, err := telemetry.Setup(mainCtx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Warn("error shutting down telemetry")
			}
		}()
	}

	th := theme.Default()
	if cfg.Theme != "" {
		if th, err = theme.Load(cfg.Theme); err != nil {
			return err
		}
	}

	switch mode {
	case config.ModeTUI:
		err = runTUI(mainCtx, th, cfg.GameOptions())
	default:
		err = console.New(os.Stdin, os.Stdout, th, cfg.GameOptions(), !cfg.MinesSet).Run(mainCtx)
	}

	log.Info("shutting down")
	return err
}

// runTUI plays on the full screen until the player quits or ctx is done.
// Closing the screen unblocks the event loop.
func runTUI(ctx context.Context, th *theme.Theme, opts game.Options) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return game.New(screen, th, opts).Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		screen.Close()
		return nil
	})

	return g.Wait()
}
