// ABOUTME: CLI entry point for tuicore-demo with terminal crash recovery
// ABOUTME: Parses flags, loads YAML config, picks a real or inert session, runs the event loop

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/tuicore/internal/config"
	"github.com/mauromedda/tuicore/internal/log"
	"github.com/mauromedda/tuicore/pkg/tui/session"
	"github.com/mauromedda/tuicore/pkg/tui/terminal"
)

// headlessSteps bounds the inert run so -headless terminates on its own.
const headlessSteps = 240

func main() {
	args := parseFlags()
	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "tuicore-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}

	cleanup, err := setupLogging(args, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if args.headless {
		return runHeadless()
	}
	return runInteractive(cfg)
}

// loadSettings merges config sources and applies flag overrides on top.
func loadSettings(args cliArgs) (*config.Settings, error) {
	var cfg *config.Settings
	var err error
	if args.config != "" {
		cfg, err = config.LoadFile(args.config)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if args.tick > 0 {
		cfg.TickRate = args.tick
	}
	if args.fps > 0 {
		cfg.FrameRate = args.fps
	}
	if args.mouse {
		cfg.Mouse = true
	}
	if args.paste {
		cfg.Paste = true
	}
	if args.logFile != "" {
		cfg.LogFile = args.logFile
	}
	if args.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// setupLogging applies the configured level and redirects logs to a
// file so they do not corrupt the alternate screen.
func setupLogging(args cliArgs, cfg *config.Settings) (func(), error) {
	switch cfg.LogLevel {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	case "", "info":
		log.SetLevel(log.LevelInfo)
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if cfg.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(nil)
		f.Close()
	}, nil
}

func runInteractive(cfg *config.Settings) error {
	s, err := session.New()
	if err != nil {
		return err
	}
	s.TickRate(cfg.TickRate).FrameRate(cfg.FrameRate).Mouse(cfg.Mouse).Paste(cfg.Paste)
	defer s.Close()
	defer terminal.RestoreOnPanic(s.Terminal())

	if err := s.Enter(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchSignals(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return newApp(s).run(ctx)
	})

	err = g.Wait()
	if closeErr := s.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchSignals cancels the group on SIGINT or SIGTERM.
func watchSignals(ctx context.Context) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig := <-ch:
		log.Info("received %v, shutting down", sig)
		return fmt.Errorf("interrupted by %v", sig)
	}
}

// runHeadless drives the same app through an inert session for a fixed
// number of steps, then dumps the final virtual screen to stdout.
func runHeadless() error {
	inert := session.NewInert()
	a := newApp(inert)

	ctx := context.Background()
	for i := 0; i < headlessSteps; i++ {
		ev, err := inert.Next(ctx)
		if err != nil {
			return fmt.Errorf("waiting for event: %w", err)
		}
		if err := a.handle(ev); err != nil {
			return err
		}
	}
	if err := inert.Draw(a.draw); err != nil {
		return err
	}

	fmt.Println(inert.Terminal().Output())
	return nil
}
