package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cryptoview/internal/app"
	"cryptoview/internal/infra"
	"cryptoview/internal/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cryptoview:", err)
		os.Exit(1)
	}
}

func run() error {
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		return err
	}
	cfg := bootstrap.Config

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal on every exit path, panics included, before any
	// error reaches stderr.
	defer func() {
		p := recover()
		screen.Fini()
		if p != nil {
			panic(p)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := infra.NewBinanceClient(cfg)
	dash := ui.NewApp(screen, client, cfg)

	slog.Info("dashboard started",
		slog.Int("symbols", len(cfg.Symbols)),
		slog.Int("fetch_interval_ms", cfg.UI.FetchIntervalMS),
	)

	err = dash.Run(ctx)
	slog.Info("dashboard stopped")
	return err
}
