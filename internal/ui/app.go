package ui

import (
	"context"
	"log/slog"
	"time"

	"cryptoview/internal/domain"
	"cryptoview/internal/infra"
	"cryptoview/internal/service"

	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"
)

// PriceSource is the market-data collaborator: one synchronous lookup per
// symbol, returning the current price or failing.
type PriceSource interface {
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// App owns the dashboard state and drives the render / fetch / input loop.
// Everything runs on the loop goroutine; the only other goroutine is the
// screen's event pump.
type App struct {
	screen  tcell.Screen
	store   *service.PriceStore
	symbols []domain.SymbolConfig
	source  PriceSource
	logger  *slog.Logger

	title         string
	fetchInterval time.Duration
	pollTimeout   time.Duration

	running   bool
	lastFetch time.Time
	now       func() time.Time
}

// NewApp builds the dashboard from configuration. The symbol set flows from
// config into the store and the render step; nothing else hardcodes it.
func NewApp(screen tcell.Screen, source PriceSource, cfg *infra.Config) *App {
	return &App{
		screen:        screen,
		store:         service.NewPriceStore(cfg.Symbols),
		symbols:       cfg.Symbols,
		source:        source,
		logger:        slog.Default().With("module", "ui"),
		title:         cfg.UI.Title,
		fetchInterval: time.Duration(cfg.UI.FetchIntervalMS) * time.Millisecond,
		pollTimeout:   time.Duration(cfg.UI.PollTimeoutMS) * time.Millisecond,
		now:           time.Now,
	}
}

// Run drives the loop until a quit key arrives or the context is cancelled.
// Each iteration renders, fetches when a full interval has elapsed, and then
// waits at most pollTimeout for one terminal event.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	a.running = true
	for a.running {
		a.render()
		a.maybeFetch(ctx)

		select {
		case <-ctx.Done():
			a.running = false
		case ev := <-events:
			a.dispatch(ev)
		case <-time.After(a.pollTimeout):
		}
	}
	return nil
}

// maybeFetch runs one fetch cycle when at least a full interval has elapsed
// since the last one. The zero lastFetch makes the first iteration fetch
// immediately.
func (a *App) maybeFetch(ctx context.Context) {
	if a.now().Sub(a.lastFetch) < a.fetchInterval {
		return
	}
	a.fetchAll(ctx)
	a.lastFetch = a.now()
}

// fetchAll looks up every configured symbol in order. A failed lookup is
// skipped: the store keeps the previous value and the symbol heals on the
// next cycle.
func (a *App) fetchAll(ctx context.Context) {
	for _, sc := range a.symbols {
		price, err := a.source.GetPrice(ctx, sc.Symbol)
		if err != nil {
			a.logger.Warn("price fetch failed", slog.String("symbol", sc.Symbol), slog.Any("error", err))
			continue
		}
		a.store.Update(sc.Symbol, price)
	}
}

// dispatch maps a single terminal event to an action. Only Esc, plain 'q' and
// Ctrl-C do anything; every other key, mouse and resize event is ignored.
func (a *App) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			a.running = false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			a.running = false
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}
