package ui

import (
	"context"
	"testing"
	"time"

	"cryptoview/internal/domain"
	"cryptoview/internal/infra"
	"cryptoview/internal/service"

	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"
)

// fakeSource serves canned prices and errors, counting lookups.
type fakeSource struct {
	prices map[string]decimal.Decimal
	errs   map[string]error
	calls  int
}

func (f *fakeSource) GetPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	f.calls++
	if err, ok := f.errs[symbol]; ok {
		return decimal.Zero, err
	}
	return f.prices[symbol], nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testConfig(symbols []domain.SymbolConfig) *infra.Config {
	cfg := infra.Default()
	cfg.Symbols = symbols
	cfg.UI.PollTimeoutMS = 10
	return cfg
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return sim
}

func newTestApp(t *testing.T, symbols []domain.SymbolConfig, source PriceSource) (*App, *fakeClock) {
	t.Helper()
	app := NewApp(newSimScreen(t), source, testConfig(symbols))
	clk := &fakeClock{t: time.Unix(1700000000, 0)}
	app.now = clk.Now
	return app, clk
}

func twoSymbols() []domain.SymbolConfig {
	return []domain.SymbolConfig{
		{Symbol: "AAAUSDT", DisplayName: "AAA/USDT", Color: "green", Precision: 2},
		{Symbol: "BBBUSDT", DisplayName: "BBB/USDT", Color: "blue", Precision: 2},
	}
}

func TestDispatch_QuitKeys(t *testing.T) {
	quitEvents := map[string]*tcell.EventKey{
		"esc":    tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		"q":      tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		"ctrl-c": tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}

	for name, ev := range quitEvents {
		app, _ := newTestApp(t, twoSymbols(), &fakeSource{})
		app.running = true
		app.dispatch(ev)
		if app.running {
			t.Errorf("%s should stop the loop", name)
		}
	}
}

func TestDispatch_IgnoresOtherEvents(t *testing.T) {
	ignored := map[string]tcell.Event{
		"rune x":    tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		"uppercase": tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone),
		"arrow":     tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		"enter":     tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		"mouse":     tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone),
		"resize":    tcell.NewEventResize(100, 40),
	}

	for name, ev := range ignored {
		app, _ := newTestApp(t, twoSymbols(), &fakeSource{})
		app.running = true
		app.dispatch(ev)
		if !app.running {
			t.Errorf("%s should not stop the loop", name)
		}
	}
}

func TestMaybeFetch_Cadence(t *testing.T) {
	src := &fakeSource{prices: map[string]decimal.Decimal{
		"AAAUSDT": decimal.NewFromInt(1),
		"BBBUSDT": decimal.NewFromInt(2),
	}}
	app, clk := newTestApp(t, twoSymbols(), src)

	ctx := context.Background()

	// First iteration fetches immediately.
	app.maybeFetch(ctx)
	if src.calls != 2 {
		t.Fatalf("Expected 2 lookups after first tick, got %d", src.calls)
	}

	// Ten iterations within 200ms trigger no further fetches.
	for i := 0; i < 10; i++ {
		clk.Advance(20 * time.Millisecond)
		app.maybeFetch(ctx)
	}
	if src.calls != 2 {
		t.Errorf("Expected no fetches before the 1s mark, got %d lookups", src.calls)
	}

	// Crossing the interval fetches exactly once more.
	clk.Advance(time.Second)
	app.maybeFetch(ctx)
	if src.calls != 4 {
		t.Errorf("Expected 4 lookups after interval elapsed, got %d", src.calls)
	}
}

func TestFetchAll_PartialFailureIsolation(t *testing.T) {
	src := &fakeSource{
		prices: map[string]decimal.Decimal{"BBBUSDT": decimal.NewFromFloat(42.5)},
		errs:   map[string]error{"AAAUSDT": domain.ErrPriceUnavailable},
	}
	app, _ := newTestApp(t, twoSymbols(), src)

	prior := decimal.NewFromFloat(10.25)
	app.store.Update("AAAUSDT", prior)

	app.fetchAll(context.Background())

	if !app.store.Get("AAAUSDT").Equal(prior) {
		t.Errorf("Failed symbol should keep prior price, got %v", app.store.Get("AAAUSDT"))
	}
	if !app.store.Get("BBBUSDT").Equal(decimal.NewFromFloat(42.5)) {
		t.Errorf("Succeeding symbol should update, got %v", app.store.Get("BBBUSDT"))
	}
}

func TestRun_QuitsOnKeypress(t *testing.T) {
	sim := newSimScreen(t)
	app := NewApp(sim, &fakeSource{}, testConfig(twoSymbols()))

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	// Give the loop a moment to start its event pump.
	time.Sleep(50 * time.Millisecond)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after quit key")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	sim := newSimScreen(t)
	app := NewApp(sim, &fakeSource{}, testConfig(twoSymbols()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancel")
	}
}

func TestStoreUnchangedBySymbolsNeverConfigured(t *testing.T) {
	store := service.NewPriceStore(twoSymbols())
	if !store.Get("ZZZUSDT").IsZero() {
		t.Errorf("Unknown symbol should read zero")
	}
}
