package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"
)

const (
	titleHeight = 3
	listTitle   = " Live Prices "
)

// render repaints the whole screen from current state: a bordered title box
// and a bordered price list with one line per symbol. It reads the store and
// mutates nothing.
func (a *App) render() {
	s := a.screen
	s.Clear()
	width, _ := s.Size()

	drawBox(s, 0, 0, width-1, titleHeight-1, tcell.StyleDefault)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	drawText(s, (width-len(a.title))/2, 1, titleStyle, a.title)

	top := titleHeight
	bottom := top + len(a.symbols) + 1
	drawBox(s, 0, top, width-1, bottom, tcell.StyleDefault)
	drawText(s, 2, top, tcell.StyleDefault, listTitle)

	for i, sc := range a.symbols {
		y := top + 1 + i
		label := sc.DisplayName + ":  "
		drawText(s, 1, y, tcell.StyleDefault, label)

		value := formatPrice(a.store.Get(sc.Symbol), sc.Precision)
		valueStyle := tcell.StyleDefault.Foreground(tcell.GetColor(sc.Color))
		drawText(s, 1+len(label), y, valueStyle, value)
	}

	s.Show()
}

// formatPrice renders a price to the symbol's configured precision. Rounding
// happens only here; the store keeps prices exact.
func formatPrice(price decimal.Decimal, precision int32) string {
	return "$" + price.StringFixed(precision)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1 + 1; x < x2; x++ {
		s.SetContent(x, y1, tcell.RuneHLine, nil, style)
		s.SetContent(x, y2, tcell.RuneHLine, nil, style)
	}
	for y := y1 + 1; y < y2; y++ {
		s.SetContent(x1, y, tcell.RuneVLine, nil, style)
		s.SetContent(x2, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}
