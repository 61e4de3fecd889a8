package preview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

func TestFlushDrawsPixels(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	term, err := newTerminal(screen, palette.FixedGamma(1))
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer term.Close()
	screen.SetSize(4, 2)

	term.Flush([]pixel.Color{
		pixel.RGB(255, 0, 0), {}, {}, {},
		{}, pixel.RGB(0, 0, 255),
	})

	_, _, style, _ := screen.GetContent(0, 0)
	if style != tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0)) {
		t.Errorf("cell 0 style = %v", style)
	}
	_, _, style, _ = screen.GetContent(1, 1)
	if style != tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 255)) {
		t.Errorf("pixel 5 should wrap to the second row, style = %v", style)
	}
}

func TestCellColor(t *testing.T) {
	if cellColor(pixel.RGB(1, 2, 3)) != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("cell color mismatch")
	}
}
