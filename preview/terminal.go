// Package preview shows the strip in a terminal, one cell per pixel, wrapped
// to the screen width.
package preview

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

var logger = log.New("preview")

// Terminal is a pixel.Flusher drawing frames with tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	source palette.GammaSource
	gamma  *palette.Gamma
	quitC  chan struct{}
	once   sync.Once
}

// NewTerminal takes over the terminal. Frames are drawn gamma corrected with
// the exponent gamma reports.
func NewTerminal(gamma palette.GammaSource) (t *Terminal, err errors.Error) {
	screen, errGo := tcell.NewScreen()
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return newTerminal(screen, gamma)
}

func newTerminal(screen tcell.Screen, gamma palette.GammaSource) (t *Terminal, err errors.Error) {
	if errGo := screen.Init(); errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	screen.Clear()
	t = &Terminal{
		screen: screen,
		source: gamma,
		gamma:  palette.NewGamma(gamma.Gamma()),
		quitC:  make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// Quit is closed when the user presses q, Escape or Ctrl-C.
func (t *Terminal) Quit() <-chan struct{} {
	return t.quitC
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				t.once.Do(func() { close(t.quitC) })
			}
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
		}
	}
}

func cellColor(c pixel.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush draws one frame.
func (t *Terminal) Flush(pixels []pixel.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gamma.Sync(t.source.Gamma())
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	for i, c := range pixels {
		x, y := i%width, i/width
		if y >= height {
			break
		}
		c = t.gamma.Correct(c.FoldWhite())
		style := tcell.StyleDefault.Background(cellColor(c))
		t.screen.SetContent(x, y, ' ', nil, style)
	}
	t.screen.Show()
}

// Close gives the terminal back.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
	logger.Debug("preview closed")
}
