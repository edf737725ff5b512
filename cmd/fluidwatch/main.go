// Command fluidwatch renders a running simulation directly in the
// terminal: the character grid tinted by pressure, polled on a fixed
// ticker alongside tcell input events the way a tcell-driven screen loop
// ordinarily interleaves redraws with keyboard input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/russiankolya/fluid-hw2/pkg/fluid"
)

type snapshot struct {
	field [][]byte
	p     [][]float64
	minP  float64
	maxP  float64
	tick  int
}

type watcher struct {
	screen tcell.Screen

	mu   sync.Mutex
	snap snapshot
}

func newWatcher() (*watcher, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	return &watcher{screen: screen}, nil
}

func (w *watcher) setSnapshot(tick int, field [][]byte, pressure [][]float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	minP, maxP := 0.0, 0.0
	for _, row := range pressure {
		for _, v := range row {
			if v < minP {
				minP = v
			}
			if v > maxP {
				maxP = v
			}
		}
	}
	w.snap = snapshot{field: field, p: pressure, minP: minP, maxP: maxP, tick: tick}
}

// pressureColor blends cold blue to hot red across [minP,maxP], the
// terminal analogue of the RGB interpolation core/color.go uses for trail
// intensity in the source viewer.
func pressureColor(v, minP, maxP float64) tcell.Color {
	d := maxP - minP
	t := 0.5
	if d > 0 {
		t = (v - minP) / d
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	r := int32(255 * t)
	b := int32(255 * (1 - t))
	return tcell.NewRGBColor(r, 0, b)
}

func (w *watcher) draw() {
	w.mu.Lock()
	snap := w.snap
	w.mu.Unlock()

	w.screen.Clear()
	if snap.field == nil {
		emitString(w.screen, 0, 0, tcell.StyleDefault, "waiting for simulation...")
		w.screen.Show()
		return
	}

	for x, row := range snap.field {
		for y, ch := range row {
			style := tcell.StyleDefault
			if ch == '#' {
				style = style.Foreground(tcell.ColorGray)
			} else {
				style = style.Foreground(pressureColor(snap.p[x][y], snap.minP, snap.maxP))
			}
			w.screen.SetContent(y, x, rune(ch), nil, style)
		}
	}
	emitString(w.screen, 0, len(snap.field)+1, tcell.StyleDefault, fmt.Sprintf("tick %d", snap.tick))
	w.screen.Show()
}

func emitString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (w *watcher) run() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- w.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				w.screen.Sync()
			}
		case <-ticker.C:
			w.draw()
		}
	}
}

func main() {
	input := flag.String("input", "input.txt", "path to the input grid")
	flag.Parse()

	pSlot := fluid.FloatSlot64()
	vSlot := fluid.FixedSlot[int32](16)
	vfSlot := fluid.FixedSlot[int32](15)

	sim, err := fluid.LoadInput(*input, pSlot, vSlot, vfSlot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load input: %v\n", err)
		os.Exit(1)
	}

	w, err := newWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer w.screen.Fini()

	sim.OnSnapshot = func(tick int, s *fluid.Simulator[fluid.Float64, fluid.Fixed[int32], fluid.Fixed[int32]]) {
		p := s.Pressure()
		field := s.Field()
		rows := make([][]float64, p.NumX)
		for x := 0; x < p.NumX; x++ {
			rows[x] = make([]float64, p.NumY)
			for y := 0; y < p.NumY; y++ {
				v, _ := p.Value(x, y)
				rows[x][y] = v.Float64()
			}
		}
		w.setSnapshot(tick, field, rows)
	}

	go func() {
		if err := sim.Run(); err != nil {
			log.Println("simulation stopped:", err)
		}
	}()

	w.run()
}
