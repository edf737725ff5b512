// Command fluidview renders a running simulation as a live pressure
// heatmap using ebiten, reusing the scientific color palette from the
// original fluid visualizer.
package main

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/russiankolya/fluid-hw2/pkg/fluid"
)

const (
	screenWidth  = 840
	screenHeight = 520
	cellSize     = 6
)

// Game holds the latest snapshot of a running Simulator, guarded by mu
// since the solver and the render loop run on different goroutines.
type Game struct {
	mu       sync.Mutex
	field    [][]byte
	pressure [][]float64
	minP     float64
	maxP     float64
	tick     int
}

func (g *Game) setSnapshot(tick int, field [][]byte, pressure [][]float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tick = tick
	g.field = field
	g.pressure = pressure
	g.minP, g.maxP = 0, 0
	for _, row := range pressure {
		for _, v := range row {
			if v < g.minP {
				g.minP = v
			}
			if v > g.maxP {
				g.maxP = v
			}
		}
	}
}

func (g *Game) Update() error { return nil }

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.field == nil {
		ebitenutil.DebugPrint(screen, "waiting for simulation...")
		return
	}

	for x, row := range g.field {
		for y, ch := range row {
			col := getSciValue(float32(g.pressure[x][y]), float32(g.minP), float32(g.maxP))
			if ch == '#' {
				col.R, col.G, col.B = 40, 40, 40
			}
			vector.DrawFilledRect(screen,
				float32(y*cellSize), float32(x*cellSize), cellSize, cellSize, col, false)
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d", g.tick))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	input := flag.String("input", "input.txt", "path to the input grid")
	flag.Parse()

	pSlot := fluid.FloatSlot64()
	vSlot := fluid.FixedSlot[int32](16)
	vfSlot := fluid.FixedSlot[int32](15)

	sim, err := fluid.LoadInput(*input, pSlot, vSlot, vfSlot)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{}
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
		game.setSnapshot(tick, field, rows)
	}

	go func() {
		if err := sim.Run(); err != nil {
			log.Println("simulation stopped:", err)
		}
	}()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("fluidview")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
