package main

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"goschem/pkg/circuit"
	"goschem/pkg/compiler"
	"goschem/pkg/grid"
	"goschem/pkg/layout"
	"goschem/pkg/utils"
)

const (
	blockW  = 28
	blockH  = 18
	pad     = 24
	scale   = 2
	footerH = 28
	minW    = 320
	minH    = 200
)

var (
	colorBackground = color.RGBA{0x12, 0x12, 0x16, 0xff}
	colorWireOff    = color.RGBA{0x3a, 0x3a, 0x42, 0xff}
	colorWireOn     = color.RGBA{0x66, 0xbb, 0x6a, 0xff}
	colorLabel      = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	colorObserved   = color.RGBA{0xff, 0xd5, 0x4f, 0xff}
)

type Game struct {
	circ   *circuit.Circuit
	mapper grid.Mapper
	levers map[int]bool
	levels []bool
	width  int
	height int
}

// NewGame sizes the viewer around an arranged circuit and starts with
// every lever off.
func NewGame(circ *circuit.Circuit) *Game {
	m := grid.Mapper{B: grid.BoundsOf(circ.Nodes), Scale: scale, Pad: pad}
	w, h := m.ScreenSize(blockW, blockH)
	g := &Game{
		circ:   circ,
		mapper: m,
		levers: map[int]bool{},
		width:  max(w, minW),
		height: max(h+footerH, minH),
	}
	g.levels, _ = circuit.Evaluate(circ, g.levers)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if n := g.blockAt(mx, my); n != nil && n.Kind == circuit.INPUT {
			g.levers[n.ID] = !g.levers[n.ID]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.levers = map[int]bool{}
	}

	g.levels, _ = circuit.Evaluate(g.circ, g.levers)
	return nil
}

// blockAt returns the node whose rectangle covers the pixel, or nil.
func (g *Game) blockAt(x, y int) *circuit.SignalNode {
	for _, n := range g.circ.Nodes {
		px, py := g.mapper.ToScreen(n.Pos)
		if x >= px && x < px+blockW && y >= py && y < py+blockH {
			return n
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	// Wires go under the blocks, lit when their source signal is high.
	for _, n := range g.circ.Nodes {
		px, py := g.mapper.ToScreen(n.Pos)
		for _, op := range n.Operands {
			sx, sy := g.mapper.ToScreen(op.Pos)
			wire := colorWireOff
			if g.levels[op.ID] {
				wire = colorWireOn
			}
			vector.StrokeLine(screen,
				float32(sx+blockW), float32(sy+blockH/2),
				float32(px), float32(py+blockH/2),
				1, wire, true)
		}
	}

	for _, n := range g.circ.Nodes {
		px, py := g.mapper.ToScreen(n.Pos)
		vector.DrawFilledRect(screen,
			float32(px), float32(py), blockW, blockH,
			kindColor(n.Kind, g.levels[n.ID]), false)

		label := n.Kind.String()
		if n.Label != "" {
			label = n.Label
		}
		text.Draw(screen, label, basicfont.Face7x13, px+3, py+13, colorLabel)
	}

	for _, out := range g.circ.Outputs {
		px, py := g.mapper.ToScreen(out.Pos)
		vector.StrokeRect(screen,
			float32(px-2), float32(py-2), blockW+4, blockH+4,
			1.5, colorObserved, true)
	}

	ebitenutil.DebugPrintAt(screen, "click a lever to toggle it, R resets", pad/2, g.height-footerH/2-6)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// kindColor picks a block's fill from its kind, brightened while the
// gate's output is high.
func kindColor(k circuit.Kind, lit bool) color.RGBA {
	var c color.RGBA
	switch k {
	case circuit.INPUT:
		c = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	case circuit.CONST:
		c = color.RGBA{0x45, 0x4a, 0x6d, 0xff}
	case circuit.NOT:
		c = color.RGBA{0xa8, 0x5a, 0x1f, 0xff}
	case circuit.AND:
		c = color.RGBA{0x1f, 0x58, 0xa8, 0xff}
	case circuit.OR:
		c = color.RGBA{0x0e, 0x7a, 0x72, 0xff}
	case circuit.XOR:
		c = color.RGBA{0x6d, 0x3a, 0x9e, 0xff}
	case circuit.XNOR:
		c = color.RGBA{0x8e, 0x44, 0x72, 0xff}
	case circuit.MUX:
		c = color.RGBA{0xa8, 0x2f, 0x35, 0xff}
	default:
		c = color.RGBA{0x55, 0x55, 0x55, 0xff}
	}
	if lit {
		c.R += (0xff - c.R) / 2
		c.G += (0xff - c.G) / 2
		c.B += (0xff - c.B) / 2
	}
	return c
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: desktop <script> [layout.yaml]")
	}

	fullPath, _, err := utils.ResolveScript(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to resolve script path: %v", err)
	}
	sourceBytes, err := os.ReadFile(fullPath)
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	cfg := layout.DefaultConfig()
	if len(os.Args) > 2 {
		cfg, err = layout.LoadConfig(os.Args[2])
		if err != nil {
			log.Fatalf("Failed to load layout config: %v", err)
		}
	}

	circ, err := compiler.Compile(string(sourceBytes))
	if err != nil {
		log.Fatalf("Compilation failed: %v", err)
	}
	if _, err := layout.Arrange(circ, cfg); err != nil {
		log.Fatalf("Layout failed: %v", err)
	}

	game := NewGame(circ)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("goschem viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
