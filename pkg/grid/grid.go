package grid

import (
	"goschem/pkg/circuit"
)

// Bounds is the extent of a set of placed nodes in the X/Z plane.
type Bounds struct {
	MinX, MaxX int
	MinZ, MaxZ int
}

// BoundsOf computes the extent covering every node. No nodes means the
// zero Bounds.
func BoundsOf(nodes []*circuit.SignalNode) Bounds {
	if len(nodes) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: nodes[0].Pos.X, MaxX: nodes[0].Pos.X,
		MinZ: nodes[0].Pos.Z, MaxZ: nodes[0].Pos.Z,
	}
	for _, n := range nodes[1:] {
		if n.Pos.X < b.MinX {
			b.MinX = n.Pos.X
		}
		if n.Pos.X > b.MaxX {
			b.MaxX = n.Pos.X
		}
		if n.Pos.Z < b.MinZ {
			b.MinZ = n.Pos.Z
		}
		if n.Pos.Z > b.MaxZ {
			b.MaxZ = n.Pos.Z
		}
	}
	return b
}

// Mapper projects world X/Z coordinates onto screen pixels. World X
// grows rightward and world Z grows downward, scaled by Scale pixels
// per world unit and inset by Pad pixels on every side. The world Y
// axis is ignored; the viewer is a top-down projection.
type Mapper struct {
	B     Bounds
	Scale int
	Pad   int
}

// ToScreen returns the pixel coordinates of a world position.
func (m Mapper) ToScreen(p circuit.Position) (int, int) {
	x := (p.X-m.B.MinX)*m.Scale + m.Pad
	y := (p.Z-m.B.MinZ)*m.Scale + m.Pad
	return x, y
}

// ScreenSize returns the pixel area that fits the whole bounds, with
// extra room for one block drawn at the far corner.
func (m Mapper) ScreenSize(extraW, extraH int) (int, int) {
	w := (m.B.MaxX-m.B.MinX)*m.Scale + 2*m.Pad + extraW
	h := (m.B.MaxZ-m.B.MinZ)*m.Scale + 2*m.Pad + extraH
	return w, h
}
