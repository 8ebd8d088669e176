package grid

import (
	"testing"

	"goschem/pkg/circuit"
)

func node(x, y, z int) *circuit.SignalNode {
	return &circuit.SignalNode{Pos: circuit.Position{X: x, Y: y, Z: z}}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name  string
		nodes []*circuit.SignalNode
		want  Bounds
	}{
		{"empty", nil, Bounds{}},
		{"single", []*circuit.SignalNode{node(16, 0, 12)}, Bounds{16, 16, 12, 12}},
		{"spread", []*circuit.SignalNode{node(0, 0, 24), node(32, 2, 0), node(16, 0, 12)}, Bounds{0, 32, 0, 24}},
		{"negative", []*circuit.SignalNode{node(-8, 0, -4), node(8, 0, 4)}, Bounds{-8, 8, -4, 4}},
	}

	for _, tc := range tests {
		if got := BoundsOf(tc.nodes); got != tc.want {
			t.Errorf("%s: BoundsOf = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestToScreen(t *testing.T) {
	m := Mapper{B: Bounds{MinX: 0, MaxX: 32, MinZ: 0, MaxZ: 24}, Scale: 2, Pad: 24}

	tests := []struct {
		pos   circuit.Position
		wantX int
		wantY int
	}{
		{circuit.Position{X: 0, Y: 0, Z: 0}, 24, 24},
		{circuit.Position{X: 16, Y: 0, Z: 0}, 56, 24},
		{circuit.Position{X: 0, Y: 2, Z: 12}, 24, 48},
		{circuit.Position{X: 32, Y: 0, Z: 24}, 88, 72},
	}

	for _, tc := range tests {
		gotX, gotY := m.ToScreen(tc.pos)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("ToScreen(%s) = (%d, %d); want (%d, %d)", tc.pos, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestToScreenOffsetOrigin(t *testing.T) {
	m := Mapper{B: Bounds{MinX: -16, MaxX: 16, MinZ: -12, MaxZ: 12}, Scale: 1, Pad: 10}

	gotX, gotY := m.ToScreen(circuit.Position{X: -16, Y: 0, Z: -12})
	if gotX != 10 || gotY != 10 {
		t.Errorf("minimum corner maps to (%d, %d); want the pad inset (10, 10)", gotX, gotY)
	}
}

func TestScreenSize(t *testing.T) {
	m := Mapper{B: Bounds{MinX: 0, MaxX: 32, MinZ: 0, MaxZ: 24}, Scale: 2, Pad: 24}

	w, h := m.ScreenSize(28, 18)
	if w != 32*2+48+28 || h != 24*2+48+18 {
		t.Errorf("ScreenSize = (%d, %d); want (140, 114)", w, h)
	}
}

func TestScreenSizeEmptyBounds(t *testing.T) {
	m := Mapper{B: Bounds{}, Scale: 2, Pad: 24}

	w, h := m.ScreenSize(28, 18)
	if w != 76 || h != 66 {
		t.Errorf("ScreenSize = (%d, %d); want pad and block only (76, 66)", w, h)
	}
}
