package layout

import (
	"fmt"

	"goschem/pkg/circuit"
)

// Error is any failure of the layout stage: a config that cannot place
// nodes safely, or a circuit that violates the acyclic forward-built
// shape the layering pass relies on.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "layout: " + e.Msg
}

func errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Arrange layers the circuit by dependency depth and stamps a 3D
// position onto every node. The grid it returns groups nodes by layer
// in creation order, which is also the rank order placement used.
func Arrange(c *circuit.Circuit, cfg Config) (*Grid, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g, err := layerize(c)
	if err != nil {
		return nil, err
	}
	place(g, c.FanOut(), cfg)
	return g, nil
}
