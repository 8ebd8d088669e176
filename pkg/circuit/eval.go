package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Evaluate computes the boolean level of every node in a single pass and
// returns the full per-node level slice (indexed by node id) plus the levels
// of the observed outputs in output order.
//
// Creation order is a valid evaluation order because operands always precede
// their consumers. INPUT nodes read from levers by node id; an absent entry
// means the lever is off. The pass is pure: the circuit is never mutated, so
// callers may re-evaluate with different lever settings as often as they
// like.
func Evaluate(c *Circuit, levers map[int]bool) (levels []bool, outputs []bool) {
	levels = make([]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		switch n.Kind {
		case INPUT:
			levels[n.ID] = levers[n.ID]
		case CONST:
			levels[n.ID] = n.Value
		case NOT:
			levels[n.ID] = !levels[n.Operands[0].ID]
		case AND:
			levels[n.ID] = levels[n.Operands[0].ID] && levels[n.Operands[1].ID]
		case OR:
			levels[n.ID] = levels[n.Operands[0].ID] || levels[n.Operands[1].ID]
		case XOR:
			levels[n.ID] = levels[n.Operands[0].ID] != levels[n.Operands[1].ID]
		case XNOR:
			levels[n.ID] = levels[n.Operands[0].ID] == levels[n.Operands[1].ID]
		case MUX:
			if levels[n.Operands[0].ID] {
				levels[n.ID] = levels[n.Operands[1].ID]
			} else {
				levels[n.ID] = levels[n.Operands[2].ID]
			}
		default:
			panic(fmt.Sprintf("unknown kind %s", n.Kind))
		}
	}
	outputs = make([]bool, len(c.Outputs))
	for i, out := range c.Outputs {
		outputs[i] = levels[out.ID]
	}
	return levels, outputs
}

// LeversByName translates name→level settings into the id→level map Evaluate
// consumes, matching INPUT nodes by label. The returned map always covers
// every name that matched; names with no lever are reported as an error so
// interactive callers can surface typos without losing the matches.
func LeversByName(c *Circuit, byName map[string]bool) (map[int]bool, error) {
	byID := make(map[int]bool, len(byName))
	var unknown []string
	for name, level := range byName {
		found := false
		for _, n := range c.Nodes {
			if n.Kind == INPUT && n.Label == name {
				byID[n.ID] = level
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		if len(unknown) == 1 {
			return byID, fmt.Errorf("no input lever named %q", unknown[0])
		}
		return byID, fmt.Errorf("no input levers named %s", strings.Join(unknown, ", "))
	}
	return byID, nil
}
