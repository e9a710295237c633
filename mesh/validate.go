package mesh

import (
	"fmt"
	"strings"
)

// DanglingReference is an element node id that has no entry in the node map
type DanglingReference struct {
	Element ElementID
	Node    NodeID
}

// ValidationError lists every dangling reference found by Validate
type ValidationError struct {
	Dangling []DanglingReference
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mesh has %d dangling node references", len(e.Dangling))
	for i, d := range e.Dangling {
		if i == 5 {
			fmt.Fprintf(&sb, ", ...")
			break
		}
		fmt.Fprintf(&sb, "; element %d -> node %d", d.Element, d.Node)
	}
	return sb.String()
}

// Validate checks that every node referenced by an element exists in the
// node map. The decoders never perform this check.
func (m *Mesh) Validate() error {
	var dangling []DanglingReference
	for _, eid := range m.ElementIDs() {
		for _, nid := range m.elements[eid].Topology.Nodes {
			if _, ok := m.nodes[nid]; !ok {
				dangling = append(dangling, DanglingReference{Element: eid, Node: nid})
			}
		}
	}
	if len(dangling) == 0 {
		return nil
	}
	return &ValidationError{Dangling: dangling}
}
