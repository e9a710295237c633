package readers

import (
	"fmt"

	"github.com/notargets/gomsh/mesh"
)

// dialect selects the type code table of a grammar
type dialect int

const (
	dialectV1 dialect = iota
	dialectV2
	dialectV4
)

// elementType maps a Gmsh element type code to a topology variant. Code 5
// is a tetrahedron in the 2.2 grammar; existing files decoded as 2.2 depend
// on it, so it is kept.
func elementType(d dialect, code int32) (mesh.ElementType, bool) {
	switch code {
	case 1:
		return mesh.Line2, true
	case 2:
		return mesh.Triangle3, true
	case 3:
		return mesh.Quadrangle4, true
	case 4:
		return mesh.Tetrahedron4, true
	case 5:
		if d == dialectV2 {
			return mesh.Tetrahedron4, true
		}
		return mesh.Hexahedron8, true
	case 6:
		if d == dialectV4 {
			return mesh.Prism6, true
		}
	case 15:
		return mesh.Point1, true
	}
	return 0, false
}

// lookupElementType is elementType with the failure reported at the
// position of the type code
func (s *scanner) lookupElementType(d dialect, code int32, at int) (mesh.ElementType, error) {
	t, ok := elementType(d, code)
	if !ok {
		return 0, s.failAt(at, UnsupportedTopology,
			fmt.Sprintf("a supported element type code, got %d", code))
	}
	return t, nil
}

// topology reads the node id list of an element of type t. Legacy grammars
// write ids as floats separated by zero or more blanks, v4 writes native
// integers separated by at least one blank.
func (s *scanner) topology(d dialect, t mesh.ElementType) (mesh.Topology, error) {
	nodes := make([]mesh.NodeID, t.NumNodes())
	for i := range nodes {
		var (
			id  int32
			err error
		)
		if d == dialectV4 {
			if i > 0 {
				if err = s.space1(); err != nil {
					return mesh.Topology{}, err
				}
			}
			id, err = s.int32()
		} else {
			if i > 0 {
				s.space0()
			}
			id, err = s.floatInt()
		}
		if err != nil {
			return mesh.Topology{}, err
		}
		nodes[i] = mesh.NodeID(id)
	}
	return mesh.Topology{Type: t, Nodes: nodes}, nil
}
