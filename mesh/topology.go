package mesh

import (
	"fmt"
	"sort"
)

// ElementType represents the supported element shapes
type ElementType int

const (
	Point1 ElementType = iota
	Line2
	Triangle3
	Quadrangle4
	Tetrahedron4
	Hexahedron8
	Prism6
	Pyramid5
)

func (e ElementType) String() string {
	if e < Point1 || e > Pyramid5 {
		return fmt.Sprintf("ElementType(%d)", int(e))
	}
	return [...]string{"Point1", "Line2", "Triangle3", "Quadrangle4",
		"Tetrahedron4", "Hexahedron8", "Prism6", "Pyramid5"}[e]
}

// NumNodes returns the fixed arity of the element type
func (e ElementType) NumNodes() int {
	switch e {
	case Point1:
		return 1
	case Line2:
		return 2
	case Triangle3:
		return 3
	case Quadrangle4, Tetrahedron4:
		return 4
	case Pyramid5:
		return 5
	case Prism6:
		return 6
	case Hexahedron8:
		return 8
	default:
		return 0
	}
}

// Dimension returns the topological dimension of the element type
func (e ElementType) Dimension() int {
	switch e {
	case Point1:
		return 0
	case Line2:
		return 1
	case Triangle3, Quadrangle4:
		return 2
	default:
		return 3
	}
}

// Topology is an ordered, fixed-arity tuple of node ids. The arity always
// matches Type.NumNodes().
type Topology struct {
	Type  ElementType
	Nodes []NodeID
}

// NewTopology builds a topology of type t, failing when the number of nodes
// does not match the arity of t
func NewTopology(t ElementType, nodes ...NodeID) (Topology, error) {
	n := t.NumNodes()
	if n == 0 {
		return Topology{}, fmt.Errorf("unknown element type %v", t)
	}
	if len(nodes) != n {
		return Topology{}, fmt.Errorf("%v requires %d nodes, got %d", t, n, len(nodes))
	}
	ns := make([]NodeID, n)
	copy(ns, nodes)
	return Topology{Type: t, Nodes: ns}, nil
}

func NewPoint1(n0 NodeID) Topology {
	return Topology{Type: Point1, Nodes: []NodeID{n0}}
}

func NewLine2(n0, n1 NodeID) Topology {
	return Topology{Type: Line2, Nodes: []NodeID{n0, n1}}
}

func NewTriangle3(n0, n1, n2 NodeID) Topology {
	return Topology{Type: Triangle3, Nodes: []NodeID{n0, n1, n2}}
}

func NewQuadrangle4(n0, n1, n2, n3 NodeID) Topology {
	return Topology{Type: Quadrangle4, Nodes: []NodeID{n0, n1, n2, n3}}
}

func NewTetrahedron4(n0, n1, n2, n3 NodeID) Topology {
	return Topology{Type: Tetrahedron4, Nodes: []NodeID{n0, n1, n2, n3}}
}

func NewHexahedron8(n0, n1, n2, n3, n4, n5, n6, n7 NodeID) Topology {
	return Topology{Type: Hexahedron8, Nodes: []NodeID{n0, n1, n2, n3, n4, n5, n6, n7}}
}

func NewPrism6(n0, n1, n2, n3, n4, n5 NodeID) Topology {
	return Topology{Type: Prism6, Nodes: []NodeID{n0, n1, n2, n3, n4, n5}}
}

func NewPyramid5(n0, n1, n2, n3, n4 NodeID) Topology {
	return Topology{Type: Pyramid5, Nodes: []NodeID{n0, n1, n2, n3, n4}}
}

// Clone returns a copy that shares no storage with t
func (t Topology) Clone() Topology {
	ns := make([]NodeID, len(t.Nodes))
	copy(ns, t.Nodes)
	return Topology{Type: t.Type, Nodes: ns}
}

func (t Topology) String() string {
	return fmt.Sprintf("%v%v", t.Type, t.Nodes)
}

// Facets returns the node lists of the boundary entities one dimension below
// the element: end points of lines, edges of faces, faces of volumes.
func (t Topology) Facets() [][]NodeID {
	v := t.Nodes
	switch t.Type {
	case Line2:
		return [][]NodeID{{v[0]}, {v[1]}}
	case Triangle3:
		return [][]NodeID{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
	case Quadrangle4:
		return [][]NodeID{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[3]}, {v[3], v[0]}}
	case Tetrahedron4:
		return [][]NodeID{
			{v[0], v[2], v[1]}, // Face 0
			{v[0], v[1], v[3]}, // Face 1
			{v[1], v[2], v[3]}, // Face 2
			{v[0], v[3], v[2]}, // Face 3
		}
	case Hexahedron8:
		return [][]NodeID{
			{v[0], v[3], v[2], v[1]}, // Face 0 (bottom)
			{v[4], v[5], v[6], v[7]}, // Face 1 (top)
			{v[0], v[1], v[5], v[4]}, // Face 2
			{v[1], v[2], v[6], v[5]}, // Face 3
			{v[2], v[3], v[7], v[6]}, // Face 4
			{v[3], v[0], v[4], v[7]}, // Face 5
		}
	case Prism6:
		return [][]NodeID{
			{v[0], v[2], v[1]},       // Face 0 (bottom tri)
			{v[3], v[4], v[5]},       // Face 1 (top tri)
			{v[0], v[1], v[4], v[3]}, // Face 2 (quad)
			{v[1], v[2], v[5], v[4]}, // Face 3 (quad)
			{v[2], v[0], v[3], v[5]}, // Face 4 (quad)
		}
	case Pyramid5:
		return [][]NodeID{
			{v[0], v[3], v[2], v[1]}, // Face 0 (base quad)
			{v[0], v[1], v[4]},       // Face 1 (tri)
			{v[1], v[2], v[4]},       // Face 2 (tri)
			{v[2], v[3], v[4]},       // Face 3 (tri)
			{v[3], v[0], v[4]},       // Face 4 (tri)
		}
	default:
		return nil
	}
}

// facetKey is an order independent key for a facet of at most four nodes
type facetKey struct {
	n     int
	nodes [4]NodeID
}

func newFacetKey(nodes []NodeID) (key facetKey) {
	key.n = len(nodes)
	copy(key.nodes[:], nodes)
	sorted := key.nodes[:key.n]
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return
}
