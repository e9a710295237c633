package mesh

import (
	"fmt"
	"sort"
)

type (
	NodeID        int32
	ElementID     int32
	PhysicalTag   int32
	ElementaryTag int32
)

// Node is a point in physical space
type Node struct {
	X, Y, Z float64
}

func (n Node) Coords() [3]float64 { return [3]float64{n.X, n.Y, n.Z} }

// Element couples a topology with its physical group and elementary entity
type Element struct {
	Physical   PhysicalTag
	Elementary ElementaryTag
	Topology   Topology
}

// Format is the content of a $MeshFormat header
type Format struct {
	Version  float64
	FileType int32 // 0 = ASCII
	DataSize int32 // bytes per float, informational only
}

func (f Format) IsBinary() bool { return f.FileType == 1 }

func (f Format) String() string {
	return fmt.Sprintf("%g %d %d", f.Version, f.FileType, f.DataSize)
}

// Mesh is a decoded mesh: an optional format header, a node map and an
// element map. A Mesh is never modified after construction.
type Mesh struct {
	format   *Format
	nodes    map[NodeID]Node
	elements map[ElementID]Element
}

// New takes ownership of the node and element maps
func New(format *Format, nodes map[NodeID]Node, elements map[ElementID]Element) *Mesh {
	if nodes == nil {
		nodes = make(map[NodeID]Node)
	}
	if elements == nil {
		elements = make(map[ElementID]Element)
	}
	var f *Format
	if format != nil {
		fc := *format
		f = &fc
	}
	return &Mesh{
		format:   f,
		nodes:    nodes,
		elements: elements,
	}
}

// Format returns the header of the mesh; ok is false for legacy meshes that
// carry no header
func (m *Mesh) Format() (f Format, ok bool) {
	if m.format == nil {
		return
	}
	return *m.format, true
}

func (m *Mesh) NumNodes() int    { return len(m.nodes) }
func (m *Mesh) NumElements() int { return len(m.elements) }

func (m *Mesh) Node(id NodeID) (n Node, ok bool) {
	n, ok = m.nodes[id]
	return
}

func (m *Mesh) Element(id ElementID) (e Element, ok bool) {
	if e, ok = m.elements[id]; ok {
		e.Topology = e.Topology.Clone()
	}
	return
}

// Nodes returns a copy of the node map
func (m *Mesh) Nodes() map[NodeID]Node {
	nodes := make(map[NodeID]Node, len(m.nodes))
	for id, n := range m.nodes {
		nodes[id] = n
	}
	return nodes
}

// Elements returns a copy of the element map
func (m *Mesh) Elements() map[ElementID]Element {
	elements := make(map[ElementID]Element, len(m.elements))
	for id, e := range m.elements {
		e.Topology = e.Topology.Clone()
		elements[id] = e
	}
	return elements
}

// NodeIDs returns all node ids in ascending order
func (m *Mesh) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ElementIDs returns all element ids in ascending order
func (m *Mesh) ElementIDs() []ElementID {
	ids := make([]ElementID, 0, len(m.elements))
	for id := range m.elements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
