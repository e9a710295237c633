package readers

import (
	"github.com/notargets/gomsh/mesh"
)

// toLegacy flattens the 4.1 model into the common mesh. Every element takes
// the tag of its entity block as physical tag and 0 as elementary tag.
// Entities, physical names, partitions, periodic links and parametrizations
// do not survive.
func (m *mesh4) toLegacy() *mesh.Mesh {
	nodes := make(map[mesh.NodeID]mesh.Node, m.nodes.numNodesHint())
	for _, block := range m.nodes.blocks {
		n := len(block.tags)
		if len(block.positions) < n {
			n = len(block.positions)
		}
		for i := 0; i < n; i++ {
			p := block.positions[i]
			nodes[block.tags[i]] = mesh.Node{X: p.x, Y: p.y, Z: p.z}
		}
	}

	elements := make(map[mesh.ElementID]mesh.Element, m.elements.numElementsHint())
	for _, block := range m.elements.blocks {
		for _, e := range block.elements {
			elements[e.tag] = mesh.Element{
				Physical:   mesh.PhysicalTag(block.tag),
				Elementary: 0,
				Topology:   e.topology,
			}
		}
	}

	format := m.format
	return mesh.New(&format, nodes, elements)
}

func (sec *nodeSection4) numNodesHint() (n int) {
	for _, b := range sec.blocks {
		n += len(b.tags)
	}
	return
}

func (sec *elementSection4) numElementsHint() (n int) {
	for _, b := range sec.blocks {
		n += len(b.elements)
	}
	return
}
