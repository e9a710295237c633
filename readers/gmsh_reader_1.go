package readers

import (
	"github.com/notargets/gomsh/mesh"
)

// decodeGmsh1 decodes the legacy $NOD/$ELM grammar. All integer fields are
// read as floats and truncated.
func decodeGmsh1(text string) (*mesh.Mesh, error) {
	s := newScanner("v1", text)

	nodes, err := readNodes1(s, "$NOD", "$ENDNOD")
	if err != nil {
		return nil, err
	}
	if err = s.newline(); err != nil {
		return nil, err
	}

	elements, err := readElements1(s)
	if err != nil {
		return nil, err
	}

	return mesh.New(nil, nodes, elements), nil
}

// readNodes1 reads a flat node section, shared by the v1 and v2 grammars.
// The end marker is consumed without its newline.
func readNodes1(s *scanner, begin, end string) (map[mesh.NodeID]mesh.Node, error) {
	if err := s.marker(begin); err != nil {
		return nil, err
	}
	numNodes, err := s.floatCount()
	if err != nil {
		return nil, err
	}
	if err = s.lineEnd(); err != nil {
		return nil, err
	}

	nodes := make(map[mesh.NodeID]mesh.Node, s.capHint(numNodes))
	for i := 0; i < numNodes; i++ {
		id, node, err := readNodeRecord1(s)
		if err != nil {
			return nil, err
		}
		nodes[id] = node
	}

	if err = s.literal(end); err != nil {
		return nil, err
	}
	return nodes, nil
}

// readNodeRecord1 reads "id x y z" followed by a newline
func readNodeRecord1(s *scanner) (id mesh.NodeID, node mesh.Node, err error) {
	var tag int32
	if tag, err = s.floatInt(); err != nil {
		return
	}
	id = mesh.NodeID(tag)
	var coords [3]float64
	for k := range coords {
		s.space0()
		if coords[k], err = s.double(); err != nil {
			return
		}
	}
	if err = s.lineEnd(); err != nil {
		return
	}
	node = mesh.Node{X: coords[0], Y: coords[1], Z: coords[2]}
	return
}

func readElements1(s *scanner) (map[mesh.ElementID]mesh.Element, error) {
	if err := s.marker("$ELM"); err != nil {
		return nil, err
	}
	numElements, err := s.floatCount()
	if err != nil {
		return nil, err
	}
	if err = s.lineEnd(); err != nil {
		return nil, err
	}

	elements := make(map[mesh.ElementID]mesh.Element, s.capHint(numElements))
	for i := 0; i < numElements; i++ {
		id, elem, err := readElementRecord1(s)
		if err != nil {
			return nil, err
		}
		elements[id] = elem
	}

	if err = s.literal("$ENDELM"); err != nil {
		return nil, err
	}
	return elements, nil
}

// readElementRecord1 reads
// "id type-code physical elementary number-of-nodes node-ids..."
func readElementRecord1(s *scanner) (id mesh.ElementID, elem mesh.Element, err error) {
	var fields [4]int32 // id, type code, physical, elementary
	var codeAt int
	for k := range fields {
		if k > 0 {
			s.space0()
		}
		if k == 1 {
			codeAt = s.pos
		}
		if fields[k], err = s.floatInt(); err != nil {
			return
		}
	}
	s.space0()
	// number of nodes, implied by the type code
	if _, err = s.double(); err != nil {
		return
	}
	s.space0()

	var t mesh.ElementType
	if t, err = s.lookupElementType(dialectV1, fields[1], codeAt); err != nil {
		return
	}
	var topo mesh.Topology
	if topo, err = s.topology(dialectV1, t); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	id = mesh.ElementID(fields[0])
	elem = mesh.Element{
		Physical:   mesh.PhysicalTag(fields[2]),
		Elementary: mesh.ElementaryTag(fields[3]),
		Topology:   topo,
	}
	return
}
