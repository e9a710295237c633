package readers

import (
	"github.com/notargets/gomsh/mesh"
)

// decodeGmsh22 decodes the 2.2 grammar: a $MeshFormat header followed by
// flat $Nodes and $Elements sections with per element tag fields
func decodeGmsh22(text string) (*mesh.Mesh, error) {
	s := newScanner("v2.2", text)

	format, err := readMeshFormat22(s)
	if err != nil {
		return nil, err
	}
	if err = s.newline(); err != nil {
		return nil, err
	}

	nodes, err := readNodes1(s, "$Nodes", "$EndNodes")
	if err != nil {
		return nil, err
	}
	if err = s.newline(); err != nil {
		return nil, err
	}

	elements, err := readElements22(s)
	if err != nil {
		return nil, err
	}

	return mesh.New(&format, nodes, elements), nil
}

// readMeshFormat22 reads the MeshFormat section, the end marker is consumed
// without its newline
func readMeshFormat22(s *scanner) (f mesh.Format, err error) {
	if err = s.marker("$MeshFormat"); err != nil {
		return
	}
	if f.Version, err = s.double(); err != nil {
		return
	}
	s.space0()
	if f.FileType, err = s.floatInt(); err != nil {
		return
	}
	s.space0()
	if f.DataSize, err = s.floatInt(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}
	err = s.literal("$EndMeshFormat")
	return
}

func readElements22(s *scanner) (map[mesh.ElementID]mesh.Element, error) {
	if err := s.marker("$Elements"); err != nil {
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
		id, elem, err := readElementRecord22(s)
		if err != nil {
			return nil, err
		}
		elements[id] = elem
	}

	if err = s.literal("$EndElements"); err != nil {
		return nil, err
	}
	return elements, nil
}

// readElementRecord22 reads
// "id type-code number-of-tags physical elementary node-ids..."
// The tag count is not honored, exactly two tags are expected.
func readElementRecord22(s *scanner) (id mesh.ElementID, elem mesh.Element, err error) {
	var tag, code, physical, elementary int32
	if tag, err = s.floatInt(); err != nil {
		return
	}
	s.space0()
	codeAt := s.pos
	if code, err = s.floatInt(); err != nil {
		return
	}
	s.space0()
	if _, err = s.double(); err != nil {
		return
	}
	s.space0()
	if physical, err = s.floatInt(); err != nil {
		return
	}
	s.space0()
	if elementary, err = s.floatInt(); err != nil {
		return
	}
	s.space0()

	var t mesh.ElementType
	if t, err = s.lookupElementType(dialectV2, code, codeAt); err != nil {
		return
	}
	var topo mesh.Topology
	if topo, err = s.topology(dialectV2, t); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	id = mesh.ElementID(tag)
	elem = mesh.Element{
		Physical:   mesh.PhysicalTag(physical),
		Elementary: mesh.ElementaryTag(elementary),
		Topology:   topo,
	}
	return
}
