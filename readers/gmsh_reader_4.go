package readers

import (
	"github.com/notargets/gomsh/mesh"
)

// decodeGmsh4 decodes the 4.1 grammar into the intermediate model. Optional
// sections before $Nodes are taken in the order PhysicalNames, Entities,
// PartitionedEntities; after $Elements, Periodic and Parametrizations may
// follow in either order. Anything after that is left unread.
func decodeGmsh4(text string) (*mesh4, error) {
	var (
		s   = newScanner("v4.1", text)
		m   = &mesh4{}
		err error
	)

	if m.format, err = readMeshFormat4(s); err != nil {
		return nil, err
	}

	if s.hasMarker("$PhysicalNames") {
		if m.physicalNames, err = readPhysicalNames4(s); err != nil {
			return nil, err
		}
	}
	if s.hasMarker("$Entities") {
		if m.entities, err = readEntities4(s); err != nil {
			return nil, err
		}
	}
	if s.hasMarker("$PartitionedEntities") {
		if m.partitionedEntities, err = readPartitionedEntities4(s); err != nil {
			return nil, err
		}
	}

	if m.nodes, err = readNodes4(s); err != nil {
		return nil, err
	}
	if m.elements, err = readElements4(s); err != nil {
		return nil, err
	}

	var hasPeriodic bool
	for {
		switch {
		case !hasPeriodic && s.hasMarker("$Periodic"):
			if m.periodicLinks, err = readPeriodic4(s); err != nil {
				return nil, err
			}
			hasPeriodic = true
		case m.parametrizations == nil && s.hasMarker("$Parametrizations"):
			if m.parametrizations, err = readParametrizations4(s); err != nil {
				return nil, err
			}
		default:
			return m, nil
		}
	}
}

// endSection consumes a section end marker and the newline that follows it,
// the newline may be missing at the end of the input
func (s *scanner) endSection(name string) error {
	if err := s.literal(name); err != nil {
		return err
	}
	if s.atEOF() {
		return nil
	}
	return s.lineEnd()
}

// readMeshFormat4 reads the MeshFormat section; only version 4.1 matches
func readMeshFormat4(s *scanner) (f mesh.Format, err error) {
	if err = s.marker("$MeshFormat"); err != nil {
		return
	}
	if err = s.literal("4.1"); err != nil {
		return
	}
	f.Version = 4.1
	if err = s.space1(); err != nil {
		return
	}
	if f.FileType, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if f.DataSize, err = s.int32(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}
	err = s.endSection("$EndMeshFormat")
	return
}

// sectionHeader4 reads "numEntityBlocks numItems minTag maxTag". The
// declared values are kept but never checked against the blocks.
func sectionHeader4(s *scanner) (numBlocks, numItems int, minTag, maxTag int32, err error) {
	if numBlocks, err = s.count(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if numItems, err = s.count(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if minTag, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if maxTag, err = s.int32(); err != nil {
		return
	}
	err = s.lineEnd()
	return
}

// blockHeader4 reads the four fields that open an entity block:
// "entityDim entityTag <field> count"
func blockHeader4(s *scanner) (dim, tag, field int32, fieldAt, n int, err error) {
	if dim, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if tag, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	fieldAt = s.pos
	if field, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if n, err = s.count(); err != nil {
		return
	}
	err = s.lineEnd()
	return
}

func readNodes4(s *scanner) (sec nodeSection4, err error) {
	if err = s.marker("$Nodes"); err != nil {
		return
	}
	var numBlocks int
	if numBlocks, sec.numNodes, sec.minTag, sec.maxTag, err = sectionHeader4(s); err != nil {
		return
	}

	sec.blocks = make([]nodeEntity, 0, s.capHint(numBlocks))
	for i := 0; i < numBlocks; i++ {
		var block nodeEntity
		if block, err = readNodeEntity4(s); err != nil {
			return
		}
		sec.blocks = append(sec.blocks, block)
	}

	err = s.endSection("$EndNodes")
	return
}

// readNodeEntity4 reads one node block: the header, the node tags one per
// line, then the positions one per line
func readNodeEntity4(s *scanner) (block nodeEntity, err error) {
	var (
		parametric int32
		numNodes   int
	)
	if block.dimension, block.tag, parametric, _, numNodes, err = blockHeader4(s); err != nil {
		return
	}
	block.parametric = parametric == 1

	block.tags = make([]mesh.NodeID, 0, s.capHint(numNodes))
	for j := 0; j < numNodes; j++ {
		var tag int32
		if tag, err = s.int32(); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		block.tags = append(block.tags, mesh.NodeID(tag))
	}

	block.positions = make([]position4, 0, s.capHint(numNodes))
	for j := 0; j < numNodes; j++ {
		var pos position4
		if pos, err = readPosition4(s, block.parametric, block.dimension); err != nil {
			return
		}
		block.positions = append(block.positions, pos)
	}

	// An empty block still ends with a line of its own
	if numNodes == 0 {
		err = s.lineEnd()
	}
	return
}

// readPosition4 reads "x y z [u [v [w]]]". The parametric coordinates are
// present only in parametric blocks: u from dimension 1, v from dimension 2
// and w in dimension 3.
func readPosition4(s *scanner, parametric bool, dim int32) (pos position4, err error) {
	var xyz [3]float64
	if err = s.doubles(xyz[:]); err != nil {
		return
	}
	pos.x, pos.y, pos.z = xyz[0], xyz[1], xyz[2]

	if parametric {
		for _, p := range [...]struct {
			dst  **float64
			read bool
		}{
			{&pos.u, dim >= 1},
			{&pos.v, dim >= 2},
			{&pos.w, dim == 3},
		} {
			if !p.read {
				continue
			}
			if err = s.space1(); err != nil {
				return
			}
			var val float64
			if val, err = s.double(); err != nil {
				return
			}
			*p.dst = &val
		}
	}

	err = s.lineEnd()
	return
}

func readElements4(s *scanner) (sec elementSection4, err error) {
	if err = s.marker("$Elements"); err != nil {
		return
	}
	var numBlocks int
	if numBlocks, sec.numElements, sec.minTag, sec.maxTag, err = sectionHeader4(s); err != nil {
		return
	}

	sec.blocks = make([]elementEntity, 0, s.capHint(numBlocks))
	for i := 0; i < numBlocks; i++ {
		var block elementEntity
		if block, err = readElementEntity4(s); err != nil {
			return
		}
		sec.blocks = append(sec.blocks, block)
	}

	err = s.endSection("$EndElements")
	return
}

// readElementEntity4 reads one element block: the header, then one line per
// element holding the element tag and its node tags
func readElementEntity4(s *scanner) (block elementEntity, err error) {
	var (
		code         int32
		codeAt, numE int
	)
	if block.dimension, block.tag, code, codeAt, numE, err = blockHeader4(s); err != nil {
		return
	}
	if block.typ, err = s.lookupElementType(dialectV4, code, codeAt); err != nil {
		return
	}

	block.elements = make([]element4, 0, s.capHint(numE))
	for j := 0; j < numE; j++ {
		var (
			tag  int32
			topo mesh.Topology
		)
		if tag, err = s.int32(); err != nil {
			return
		}
		if err = s.space1(); err != nil {
			return
		}
		if topo, err = s.topology(dialectV4, block.typ); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		block.elements = append(block.elements, element4{tag: mesh.ElementID(tag), topology: topo})
	}
	return
}
