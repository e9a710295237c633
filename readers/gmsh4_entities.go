package readers

func readPhysicalNames4(s *scanner) (names []physicalName, err error) {
	if err = s.marker("$PhysicalNames"); err != nil {
		return
	}
	var n int
	if n, err = s.count(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	names = make([]physicalName, 0, s.capHint(n))
	for i := 0; i < n; i++ {
		var (
			pn     physicalName
			fields [2]int32
		)
		if err = s.int32s(fields[:]); err != nil {
			return
		}
		if err = s.space1(); err != nil {
			return
		}
		if pn.name, err = s.quoted(); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		pn.dimension, pn.tag = fields[0], fields[1]
		names = append(names, pn)
	}

	err = s.endSection("$EndPhysicalNames")
	return
}

// entityCounts reads "numPoints numCurves numSurfaces numVolumes"
func entityCounts(s *scanner) (counts [4]int, err error) {
	for i := range counts {
		if i > 0 {
			if err = s.space1(); err != nil {
				return
			}
		}
		if counts[i], err = s.count(); err != nil {
			return
		}
	}
	err = s.lineEnd()
	return
}

// readEntities4 reads the model entities. Anything between the last entity
// record and $EndEntities is skipped.
func readEntities4(s *scanner) (ent *entities4, err error) {
	if err = s.marker("$Entities"); err != nil {
		return
	}
	var counts [4]int
	if counts, err = entityCounts(s); err != nil {
		return
	}

	ent = &entities4{}
	ent.points = make([]pointEntity, 0, s.capHint(counts[0]))
	for i := 0; i < counts[0]; i++ {
		var p pointEntity
		if p, err = readPointEntity(s); err != nil {
			return nil, err
		}
		if err = s.lineEnd(); err != nil {
			return nil, err
		}
		ent.points = append(ent.points, p)
	}
	for d, dst := range []*[]boundedEntity{&ent.curves, &ent.surfaces, &ent.volumes} {
		n := counts[d+1]
		*dst = make([]boundedEntity, 0, s.capHint(n))
		for i := 0; i < n; i++ {
			var b boundedEntity
			if b, err = readBoundedEntity(s); err != nil {
				return nil, err
			}
			if err = s.lineEnd(); err != nil {
				return nil, err
			}
			*dst = append(*dst, b)
		}
	}

	if err = s.skipUntil("$EndEntities"); err != nil {
		return nil, err
	}
	if err = s.endSection("$EndEntities"); err != nil {
		return nil, err
	}
	return
}

// readPointEntity reads "tag x y z physicalTags", without the line end
func readPointEntity(s *scanner) (p pointEntity, err error) {
	if p.tag, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	p.x, p.y, p.z, p.physicalTags, err = readPointBody(s)
	return
}

func readPointBody(s *scanner) (x, y, z float64, physicalTags []int32, err error) {
	var xyz [3]float64
	if err = s.doubles(xyz[:]); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	physicalTags, err = s.int32List()
	return xyz[0], xyz[1], xyz[2], physicalTags, err
}

// readBoundedEntity reads
// "tag minX minY minZ maxX maxY maxZ physicalTags boundingTags",
// without the line end
func readBoundedEntity(s *scanner) (b boundedEntity, err error) {
	if b.tag, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	b.box, b.physicalTags, b.boundingTags, err = readBoundedBody(s)
	return
}

func readBoundedBody(s *scanner) (box boundingBox, physicalTags, boundingTags []int32, err error) {
	var corners [6]float64
	if err = s.doubles(corners[:]); err != nil {
		return
	}
	copy(box[0][:], corners[:3])
	copy(box[1][:], corners[3:])
	if err = s.space1(); err != nil {
		return
	}
	if physicalTags, err = s.int32List(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	boundingTags, err = s.int32List()
	return
}

// readPartitionedEntities4 reads the entities of a partitioned model: the
// partition count, the ghost entities, then every entity with its parent
// and the partitions it belongs to.
func readPartitionedEntities4(s *scanner) (pe *partitionedEntities4, err error) {
	if err = s.marker("$PartitionedEntities"); err != nil {
		return
	}
	pe = &partitionedEntities4{}
	if pe.numPartitions, err = s.count(); err != nil {
		return nil, err
	}
	if err = s.lineEnd(); err != nil {
		return nil, err
	}
	if pe.ghosts, err = readGhostEntities(s); err != nil {
		return nil, err
	}

	var counts [4]int
	if counts, err = entityCounts(s); err != nil {
		return nil, err
	}

	pe.points = make([]partitionedPoint, 0, s.capHint(counts[0]))
	for i := 0; i < counts[0]; i++ {
		var p partitionedPoint
		if p.tag, p.partitionedEntity, err = readPartitionPrefix(s); err != nil {
			return nil, err
		}
		if p.x, p.y, p.z, p.physicalTags, err = readPointBody(s); err != nil {
			return nil, err
		}
		if err = s.lineEnd(); err != nil {
			return nil, err
		}
		pe.points = append(pe.points, p)
	}
	for d, dst := range []*[]partitionedBounded{&pe.curves, &pe.surfaces, &pe.volumes} {
		n := counts[d+1]
		*dst = make([]partitionedBounded, 0, s.capHint(n))
		for i := 0; i < n; i++ {
			var b partitionedBounded
			if b.tag, b.partitionedEntity, err = readPartitionPrefix(s); err != nil {
				return nil, err
			}
			if b.box, b.physicalTags, b.boundingTags, err = readBoundedBody(s); err != nil {
				return nil, err
			}
			if err = s.lineEnd(); err != nil {
				return nil, err
			}
			*dst = append(*dst, b)
		}
	}

	if err = s.endSection("$EndPartitionedEntities"); err != nil {
		return nil, err
	}
	return
}

// readGhostEntities reads the ghost entity count and its (tag, partition)
// pairs. Pairs may share a line or sit on lines of their own.
func readGhostEntities(s *scanner) (ghosts []ghostEntity, err error) {
	var n int
	if n, err = s.count(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}
	ghosts = make([]ghostEntity, 0, s.capHint(n))
	for i := 0; i < n; i++ {
		if i > 0 {
			if s.lineEnd() != nil {
				if err = s.space1(); err != nil {
					return
				}
			}
		}
		var pair [2]int32
		if err = s.int32s(pair[:]); err != nil {
			return
		}
		ghosts = append(ghosts, ghostEntity{tag: pair[0], partition: pair[1]})
	}
	if n > 0 {
		err = s.lineEnd()
	}
	return
}

// readPartitionPrefix reads "tag parentDim parentTag partitionTags" and the
// blank that follows
func readPartitionPrefix(s *scanner) (tag int32, pe partitionedEntity, err error) {
	var fields [3]int32
	if err = s.int32s(fields[:]); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if pe.partitionTags, err = s.int32List(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	tag, pe.parentDim, pe.parentTag = fields[0], fields[1], fields[2]
	return
}
