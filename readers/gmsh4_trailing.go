package readers

import (
	"github.com/notargets/gomsh/mesh"
)

// readPeriodic4 reads the periodic links between a dependent entity and its
// master entity
func readPeriodic4(s *scanner) (links []periodicLink, err error) {
	if err = s.marker("$Periodic"); err != nil {
		return
	}
	var n int
	if n, err = s.count(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	links = make([]periodicLink, 0, s.capHint(n))
	for i := 0; i < n; i++ {
		var link periodicLink
		if link, err = readPeriodicLink(s); err != nil {
			return
		}
		links = append(links, link)
	}

	err = s.endSection("$EndPeriodic")
	return
}

// readPeriodicLink reads
//
//	entityDim entityTag entityTagMaster
//	numAffine value ...
//	numCorrespondingNodes
//	nodeTag nodeTagMaster
//	...
func readPeriodicLink(s *scanner) (link periodicLink, err error) {
	var head [3]int32
	if err = s.int32s(head[:]); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}
	link.dimension, link.tag, link.masterTag = head[0], head[1], head[2]

	if link.affine, err = readAffine(s); err != nil {
		return
	}

	var numPairs int
	if numPairs, err = s.count(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}
	link.nodePairs = make([][2]mesh.NodeID, 0, s.capHint(numPairs))
	for j := 0; j < numPairs; j++ {
		var pair [2]int32
		if err = s.int32s(pair[:]); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		link.nodePairs = append(link.nodePairs,
			[2]mesh.NodeID{mesh.NodeID(pair[0]), mesh.NodeID(pair[1])})
	}
	return
}

// readAffine reads the affine transform count and its values. The values
// follow on the same line, a line break right after the count is accepted.
func readAffine(s *scanner) (affine []float64, err error) {
	var n int
	if n, err = s.count(); err != nil {
		return
	}
	affine = make([]float64, 0, s.capHint(n))
	for i := 0; i < n; i++ {
		if i > 0 || s.lineEnd() != nil {
			if err = s.space1(); err != nil {
				return nil, err
			}
		}
		var v float64
		if v, err = s.double(); err != nil {
			return nil, err
		}
		affine = append(affine, v)
	}
	err = s.lineEnd()
	return
}

// readParametrizations4 reads the curve and surface parametrizations
func readParametrizations4(s *scanner) (p *parametrizations4, err error) {
	if err = s.marker("$Parametrizations"); err != nil {
		return
	}
	var counts [2]int
	if counts[0], err = s.count(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	if counts[1], err = s.count(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	p = &parametrizations4{
		curves:   make([]curveParametrization, 0, s.capHint(counts[0])),
		surfaces: make([]surfaceParametrization, 0, s.capHint(counts[1])),
	}
	for i := 0; i < counts[0]; i++ {
		var c curveParametrization
		if c, err = readCurveParametrization(s); err != nil {
			return nil, err
		}
		p.curves = append(p.curves, c)
	}
	for i := 0; i < counts[1]; i++ {
		var sp surfaceParametrization
		if sp, err = readSurfaceParametrization(s); err != nil {
			return nil, err
		}
		p.surfaces = append(p.surfaces, sp)
	}

	if err = s.endSection("$EndParametrizations"); err != nil {
		return nil, err
	}
	return
}

// readCurveParametrization reads "tag numNodes" and one "x y z u" line per
// node
func readCurveParametrization(s *scanner) (c curveParametrization, err error) {
	if c.tag, err = s.int32(); err != nil {
		return
	}
	if err = s.space1(); err != nil {
		return
	}
	var n int
	if n, err = s.count(); err != nil {
		return
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	c.samples = make([]curveSample, 0, s.capHint(n))
	for j := 0; j < n; j++ {
		var v [4]float64
		if err = s.doubles(v[:]); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		c.samples = append(c.samples, curveSample{x: v[0], y: v[1], z: v[2], u: v[3]})
	}
	return
}

// readSurfaceParametrization reads "tag numNodes numTriangles", one
// "x y z u v maxX maxY maxZ minX minY minZ" line per node and one
// "i j k" line per triangle
func readSurfaceParametrization(s *scanner) (sp surfaceParametrization, err error) {
	if sp.tag, err = s.int32(); err != nil {
		return
	}
	var counts [2]int
	for k := range counts {
		if err = s.space1(); err != nil {
			return
		}
		if counts[k], err = s.count(); err != nil {
			return
		}
	}
	if err = s.lineEnd(); err != nil {
		return
	}

	sp.samples = make([]surfaceSample, 0, s.capHint(counts[0]))
	for j := 0; j < counts[0]; j++ {
		var v [11]float64
		if err = s.doubles(v[:]); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		sample := surfaceSample{x: v[0], y: v[1], z: v[2], u: v[3], v: v[4]}
		copy(sample.box[1][:], v[5:8])
		copy(sample.box[0][:], v[8:11])
		sp.samples = append(sp.samples, sample)
	}

	sp.triangles = make([][3]int32, 0, s.capHint(counts[1]))
	for j := 0; j < counts[1]; j++ {
		var tri [3]int32
		if err = s.int32s(tri[:]); err != nil {
			return
		}
		if err = s.lineEnd(); err != nil {
			return
		}
		sp.triangles = append(sp.triangles, tri)
	}
	return
}
