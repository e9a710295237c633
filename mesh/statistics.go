package mesh

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Statistics summarizes a decoded mesh
type Statistics struct {
	NumNodes    int
	NumElements int
	TypeCounts  map[ElementType]int

	// Highest topological dimension among the elements, -1 when there are none
	Dimension   int
	BoundingBox [2][3]float64 // [min, max][x, y, z]
	// Summed length, area and volume of the elements, keyed by dimension
	Measure map[int]float64

	// Facets of the highest dimension elements that belong to a single element
	BoundaryFacets int
	Orphans        int
	MaxValence     int
}

// Statistics computes the summary of the mesh
func (m *Mesh) Statistics() Statistics {
	st := Statistics{
		NumNodes:    len(m.nodes),
		NumElements: len(m.elements),
		TypeCounts:  make(map[ElementType]int),
		Dimension:   -1,
		Measure:     make(map[int]float64),
	}

	if len(m.nodes) > 0 {
		var xs, ys, zs []float64
		for _, n := range m.nodes {
			xs = append(xs, n.X)
			ys = append(ys, n.Y)
			zs = append(zs, n.Z)
		}
		st.BoundingBox = [2][3]float64{
			{floats.Min(xs), floats.Min(ys), floats.Min(zs)},
			{floats.Max(xs), floats.Max(ys), floats.Max(zs)},
		}
	}

	for _, e := range m.elements {
		t := e.Topology.Type
		st.TypeCounts[t]++
		if d := t.Dimension(); d > st.Dimension {
			st.Dimension = d
		}
		if meas, ok := m.measure(e.Topology); ok {
			st.Measure[t.Dimension()] += meas
		}
	}

	st.BoundaryFacets = m.countBoundaryFacets(st.Dimension)

	inc := m.Incidence()
	st.Orphans = len(inc.Orphans())
	st.MaxValence = inc.MaxValence()
	return st
}

func (m *Mesh) countBoundaryFacets(dim int) (count int) {
	if dim < 1 {
		return
	}
	facets := make(map[facetKey]int)
	for _, e := range m.elements {
		if e.Topology.Type.Dimension() != dim {
			continue
		}
		for _, f := range e.Topology.Facets() {
			facets[newFacetKey(f)]++
		}
	}
	for _, n := range facets {
		if n == 1 {
			count++
		}
	}
	return
}

func (m *Mesh) points(t Topology) (pts []r3.Vec, ok bool) {
	pts = make([]r3.Vec, len(t.Nodes))
	for i, id := range t.Nodes {
		n, found := m.nodes[id]
		if !found {
			return nil, false
		}
		pts[i] = r3.Vec{X: n.X, Y: n.Y, Z: n.Z}
	}
	return pts, true
}

// measure returns the length, area or volume of an element; ok is false
// when the element references a node that is not in the mesh
func (m *Mesh) measure(t Topology) (meas float64, ok bool) {
	var p []r3.Vec
	if p, ok = m.points(t); !ok {
		return
	}
	switch t.Type {
	case Point1:
		meas = 0
	case Line2:
		meas = r3.Norm(r3.Sub(p[1], p[0]))
	case Triangle3:
		meas = triangleArea(p[0], p[1], p[2])
	case Quadrangle4:
		meas = triangleArea(p[0], p[1], p[2]) + triangleArea(p[0], p[2], p[3])
	case Tetrahedron4:
		meas = tetVolume(p[0], p[1], p[2], p[3])
	case Pyramid5:
		meas = tetVolume(p[0], p[1], p[2], p[4]) + tetVolume(p[0], p[2], p[3], p[4])
	case Prism6:
		meas = prismVolume(p[0], p[1], p[2], p[3], p[4], p[5])
	case Hexahedron8:
		meas = prismVolume(p[0], p[1], p[2], p[4], p[5], p[6]) +
			prismVolume(p[0], p[2], p[3], p[4], p[6], p[7])
	}
	return
}

func triangleArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

func tetVolume(a, b, c, d r3.Vec) float64 {
	return math.Abs(r3.Dot(r3.Sub(b, a), r3.Cross(r3.Sub(c, a), r3.Sub(d, a)))) / 6
}

func prismVolume(a, b, c, d, e, f r3.Vec) float64 {
	return tetVolume(a, b, c, d) + tetVolume(b, c, d, e) + tetVolume(c, d, e, f)
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics(w io.Writer) {
	st := m.Statistics()
	fmt.Fprintf(w, "Mesh Statistics:\n")
	if f, ok := m.Format(); ok {
		fmt.Fprintf(w, "  Format: %v\n", f)
	}
	fmt.Fprintf(w, "  Nodes: %d\n", st.NumNodes)
	fmt.Fprintf(w, "  Elements: %d\n", st.NumElements)

	types := make([]ElementType, 0, len(st.TypeCounts))
	for t := range st.TypeCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	fmt.Fprintf(w, "  Element types:\n")
	for _, t := range types {
		fmt.Fprintf(w, "    %s: %d\n", t, st.TypeCounts[t])
	}

	if st.NumNodes > 0 {
		fmt.Fprintf(w, "  Bounding box: [%g %g %g] - [%g %g %g]\n",
			st.BoundingBox[0][0], st.BoundingBox[0][1], st.BoundingBox[0][2],
			st.BoundingBox[1][0], st.BoundingBox[1][1], st.BoundingBox[1][2])
	}
	for d, label := range [...]string{"", "Length", "Area", "Volume"} {
		if meas, ok := st.Measure[d]; ok && d > 0 {
			fmt.Fprintf(w, "  %s: %g\n", label, meas)
		}
	}
	fmt.Fprintf(w, "  Boundary facets: %d\n", st.BoundaryFacets)
	fmt.Fprintf(w, "  Orphan nodes: %d\n", st.Orphans)
	fmt.Fprintf(w, "  Max node valence: %d\n", st.MaxValence)
}
