package readers

import (
	"github.com/notargets/gomsh/mesh"
)

// mesh4 is the intermediate result of the 4.1 grammar. It exists only until
// it is flattened by toLegacy.
type mesh4 struct {
	format mesh.Format

	// Optional sections are nil when absent from the file
	physicalNames       []physicalName
	entities            *entities4
	partitionedEntities *partitionedEntities4
	parametrizations    *parametrizations4
	periodicLinks       []periodicLink

	nodes    nodeSection4
	elements elementSection4
}

type physicalName struct {
	dimension int32
	tag       int32
	name      string
}

type boundingBox [2][3]float64 // [min, max][x, y, z]

type pointEntity struct {
	tag          int32
	x, y, z      float64
	physicalTags []int32
}

// boundedEntity is a curve, surface or volume. boundingTags are the tags of
// the entities one dimension lower: points for curves, curves for surfaces,
// surfaces for volumes. A negative tag flags reversed orientation.
type boundedEntity struct {
	tag          int32
	box          boundingBox
	physicalTags []int32
	boundingTags []int32
}

type entities4 struct {
	points   []pointEntity
	curves   []boundedEntity
	surfaces []boundedEntity
	volumes  []boundedEntity
}

type ghostEntity struct {
	tag       int32
	partition int32
}

// partitionedEntity is an entity of a partitioned model, linked to the
// entity of the unpartitioned model it was cut from
type partitionedEntity struct {
	parentDim     int32
	parentTag     int32
	partitionTags []int32
}

type partitionedPoint struct {
	pointEntity
	partitionedEntity
}

type partitionedBounded struct {
	boundedEntity
	partitionedEntity
}

type partitionedEntities4 struct {
	numPartitions int
	ghosts        []ghostEntity
	points        []partitionedPoint
	curves        []partitionedBounded
	surfaces      []partitionedBounded
	volumes       []partitionedBounded
}

// position4 is a node position; u, v and w are set only for parametric
// blocks whose dimension carries them
type position4 struct {
	x, y, z float64
	u, v, w *float64
}

// nodeEntity is one entity block of the $Nodes section. tags and positions
// are aligned by index.
type nodeEntity struct {
	dimension  int32
	tag        int32
	parametric bool
	tags       []mesh.NodeID
	positions  []position4
}

type nodeSection4 struct {
	numNodes int
	minTag   int32
	maxTag   int32
	blocks   []nodeEntity
}

type element4 struct {
	tag      mesh.ElementID
	topology mesh.Topology
}

// elementEntity is one entity block of the $Elements section, all elements
// of a block share the element type
type elementEntity struct {
	dimension int32
	tag       int32
	typ       mesh.ElementType
	elements  []element4
}

type elementSection4 struct {
	numElements int
	minTag      int32
	maxTag      int32
	blocks      []elementEntity
}

type periodicLink struct {
	dimension int32
	tag       int32
	masterTag int32
	affine    []float64
	// (dependent node, master node) pairs
	nodePairs [][2]mesh.NodeID
}

type curveSample struct {
	x, y, z, u float64
}

type curveParametrization struct {
	tag     int32
	samples []curveSample
}

type surfaceSample struct {
	x, y, z, u, v float64
	box           boundingBox // curvature bounds, redundant per node
}

type surfaceParametrization struct {
	tag       int32
	samples   []surfaceSample
	triangles [][3]int32
}

type parametrizations4 struct {
	curves   []curveParametrization
	surfaces []surfaceParametrization
}
