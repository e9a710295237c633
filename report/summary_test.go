package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomsh/mesh"
)

// unit square split in two triangles, one boundary line and an orphan node
func squareMesh() *mesh.Mesh {
	nodes := map[mesh.NodeID]mesh.Node{
		1: {X: 0, Y: 0, Z: 0},
		2: {X: 1, Y: 0, Z: 0},
		3: {X: 1, Y: 1, Z: 0},
		4: {X: 0, Y: 1, Z: 0},
		5: {X: 2, Y: 2, Z: 0},
	}
	elements := map[mesh.ElementID]mesh.Element{
		1: {Physical: 1, Elementary: 1, Topology: mesh.NewTriangle3(1, 2, 3)},
		2: {Physical: 1, Elementary: 1, Topology: mesh.NewTriangle3(1, 3, 4)},
		3: {Physical: 2, Elementary: 1, Topology: mesh.NewLine2(1, 2)},
	}
	return mesh.New(&mesh.Format{Version: 2.2, FileType: 0, DataSize: 8}, nodes, elements)
}

func TestNewSummary(t *testing.T) {
	s := NewSummary("square.msh", squareMesh())

	assert.Equal(t, &Summary{
		File:           "square.msh",
		Format:         "2.2 0 8",
		Nodes:          5,
		Elements:       3,
		ElementTypes:   map[string]int{"Triangle3": 2, "Line2": 1},
		Dimension:      2,
		BoundingBox:    [2][3]float64{{0, 0, 0}, {2, 2, 0}},
		Measure:        map[string]float64{"Area": 1, "Length": 1},
		BoundaryFacets: 4,
		Orphans:        1,
		MaxValence:     3,
	}, s)
}

func TestSummaryRoundTrip(t *testing.T) {
	s := NewSummary("square.msh", squareMesh())

	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			data, err := s.Marshal(format)
			require.NoError(t, err)

			parsed, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
			assert.Empty(t, parsed.Compare(s))
		})
	}

	data, err := s.Marshal("yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nodes: 5")

	_, err = s.Marshal("xml")
	assert.Error(t, err)
}

func TestParseHandWrittenSummary(t *testing.T) {
	data := []byte(`
Nodes: 13
Elements: 31
ElementTypes:
  Point1: 9
  Line2: 8
  Triangle3: 14
`)
	s, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 13, s.Nodes)
	assert.Equal(t, 14, s.ElementTypes["Triangle3"])
	assert.Empty(t, s.Format)

	_, err = Parse([]byte("Nodes: [1"))
	assert.Error(t, err)
}

func TestSummaryCompare(t *testing.T) {
	s := NewSummary("square.msh", squareMesh())

	expected := *s
	expected.File = "other.msh"
	expected.MaxValence = 12
	expected.Format = ""
	assert.Empty(t, s.Compare(&expected), "file name, valence and an empty format are not compared")

	expected.Format = "4.1 0 8"
	expected.Nodes = 6
	expected.ElementTypes = map[string]int{"Triangle3": 2, "Line2": 1, "Quadrangle4": 1}
	assert.Equal(t, []string{
		`Format: got "2.2 0 8", expected "4.1 0 8"`,
		"Nodes: got 5, expected 6",
		"ElementTypes[Quadrangle4]: got 0, expected 1",
	}, s.Compare(&expected))
}

func TestSummaryPrint(t *testing.T) {
	var buf bytes.Buffer
	NewSummary("square.msh", squareMesh()).Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "\"square.msh\"\t\t= File")
	assert.Contains(t, out, "5\t\t\t= Nodes")
	assert.Contains(t, out, "ElementTypes[Triangle3] = 2")
	assert.Contains(t, out, "= Area")
	assert.Contains(t, out, "1\t\t\t= Orphan Nodes")
}
