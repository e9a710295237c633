package readers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/notargets/gomsh/mesh"
)

// Helper function to create temporary test files
func createTempMshFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.msh")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

// diskV1 is an 8 electrode disk meshed by gmsh and saved with -format msh1
const diskV1 = `$NOD
13
1 0 0 0
2 0 1 0
3 0.7071067811865475 0.7071067811865476 0
4 1 6.123233995736766e-17 0
5 0.7071067811865476 -0.7071067811865475 0
6 1.224646799147353e-16 -1 0
7 -0.7071067811865475 -0.7071067811865477 0
8 -1 -1.83697019872103e-16 0
9 -0.7071067811865477 0.7071067811865474 0
10 -0.1113264466680611 -0.2687658173968382 0
11 0.150474547846242 0.3632776942023567 0
12 0.4510798725986296 -0.1820395192602642 0
13 -0.447683015284127 0.1902402582583829 -0
$ENDNOD
$ELM
31
1 15 0 1 1 1
2 15 0 2 1 2
3 15 0 3 1 3
4 15 0 4 1 4
5 15 0 5 1 5
6 15 0 6 1 6
7 15 0 7 1 7
8 15 0 8 1 8
9 15 0 9 1 9
10 1 0 1 2 2 3
11 1 0 2 2 3 4
12 1 0 3 2 4 5
13 1 0 4 2 5 6
14 1 0 5 2 6 7
15 1 0 6 2 7 8
16 1 0 7 2 8 9
17 1 0 8 2 9 2
18 2 0 6 3 9 2 13
19 2 0 6 3 3 4 12
20 2 0 6 3 5 6 12
21 2 0 6 3 6 10 12
22 2 0 6 3 7 8 13
23 2 0 6 3 10 7 13
24 2 0 6 3 2 11 13
25 2 0 6 3 11 3 12
26 2 0 6 3 6 7 10
27 2 0 6 3 2 3 11
28 2 0 6 3 4 5 12
29 2 0 6 3 8 9 13
30 2 0 6 3 11 10 13
31 2 0 6 3 10 11 12
$ENDELM`

// diskV22 is the same disk saved with -format msh22
const diskV22 = `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
13
1 0 0 0
2 0 1 0
3 0.7071067811865475 0.7071067811865476 0
4 1 6.123233995736766e-17 0
5 0.7071067811865476 -0.7071067811865475 0
6 1.224646799147353e-16 -1 0
7 -0.7071067811865475 -0.7071067811865477 0
8 -1 -1.83697019872103e-16 0
9 -0.7071067811865477 0.7071067811865474 0
10 -0.1113264466680611 -0.2687658173968382 0
11 0.150474547846242 0.3632776942023567 0
12 0.4510798725986296 -0.1820395192602642 0
13 -0.447683015284127 0.1902402582583829 -0
$EndNodes
$Elements
31
1 15 2 0 1 1
2 15 2 0 2 2
3 15 2 0 3 3
4 15 2 0 4 4
5 15 2 0 5 5
6 15 2 0 6 6
7 15 2 0 7 7
8 15 2 0 8 8
9 15 2 0 9 9
10 1 2 0 1 2 3
11 1 2 0 2 3 4
12 1 2 0 3 4 5
13 1 2 0 4 5 6
14 1 2 0 5 6 7
15 1 2 0 6 7 8
16 1 2 0 7 8 9
17 1 2 0 8 9 2
18 2 2 0 6 9 2 13
19 2 2 0 6 3 4 12
20 2 2 0 6 5 6 12
21 2 2 0 6 6 10 12
22 2 2 0 6 7 8 13
23 2 2 0 6 10 7 13
24 2 2 0 6 2 11 13
25 2 2 0 6 11 3 12
26 2 2 0 6 6 7 10
27 2 2 0 6 2 3 11
28 2 2 0 6 4 5 12
29 2 2 0 6 8 9 13
30 2 2 0 6 11 10 13
31 2 2 0 6 10 11 12
$EndElements`

// GmshTestBuilder writes a Mesh back out in each supported grammar
type GmshTestBuilder struct {
	m *mesh.Mesh
}

func NewGmshTestBuilder(m *mesh.Mesh) *GmshTestBuilder {
	return &GmshTestBuilder{m: m}
}

var testTypeCodes = map[mesh.ElementType]int{
	mesh.Point1:       15,
	mesh.Line2:        1,
	mesh.Triangle3:    2,
	mesh.Quadrangle4:  3,
	mesh.Tetrahedron4: 4,
	mesh.Hexahedron8:  5,
	mesh.Prism6:       6,
}

func joinNodes(nodes []mesh.NodeID) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, " ")
}

func (b *GmshTestBuilder) buildNodes(begin, end string) string {
	var lines []string
	lines = append(lines, begin, fmt.Sprint(b.m.NumNodes()))
	for _, id := range b.m.NodeIDs() {
		n, _ := b.m.Node(id)
		lines = append(lines, fmt.Sprintf("%d %v %v %v", id, n.X, n.Y, n.Z))
	}
	lines = append(lines, end)
	return strings.Join(lines, "\n")
}

// BuildV1 creates a $NOD/$ELM file
func (b *GmshTestBuilder) BuildV1() string {
	sections := []string{b.buildNodes("$NOD", "$ENDNOD")}

	lines := []string{"$ELM", fmt.Sprint(b.m.NumElements())}
	for _, id := range b.m.ElementIDs() {
		e, _ := b.m.Element(id)
		lines = append(lines, fmt.Sprintf("%d %d %d %d %d %s", id,
			testTypeCodes[e.Topology.Type], e.Physical, e.Elementary,
			len(e.Topology.Nodes), joinNodes(e.Topology.Nodes)))
	}
	lines = append(lines, "$ENDELM")
	sections = append(sections, strings.Join(lines, "\n"))

	return strings.Join(sections, "\n")
}

// BuildV22 creates a 2.2 file, every element carrying two tags
func (b *GmshTestBuilder) BuildV22() string {
	sections := []string{
		"$MeshFormat\n2.2 0 8\n$EndMeshFormat",
		b.buildNodes("$Nodes", "$EndNodes"),
	}

	lines := []string{"$Elements", fmt.Sprint(b.m.NumElements())}
	for _, id := range b.m.ElementIDs() {
		e, _ := b.m.Element(id)
		lines = append(lines, fmt.Sprintf("%d %d 2 %d %d %s", id,
			testTypeCodes[e.Topology.Type], e.Physical, e.Elementary,
			joinNodes(e.Topology.Nodes)))
	}
	lines = append(lines, "$EndElements")
	sections = append(sections, strings.Join(lines, "\n"))

	return strings.Join(sections, "\n")
}

// BuildV41 creates a 4.1 file with all nodes in one volume block and one
// element block per (physical tag, type) pair, using the physical tag as
// the block tag
func (b *GmshTestBuilder) BuildV41() string {
	sections := []string{"$MeshFormat\n4.1 0 8\n$EndMeshFormat"}

	nodeIDs := b.m.NodeIDs()
	var minNode, maxNode mesh.NodeID
	if len(nodeIDs) > 0 {
		minNode, maxNode = nodeIDs[0], nodeIDs[len(nodeIDs)-1]
	}
	lines := []string{"$Nodes"}
	if len(nodeIDs) == 0 {
		lines = append(lines, "0 0 0 0")
	} else {
		lines = append(lines,
			fmt.Sprintf("1 %d %d %d", len(nodeIDs), minNode, maxNode),
			fmt.Sprintf("3 1 0 %d", len(nodeIDs)))
		for _, id := range nodeIDs {
			lines = append(lines, fmt.Sprint(id))
		}
		for _, id := range nodeIDs {
			n, _ := b.m.Node(id)
			lines = append(lines, fmt.Sprintf("%v %v %v", n.X, n.Y, n.Z))
		}
	}
	lines = append(lines, "$EndNodes")
	sections = append(sections, strings.Join(lines, "\n"))

	type blockKey struct {
		tag mesh.PhysicalTag
		typ mesh.ElementType
	}
	blocks := make(map[blockKey][]mesh.ElementID)
	var keys []blockKey
	elementIDs := b.m.ElementIDs()
	for _, id := range elementIDs {
		e, _ := b.m.Element(id)
		k := blockKey{e.Physical, e.Topology.Type}
		if _, ok := blocks[k]; !ok {
			keys = append(keys, k)
		}
		blocks[k] = append(blocks[k], id)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].tag != keys[j].tag {
			return keys[i].tag < keys[j].tag
		}
		return keys[i].typ < keys[j].typ
	})

	var minElem, maxElem mesh.ElementID
	if len(elementIDs) > 0 {
		minElem, maxElem = elementIDs[0], elementIDs[len(elementIDs)-1]
	}
	lines = []string{"$Elements",
		fmt.Sprintf("%d %d %d %d", len(keys), len(elementIDs), minElem, maxElem)}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%d %d %d %d",
			k.typ.Dimension(), k.tag, testTypeCodes[k.typ], len(blocks[k])))
		for _, id := range blocks[k] {
			e, _ := b.m.Element(id)
			lines = append(lines, fmt.Sprintf("%d %s", id, joinNodes(e.Topology.Nodes)))
		}
	}
	lines = append(lines, "$EndElements")
	sections = append(sections, strings.Join(lines, "\n"))

	return strings.Join(sections, "\n")
}
