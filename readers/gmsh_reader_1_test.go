package readers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomsh/mesh"
)

func TestDecodeGmsh1Disk(t *testing.T) {
	m, grammar, err := DecodeGrammar(diskV1)
	require.NoError(t, err)
	assert.Equal(t, GrammarV1, grammar)

	assert.Equal(t, 13, m.NumNodes())
	assert.Equal(t, 31, m.NumElements())

	_, ok := m.Format()
	assert.False(t, ok, "v1 meshes carry no format header")

	n, ok := m.Node(1)
	require.True(t, ok)
	assert.Equal(t, mesh.Node{X: 0, Y: 0, Z: 0}, n)

	n, ok = m.Node(3)
	require.True(t, ok)
	assert.Equal(t, mesh.Node{X: 0.7071067811865475, Y: 0.7071067811865476, Z: 0}, n)

	e, ok := m.Element(18)
	require.True(t, ok)
	assert.Equal(t, mesh.Element{
		Physical:   0,
		Elementary: 6,
		Topology:   mesh.NewTriangle3(9, 2, 13),
	}, e)

	e, ok = m.Element(1)
	require.True(t, ok)
	assert.Equal(t, mesh.NewPoint1(1), e.Topology)
	assert.Equal(t, mesh.ElementaryTag(1), e.Elementary)

	e, ok = m.Element(17)
	require.True(t, ok)
	assert.Equal(t, mesh.NewLine2(9, 2), e.Topology)
	assert.Equal(t, mesh.ElementaryTag(8), e.Elementary)

	// Ids are the literal ids of the text
	for id := mesh.NodeID(1); id <= 13; id++ {
		_, ok := m.Node(id)
		assert.True(t, ok, "node %d", id)
	}
	for id := mesh.ElementID(1); id <= 31; id++ {
		_, ok := m.Element(id)
		assert.True(t, ok, "element %d", id)
	}
}

func TestDecodeGmsh1FloatEncodedFields(t *testing.T) {
	content := `$NOD
2.0
1.0 0 0 0
2e0 1.5 0 0
$ENDNOD
$ELM
1.9
7.0 1 0.0 3.0 2 1.0 2.0
$ENDELM`

	m, err := Decode(content)
	require.NoError(t, err)

	_, ok := m.Node(1)
	assert.True(t, ok)
	n, ok := m.Node(2)
	require.True(t, ok)
	assert.Equal(t, 1.5, n.X)

	// 1.9 elements truncates to one
	require.Equal(t, 1, m.NumElements())
	e, ok := m.Element(7)
	require.True(t, ok)
	assert.Equal(t, mesh.Element{Physical: 0, Elementary: 3, Topology: mesh.NewLine2(1, 2)}, e)
}

func TestDecodeGmsh1NegativeCountsSaturate(t *testing.T) {
	content := "$NOD\n-5\n$ENDNOD\n$ELM\nnan\n$ENDELM"
	m, err := Decode(content)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumNodes())
	assert.Equal(t, 0, m.NumElements())
}

func TestDecodeGmsh1Separators(t *testing.T) {
	t.Run("FieldsWithoutBlanks", func(t *testing.T) {
		// zero or more blanks between fields: "0.5-0.5" is two numbers
		content := "$NOD\n1\n1 0.5-0.5\t2\n$ENDNOD\n$ELM\n1\n1 15 0 1 1 1\n$ENDELM"
		m, err := Decode(content)
		require.NoError(t, err)
		n, _ := m.Node(1)
		assert.Equal(t, mesh.Node{X: 0.5, Y: -0.5, Z: 2}, n)
	})

	t.Run("CRLF", func(t *testing.T) {
		content := strings.ReplaceAll(diskV1, "\n", "\r\n")
		m, err := Decode(content)
		require.NoError(t, err)
		assert.Equal(t, 13, m.NumNodes())
		assert.Equal(t, 31, m.NumElements())
	})

	t.Run("TrailingBlanks", func(t *testing.T) {
		content := "$NOD  \n1 \n1 0 0 0  \n$ENDNOD\n$ELM\n1\n1 15 0 1 1 1 \n$ENDELM"
		m, err := Decode(content)
		require.NoError(t, err)
		assert.Equal(t, 1, m.NumNodes())
		assert.Equal(t, 1, m.NumElements())
	})
}

func TestDecodeGmsh1AllElementTypes(t *testing.T) {
	content := `$NOD
8
1 0 0 0
2 1 0 0
3 1 1 0
4 0 1 0
5 0 0 1
6 1 0 1
7 1 1 1
8 0 1 1
$ENDNOD
$ELM
6
1 15 1 1 1 1
2 1 1 1 2 1 2
3 2 1 1 3 1 2 3
4 3 1 1 4 1 2 3 4
5 4 1 1 4 1 2 4 5
6 5 1 1 8 1 2 3 4 5 6 7 8
$ENDELM`

	m, err := Decode(content)
	require.NoError(t, err)

	expected := map[mesh.ElementID]mesh.Topology{
		1: mesh.NewPoint1(1),
		2: mesh.NewLine2(1, 2),
		3: mesh.NewTriangle3(1, 2, 3),
		4: mesh.NewQuadrangle4(1, 2, 3, 4),
		5: mesh.NewTetrahedron4(1, 2, 4, 5),
		6: mesh.NewHexahedron8(1, 2, 3, 4, 5, 6, 7, 8),
	}
	for id, topo := range expected {
		e, ok := m.Element(id)
		require.True(t, ok, "element %d", id)
		assert.Equal(t, topo, e.Topology, "element %d", id)
	}
}

func TestDecodeGmsh1UnsupportedTopology(t *testing.T) {
	content := `$NOD
1
1 0 0 0
$ENDNOD
$ELM
1
1 7 0 1 5 1 1 1 1 1
$ENDELM`

	m, err := Decode(content)
	assert.Nil(t, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTopology))
	assert.False(t, errors.Is(err, ErrNoGrammarMatched), "no other grammar is tried")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, UnsupportedTopology, pe.Kind)
	assert.Equal(t, "v1", pe.Grammar)
	assert.Equal(t, 7, pe.Line)
	assert.Equal(t, 3, pe.Column, "reported at the type code")
}

func TestDecodeGmsh1ElementCountMismatch(t *testing.T) {
	// fewer records than declared
	content := "$NOD\n2\n1 0 0 0\n$ENDNOD\n$ELM\n0\n$ENDELM"
	_, err := Decode(content)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Len(t, de.Attempts, 3)
	assert.Equal(t, "v1", de.Furthest.Grammar)
	assert.Equal(t, 4, de.Furthest.Line)
}
