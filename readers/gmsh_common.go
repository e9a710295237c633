package readers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/notargets/gomsh/mesh"
)

// Grammar names one of the msh text grammars understood by Decode
type Grammar string

const (
	GrammarV1  Grammar = "v1"
	GrammarV22 Grammar = "v2.2"
	GrammarV41 Grammar = "v4.1"
)

// grammars are tried in this order, the first one that matches wins
var grammars = []struct {
	name   Grammar
	decode func(text string) (*mesh.Mesh, error)
}{
	{GrammarV1, decodeGmsh1},
	{GrammarV22, decodeGmsh22},
	{GrammarV41, func(text string) (*mesh.Mesh, error) {
		m4, err := decodeGmsh4(text)
		if err != nil {
			return nil, err
		}
		return m4.toLegacy(), nil
	}},
}

// Decode decodes an msh text of any supported version into a Mesh
func Decode(text string) (*mesh.Mesh, error) {
	m, _, err := DecodeGrammar(text)
	return m, err
}

// DecodeGrammar is Decode that also reports which grammar matched. A type
// code outside the supported table stops the search at once; otherwise the
// error is a *DecodeError holding the failure of every grammar.
func DecodeGrammar(text string) (*mesh.Mesh, Grammar, error) {
	var attempts []*ParseError
	for _, g := range grammars {
		m, err := g.decode(text)
		if err == nil {
			return m, g.name, nil
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			return nil, "", err
		}
		if pe.Kind == UnsupportedTopology {
			return nil, g.name, pe
		}
		attempts = append(attempts, pe)
	}
	return nil, "", newDecodeError(attempts)
}

// DecodeReader buffers r fully and decodes it
func DecodeReader(r io.Reader) (*mesh.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading msh input: %w", err)
	}
	return Decode(string(b))
}

// ReadGmsh reads and decodes an msh file of any supported version
func ReadGmsh(filename string) (*mesh.Mesh, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	m, err := Decode(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}
