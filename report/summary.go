package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/goccy/go-json"

	"github.com/notargets/gomsh/mesh"
)

// Summary is a serializable digest of a decoded mesh. It is written by
// "gomsh inspect" and read back by "gomsh validate --expect".
type Summary struct {
	File           string             `json:"File"`
	Format         string             `json:"Format,omitempty"`
	Nodes          int                `json:"Nodes"`
	Elements       int                `json:"Elements"`
	ElementTypes   map[string]int     `json:"ElementTypes,omitempty"`
	Dimension      int                `json:"Dimension"`
	BoundingBox    [2][3]float64      `json:"BoundingBox"`
	Measure        map[string]float64 `json:"Measure,omitempty"` // Length, Area, Volume
	BoundaryFacets int                `json:"BoundaryFacets"`
	Orphans        int                `json:"Orphans"`
	MaxValence     int                `json:"MaxValence"`
}

var measureLabels = map[int]string{1: "Length", 2: "Area", 3: "Volume"}

// NewSummary computes the summary of m, name is recorded as the file name
func NewSummary(name string, m *mesh.Mesh) *Summary {
	st := m.Statistics()
	s := &Summary{
		File:           name,
		Nodes:          st.NumNodes,
		Elements:       st.NumElements,
		ElementTypes:   make(map[string]int, len(st.TypeCounts)),
		Dimension:      st.Dimension,
		BoundingBox:    st.BoundingBox,
		Measure:        make(map[string]float64),
		BoundaryFacets: st.BoundaryFacets,
		Orphans:        st.Orphans,
		MaxValence:     st.MaxValence,
	}
	if f, ok := m.Format(); ok {
		s.Format = f.String()
	}
	for t, n := range st.TypeCounts {
		s.ElementTypes[t.String()] = n
	}
	for d, meas := range st.Measure {
		if label, ok := measureLabels[d]; ok {
			s.Measure[label] = meas
		}
	}
	return s
}

// Marshal renders the summary as "yaml" or "json"
func (s *Summary) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(s)
	case "json":
		return json.MarshalIndent(s, "", "  ")
	default:
		return nil, fmt.Errorf("unknown summary format %q, expected yaml or json", format)
	}
}

// Parse reads a summary written by Marshal in either format
func Parse(data []byte) (*Summary, error) {
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Print writes the summary as a plain text table
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= File\n", s.File)
	if s.Format != "" {
		fmt.Fprintf(w, "[%s]\t\t= Format\n", s.Format)
	}
	fmt.Fprintf(w, "%d\t\t\t= Nodes\n", s.Nodes)
	fmt.Fprintf(w, "%d\t\t\t= Elements\n", s.Elements)
	for _, key := range sortedKeys(s.ElementTypes) {
		fmt.Fprintf(w, "ElementTypes[%s] = %d\n", key, s.ElementTypes[key])
	}
	fmt.Fprintf(w, "%d\t\t\t= Dimension\n", s.Dimension)
	fmt.Fprintf(w, "%v\t= BoundingBox\n", s.BoundingBox)
	for _, key := range sortedKeys(s.Measure) {
		fmt.Fprintf(w, "%8.5g\t\t= %s\n", s.Measure[key], key)
	}
	fmt.Fprintf(w, "%d\t\t\t= Boundary Facets\n", s.BoundaryFacets)
	fmt.Fprintf(w, "%d\t\t\t= Orphan Nodes\n", s.Orphans)
	fmt.Fprintf(w, "%d\t\t\t= Max Valence\n", s.MaxValence)
}

// Compare lists the counts of s that differ from expected. The file name,
// geometry and valence are not compared; an empty expected format matches
// any format.
func (s *Summary) Compare(expected *Summary) (diffs []string) {
	check := func(name string, got, want int) {
		if got != want {
			diffs = append(diffs, fmt.Sprintf("%s: got %d, expected %d", name, got, want))
		}
	}
	if expected.Format != "" && expected.Format != s.Format {
		diffs = append(diffs, fmt.Sprintf("Format: got %q, expected %q", s.Format, expected.Format))
	}
	check("Nodes", s.Nodes, expected.Nodes)
	check("Elements", s.Elements, expected.Elements)

	types := make(map[string]int)
	for k := range s.ElementTypes {
		types[k] = 0
	}
	for k := range expected.ElementTypes {
		types[k] = 0
	}
	for _, key := range sortedKeys(types) {
		check("ElementTypes["+key+"]", s.ElementTypes[key], expected.ElementTypes[key])
	}

	check("BoundaryFacets", s.BoundaryFacets, expected.BoundaryFacets)
	check("Orphans", s.Orphans, expected.Orphans)
	return
}
