package mesh

import (
	"sort"

	"github.com/james-bowman/sparse"
)

// Incidence is the element to node incidence matrix of a mesh. Row i
// corresponds to ElementIDs[i], column j to NodeIDs[j]; an entry of 1 marks
// that the element references the node.
type Incidence struct {
	EToN       *sparse.CSR
	ElementIDs []ElementID
	NodeIDs    []NodeID
	column     map[NodeID]int
	valence    []int
}

// Incidence builds the element to node incidence matrix. Node ids that are
// referenced by an element but absent from the node map are skipped.
func (m *Mesh) Incidence() *Incidence {
	inc := &Incidence{
		ElementIDs: m.ElementIDs(),
		NodeIDs:    m.NodeIDs(),
		column:     make(map[NodeID]int, len(m.nodes)),
	}
	for j, id := range inc.NodeIDs {
		inc.column[id] = j
	}
	inc.valence = make([]int, len(inc.NodeIDs))
	if len(inc.ElementIDs) == 0 || len(inc.NodeIDs) == 0 {
		return inc
	}

	SpEToN_Tmp := sparse.NewDOK(len(inc.ElementIDs), len(inc.NodeIDs))
	for i, eid := range inc.ElementIDs {
		for _, nid := range m.elements[eid].Topology.Nodes {
			if j, ok := inc.column[nid]; ok {
				SpEToN_Tmp.Set(i, j, 1)
			}
		}
	}
	inc.EToN = SpEToN_Tmp.ToCSR()

	raw := inc.EToN.RawMatrix()
	for _, j := range raw.Ind[:raw.Indptr[raw.I]] {
		inc.valence[j]++
	}
	return inc
}

// Valence returns the number of elements referencing the node
func (inc *Incidence) Valence(id NodeID) int {
	j, ok := inc.column[id]
	if !ok {
		return 0
	}
	return inc.valence[j]
}

// MaxValence returns the largest number of elements sharing a single node
func (inc *Incidence) MaxValence() (max int) {
	for _, v := range inc.valence {
		if v > max {
			max = v
		}
	}
	return
}

// Orphans returns the nodes that no element references, in ascending order
func (inc *Incidence) Orphans() (orphans []NodeID) {
	for j, v := range inc.valence {
		if v == 0 {
			orphans = append(orphans, inc.NodeIDs[j])
		}
	}
	return
}

// ElementNodes returns the columns set in the row of the element, as node
// ids in ascending order
func (inc *Incidence) ElementNodes(id ElementID) (nodes []NodeID) {
	if inc.EToN == nil {
		return
	}
	i := sort.Search(len(inc.ElementIDs), func(k int) bool { return inc.ElementIDs[k] >= id })
	if i == len(inc.ElementIDs) || inc.ElementIDs[i] != id {
		return
	}
	raw := inc.EToN.RawMatrix()
	for _, j := range raw.Ind[raw.Indptr[i]:raw.Indptr[i+1]] {
		nodes = append(nodes, inc.NodeIDs[j])
	}
	sort.Slice(nodes, func(a, b int) bool { return nodes[a] < nodes[b] })
	return
}
