package scclust

// SortIndex is the bucket-sorted inwards-count permutation of §4.C: four
// parallel arrays supporting O(1) amortised DecrementInSort under a moving
// cursor. When the sort is built with makeIndices=false, InwardsCount and
// BucketIndex are nil ("frozen" — the sort is still valid but cannot be
// live-updated).
type SortIndex struct {
	InwardsCount   []PointIndex
	SortedVertices []PointIndex
	VertexIndex    []int // position of v within SortedVertices
	BucketIndex    []int // position of bucket k's first element within SortedVertices
	Stable         bool
}

// SortByInwards computes the in-degree of every vertex of g and bucket-sorts
// SortedVertices by it. See §4.C steps 1-4.
func SortByInwards(g *Digraph, makeIndices bool, stable bool) *SortIndex {
	vertices := g.Vertices
	inwardsCount := make([]PointIndex, vertices)
	total := g.TailPtr[vertices]
	for _, a := range g.Head[:total] {
		inwardsCount[a]++
	}

	var maxK PointIndex
	for _, c := range inwardsCount {
		if c > maxK {
			maxK = c
		}
	}

	bucketCount := make([]int, maxK+1)
	for _, c := range inwardsCount {
		bucketCount[c]++
	}

	bucketIndex := make([]int, maxK+1)
	bucketIndex[0] = bucketCount[0]
	for b := 1; b <= int(maxK); b++ {
		bucketIndex[b] = bucketIndex[b-1] + bucketCount[b]
	}

	sortedVertices := make([]PointIndex, vertices)
	var vertexIndex []int
	if makeIndices {
		vertexIndex = make([]int, vertices)
	}

	for v := vertices - 1; v >= 0; v-- {
		k := inwardsCount[v]
		bucketIndex[k]--
		pos := bucketIndex[k]
		sortedVertices[pos] = PointIndex(v)
		if makeIndices {
			vertexIndex[v] = pos
		}
	}

	si := &SortIndex{SortedVertices: sortedVertices, Stable: stable}
	if makeIndices {
		si.InwardsCount = inwardsCount
		si.BucketIndex = bucketIndex
		si.VertexIndex = vertexIndex
	}
	return si
}

// DecrementInSort moves v from its current bucket to the one below, keeping
// all four SortIndex invariants intact under the moving cursor: positions
// at or before cursor are already finalised by the scan and must not be
// reordered into the unvisited region. See §4.C "decrement_in_sort".
func (si *SortIndex) DecrementInSort(v PointIndex, cursor int) {
	from := si.VertexIndex[v]
	k := si.InwardsCount[v]
	to := si.BucketIndex[k]
	if to <= cursor {
		to = cursor + 1
		si.BucketIndex[k-1] = to
	}

	si.BucketIndex[k] = to + 1
	si.InwardsCount[v]--

	moved := si.SortedVertices[to]
	si.SortedVertices[from] = moved
	si.SortedVertices[to] = v
	si.VertexIndex[moved] = from
	si.VertexIndex[v] = to

	if si.Stable {
		// Re-sort the bucket v just left (positions to+1..from), then the
		// bucket v just entered (positions newStart..to), each by a single
		// insertion of the element that moved, matching the reference's
		// iscc_fs_debug_bucket_sort.
		if to != from {
			si.insertAscending(to+1, from)
		}
		newK := si.InwardsCount[v]
		newStart := si.BucketIndex[newK]
		if newStart <= cursor {
			newStart = cursor + 1
			si.BucketIndex[newK] = newStart
		}
		si.insertAscending(newStart, to)
	}
}

// insertAscending takes the value at SortedVertices[pos] and bubbles it
// down to its sorted position within [start, pos], shifting larger IDs up.
func (si *SortIndex) insertAscending(start, pos int) {
	v := si.SortedVertices[pos]
	for pos > start && si.SortedVertices[pos-1] > v {
		si.SortedVertices[pos] = si.SortedVertices[pos-1]
		si.VertexIndex[si.SortedVertices[pos]] = pos
		pos--
	}
	si.SortedVertices[pos] = v
	si.VertexIndex[v] = pos
}
