package scclust

// SeedResult is the dynamically grown seed list of §3's "SeedResult": a
// []PointIndex that grows by cap + cap/8 + 1024 each time it fills, capped
// at CMAX entries (the maximum number of clusters representable).
type SeedResult struct {
	Seeds []PointIndex
}

func newSeedResult() *SeedResult {
	return &SeedResult{Seeds: make([]PointIndex, 0, 1024)}
}

func (sr *SeedResult) add(s PointIndex) error {
	if ArcIndex(len(sr.Seeds)) == ArcIndex(CMAX) {
		return errTooLargeProblem("too many clusters: adjust ClusterLabel's width")
	}
	if len(sr.Seeds) == cap(sr.Seeds) {
		newCap := uint64(cap(sr.Seeds)) + uint64(cap(sr.Seeds))/8 + 1024
		if newCap > uint64(CMAX) {
			newCap = uint64(CMAX)
		}
		grown := make([]PointIndex, len(sr.Seeds), newCap)
		copy(grown, sr.Seeds)
		sr.Seeds = grown
	}
	sr.Seeds = append(sr.Seeds, s)
	return nil
}

// FindSeeds runs one of the six seed-selection heuristics of §4.D over nng
// and returns the chosen seeds. nng must be a valid, non-empty digraph with
// more than one vertex.
func FindSeeds(nng *Digraph, method SeedMethod, stable bool) (*SeedResult, error) {
	if !nng.IsValid() || nng.IsEmpty() {
		return nil, errInvalidInput("FindSeeds requires a valid, non-empty NNG")
	}
	if nng.Vertices <= 1 {
		return nil, errInvalidInput("FindSeeds requires more than one vertex")
	}

	switch method {
	case SeedLexical:
		return findSeedsLexical(nng)
	case SeedInwardsOrder:
		return findSeedsInwards(nng, false, stable)
	case SeedInwardsUpdating:
		return findSeedsInwards(nng, true, stable)
	case SeedInwardsAltUpdating:
		return findSeedsInwardsAlt(nng, stable)
	case SeedExclusionOrder:
		return findSeedsExclusion(nng, false, stable)
	case SeedExclusionUpdating:
		return findSeedsExclusion(nng, true, stable)
	default:
		return nil, errInvalidInput("unknown seed method")
	}
}

// checkNeighborMarks reports whether v can become a seed: unmarked, with a
// non-empty out-neighborhood, none of whose members are marked.
func checkNeighborMarks(v PointIndex, nng *Digraph, marks []bool) bool {
	if marks[v] {
		return false
	}
	out := nng.Out(v)
	if len(out) == 0 {
		return false
	}
	for _, x := range out {
		if marks[x] {
			return false
		}
	}
	return true
}

// markSeedNeighbors marks every out-neighbor of s, then s itself last so
// that a self-loop in s's out-neighborhood does not abort the marking.
func markSeedNeighbors(s PointIndex, nng *Digraph, marks []bool) {
	for _, x := range nng.Out(s) {
		marks[x] = true
	}
	marks[s] = true
}

func findSeedsLexical(nng *Digraph) (*SeedResult, error) {
	marks := make([]bool, nng.Vertices)
	out := newSeedResult()
	for v := 0; v < nng.Vertices; v++ {
		pv := PointIndex(v)
		if checkNeighborMarks(pv, nng, marks) {
			if err := out.add(pv); err != nil {
				return nil, err
			}
			markSeedNeighbors(pv, nng, marks)
		}
	}
	return out, nil
}

func findSeedsInwards(nng *Digraph, updating bool, stable bool) (*SeedResult, error) {
	sort := SortByInwards(nng, updating, stable)
	marks := make([]bool, nng.Vertices)
	out := newSeedResult()

	for cursor, v := range sort.SortedVertices {
		if checkNeighborMarks(v, nng, marks) {
			if err := out.add(v); err != nil {
				return nil, err
			}
			markSeedNeighbors(v, nng, marks)

			if updating {
				for _, a := range nng.Out(v) {
					for _, b := range nng.Out(a) {
						if !marks[b] && cursor < sort.VertexIndex[b] && nng.OutDegree(b) != 0 {
							sort.DecrementInSort(b, cursor)
						}
					}
				}
			}
		}
	}
	return out, nil
}

func findSeedsInwardsAlt(nng *Digraph, stable bool) (*SeedResult, error) {
	sort := SortByInwards(nng, true, stable)
	marks := make([]bool, nng.Vertices)
	out := newSeedResult()

	for cursor, v := range sort.SortedVertices {
		if checkNeighborMarks(v, nng, marks) {
			if err := out.add(v); err != nil {
				return nil, err
			}
			markSeedNeighbors(v, nng, marks)

			for _, a := range nng.Out(v) {
				if cursor < sort.VertexIndex[a] {
					for _, b := range nng.Out(a) {
						if !marks[b] && cursor < sort.VertexIndex[b] && nng.OutDegree(b) != 0 {
							sort.DecrementInSort(b, cursor)
						}
					}
				}
			}
		} else if !marks[v] {
			for _, a := range nng.Out(v) {
				if !marks[a] && cursor < sort.VertexIndex[a] && nng.OutDegree(a) != 0 {
					sort.DecrementInSort(a, cursor)
				}
			}
		}
	}
	return out, nil
}

// exclusionGraph builds X = (nng ∪ (nng · nngᵗ, forceLoops=true)) with the
// rows of vertices already excluded (empty out-degree in nng) dropped. See
// §4.D "Exclusion-order / exclusion-updating". When every vertex has a
// non-empty out-neighborhood there is nothing to drop, so the delete filter
// is skipped entirely (spec §9's resolution of the "all kept" sentinel).
func exclusionGraph(nng *Digraph) (*Digraph, error) {
	transpose, err := TransposeDigraph(nng)
	if err != nil {
		return nil, err
	}
	product, err := AdjacencyProductDigraphs(nng, transpose, true, false)
	transpose.Free()
	if err != nil {
		return nil, err
	}

	notExcluded := make([]bool, nng.Vertices)
	allKept := true
	for v := 0; v < nng.Vertices; v++ {
		notExcluded[v] = nng.OutDegree(PointIndex(v)) != 0
		if !notExcluded[v] {
			allKept = false
		}
	}

	var out *Digraph
	if allKept {
		out, err = UnionDigraphs([]*Digraph{nng, product})
	} else {
		out, err = UnionAndDeleteDigraphs([]*Digraph{nng, product}, notExcluded)
	}
	product.Free()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findSeedsExclusion(nng *Digraph, updating bool, stable bool) (*SeedResult, error) {
	notExcluded := make([]bool, nng.Vertices)
	for v := 0; v < nng.Vertices; v++ {
		notExcluded[v] = nng.OutDegree(PointIndex(v)) != 0
	}

	ex, err := exclusionGraph(nng)
	if err != nil {
		return nil, err
	}
	defer ex.Free()

	sort := SortByInwards(ex, updating, stable)
	out := newSeedResult()

	for cursor, v := range sort.SortedVertices {
		if !notExcluded[v] {
			continue
		}
		if err := out.add(v); err != nil {
			return nil, err
		}
		notExcluded[v] = false

		if !updating {
			for _, x := range ex.Out(v) {
				notExcluded[x] = false
			}
			continue
		}

		// Two-pass scratch reuse: row v of ex will never be revisited, so
		// overwrite ex.Head[tail_ptr[v]..] with the still-not-excluded
		// neighbors, then decrement their neighbors-of-neighbors.
		start, stop := ex.TailPtr[v], ex.TailPtr[v+1]
		writeIdx := start
		for i := start; i < stop; i++ {
			x := ex.Head[i]
			if notExcluded[x] {
				ex.Head[writeIdx] = x
				writeIdx++
			}
			notExcluded[x] = false
		}

		for i := start; i < writeIdx; i++ {
			for _, y := range ex.Out(ex.Head[i]) {
				if notExcluded[y] {
					sort.DecrementInSort(y, cursor)
				}
			}
		}
	}
	return out, nil
}
