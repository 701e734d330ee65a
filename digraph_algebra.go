package scclust

// This file implements §4.B's digraph algebra. Union, union-and-delete,
// difference and adjacency product follow the same two-pass protocol:
// compute a greedy upper bound on the output arc count, try to allocate it,
// run the operator, then shrink to the exact count. If the greedy
// allocation fails, a second dry-run pass computes the exact count without
// writing and retries the allocation once. Transpose allocates exactly the
// input's arc count in one step, and DeleteLoopsInPlace compacts its input
// without allocating.

// newRowMarkers allocates the scratch array shared by every algebra
// operator, filled with the PNA sentinel.
func newRowMarkers(n int) []PointIndex {
	m := make([]PointIndex, n)
	for i := range m {
		m[i] = PNA
	}
	return m
}

// UnionDigraphs computes the union of dgs, all of which must share the same
// vertex count. See §4.B "Union".
func UnionDigraphs(dgs []*Digraph) (*Digraph, error) {
	if len(dgs) == 0 {
		return nil, errInvalidInput("union requires at least one digraph")
	}
	vertices := dgs[0].Vertices

	var greedy ArcIndex
	for _, dg := range dgs {
		greedy += dg.TailPtr[vertices]
	}

	markers := newRowMarkers(vertices)

	out, err := InitDigraph(vertices, greedy)
	if err != nil {
		exact := doUnion(vertices, dgs, markers, false, nil, nil)
		out, err = InitDigraph(vertices, exact)
		if err != nil {
			return nil, err
		}
	}

	written := doUnion(vertices, dgs, markers, true, out.TailPtr, out.Head)
	if err := out.ChangeArcStorage(written); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}

func doUnion(vertices int, dgs []*Digraph, markers []PointIndex, write bool, outTailPtr []ArcIndex, outHead []PointIndex) ArcIndex {
	var counter ArcIndex
	for v := range markers {
		markers[v] = PNA
	}
	if write {
		outTailPtr[0] = 0
	}
	for v := 0; v < vertices; v++ {
		markers[v] = PointIndex(v)
		for _, dg := range dgs {
			for _, x := range dg.Out(PointIndex(v)) {
				if markers[x] != PointIndex(v) {
					markers[x] = PointIndex(v)
					if write {
						outHead[counter] = x
					}
					counter++
				}
			}
		}
		if write {
			outTailPtr[v+1] = counter
		}
	}
	return counter
}

// UnionAndDeleteDigraphs is UnionDigraphs restricted to rows whose
// tailsToKeep[v] is true; other rows emit nothing but TailPtr still
// advances monotonically. See §4.B "Union-and-delete".
func UnionAndDeleteDigraphs(dgs []*Digraph, tailsToKeep []bool) (*Digraph, error) {
	if len(dgs) == 0 {
		return nil, errInvalidInput("union-and-delete requires at least one digraph")
	}
	vertices := dgs[0].Vertices
	if len(tailsToKeep) != vertices {
		return nil, errInvalidInput("tailsToKeep length must equal vertex count")
	}

	var greedy ArcIndex
	for _, dg := range dgs {
		greedy += dg.TailPtr[vertices]
	}

	markers := newRowMarkers(vertices)

	out, err := InitDigraph(vertices, greedy)
	if err != nil {
		exact := doUnionAndDelete(vertices, dgs, markers, tailsToKeep, false, nil, nil)
		out, err = InitDigraph(vertices, exact)
		if err != nil {
			return nil, err
		}
	}

	written := doUnionAndDelete(vertices, dgs, markers, tailsToKeep, true, out.TailPtr, out.Head)
	if err := out.ChangeArcStorage(written); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}

func doUnionAndDelete(vertices int, dgs []*Digraph, markers []PointIndex, tailsToKeep []bool, write bool, outTailPtr []ArcIndex, outHead []PointIndex) ArcIndex {
	var counter ArcIndex
	for v := range markers {
		markers[v] = PNA
	}
	if write {
		outTailPtr[0] = 0
	}
	for v := 0; v < vertices; v++ {
		if tailsToKeep[v] {
			markers[v] = PointIndex(v)
			for _, dg := range dgs {
				for _, x := range dg.Out(PointIndex(v)) {
					if markers[x] != PointIndex(v) {
						markers[x] = PointIndex(v)
						if write {
							outHead[counter] = x
						}
						counter++
					}
				}
			}
		}
		if write {
			outTailPtr[v+1] = counter
		}
	}
	return counter
}

// DifferenceDigraphs computes minuend \ subtrahend, capping each row's
// output out-degree at maxOutDegree. See §4.B "Difference". This takes the
// minuend's vertex count directly, resolving the reference ambiguity noted
// in spec §9 (the reference dereferences a nonexistent in_dgs[0]).
func DifferenceDigraphs(minuend, subtrahend *Digraph, maxOutDegree int) (*Digraph, error) {
	if minuend.Vertices != subtrahend.Vertices {
		return nil, errInvalidInput("difference requires equal vertex counts")
	}
	if maxOutDegree <= 0 {
		return nil, errInvalidInput("maxOutDegree must be positive")
	}
	vertices := minuend.Vertices
	markers := newRowMarkers(vertices)

	greedy := minuend.TailPtr[vertices]
	out, err := InitDigraph(vertices, greedy)
	if err != nil {
		exact := doDifference(vertices, minuend, subtrahend, maxOutDegree, markers, false, nil, nil)
		out, err = InitDigraph(vertices, exact)
		if err != nil {
			return nil, err
		}
	}

	written := doDifference(vertices, minuend, subtrahend, maxOutDegree, markers, true, out.TailPtr, out.Head)
	if err := out.ChangeArcStorage(written); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}

func doDifference(vertices int, minuend, subtrahend *Digraph, maxOutDegree int, markers []PointIndex, write bool, outTailPtr []ArcIndex, outHead []PointIndex) ArcIndex {
	var counter ArcIndex
	for v := range markers {
		markers[v] = PNA
	}
	if write {
		outTailPtr[0] = 0
	}
	for v := 0; v < vertices; v++ {
		markers[v] = PointIndex(v)
		for _, x := range subtrahend.Out(PointIndex(v)) {
			markers[x] = PointIndex(v)
		}
		rowCount := 0
		for _, x := range minuend.Out(PointIndex(v)) {
			if rowCount >= maxOutDegree {
				break
			}
			if markers[x] != PointIndex(v) {
				if write {
					outHead[counter] = x
				}
				rowCount++
				counter++
			}
		}
		if write {
			outTailPtr[v+1] = counter
		}
	}
	return counter
}

// TransposeDigraph computes the transpose of dg via counting sort: bump
// per-destination counts, prefix-sum into tail pointers, then scatter arcs
// into place. See §4.B "Transpose".
func TransposeDigraph(dg *Digraph) (*Digraph, error) {
	vertices := dg.Vertices
	out, err := EmptyDigraph(vertices, dg.TailPtr[vertices])
	if err != nil {
		return nil, err
	}

	totalArcs := dg.TailPtr[vertices]
	for _, a := range dg.Head[:totalArcs] {
		out.TailPtr[a+1]++
	}
	for v := 0; v < vertices; v++ {
		out.TailPtr[v+1] += out.TailPtr[v]
	}

	cursor := make([]ArcIndex, vertices)
	copy(cursor, out.TailPtr[:vertices])

	for v := 0; v < vertices; v++ {
		for _, a := range dg.Out(PointIndex(v)) {
			out.Head[cursor[a]] = PointIndex(v)
			cursor[a]++
		}
	}

	return out, nil
}

// AdjacencyProductDigraphs computes A·B: row v is the de-duplicated union of
// B.Out(a) for a in A.Out(v). forceLoops and ignoreLoops are mutually
// exclusive; forceLoops additionally pre-seeds row v with B.Out(v) and skips
// a=v while walking A.Out(v); ignoreLoops only skips a=v. See §4.B
// "Adjacency product".
func AdjacencyProductDigraphs(a, b *Digraph, forceLoops, ignoreLoops bool) (*Digraph, error) {
	if a.Vertices != b.Vertices {
		return nil, errInvalidInput("adjacency product requires equal vertex counts")
	}
	if forceLoops && ignoreLoops {
		return nil, errInvalidInput("forceLoops and ignoreLoops are mutually exclusive")
	}
	vertices := a.Vertices
	markers := newRowMarkers(vertices)

	var greedy ArcIndex
	for v := 0; v < vertices; v++ {
		if forceLoops {
			greedy += ArcIndex(b.OutDegree(PointIndex(v)))
		}
		for _, x := range a.Out(PointIndex(v)) {
			if int(x) == v && (forceLoops || ignoreLoops) {
				continue
			}
			greedy += ArcIndex(b.OutDegree(x))
		}
	}

	out, err := InitDigraph(vertices, greedy)
	if err != nil {
		exact := doAdjacencyProduct(vertices, a, b, markers, forceLoops, ignoreLoops, false, nil, nil)
		out, err = InitDigraph(vertices, exact)
		if err != nil {
			return nil, err
		}
	}

	written := doAdjacencyProduct(vertices, a, b, markers, forceLoops, ignoreLoops, true, out.TailPtr, out.Head)
	if err := out.ChangeArcStorage(written); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}

func doAdjacencyProduct(vertices int, a, b *Digraph, markers []PointIndex, forceLoops, ignoreLoops, write bool, outTailPtr []ArcIndex, outHead []PointIndex) ArcIndex {
	var counter ArcIndex
	for v := range markers {
		markers[v] = PNA
	}
	if write {
		outTailPtr[0] = 0
	}
	for v := 0; v < vertices; v++ {
		markers[v] = PointIndex(v)
		if forceLoops {
			for _, x := range b.Out(PointIndex(v)) {
				if markers[x] != PointIndex(v) {
					markers[x] = PointIndex(v)
					if write {
						outHead[counter] = x
					}
					counter++
				}
			}
		}
		for _, x := range a.Out(PointIndex(v)) {
			if int(x) == v && (forceLoops || ignoreLoops) {
				continue
			}
			for _, y := range b.Out(x) {
				if markers[y] != PointIndex(v) {
					markers[y] = PointIndex(v)
					if write {
						outHead[counter] = y
					}
					counter++
				}
			}
		}
		if write {
			outTailPtr[v+1] = counter
		}
	}
	return counter
}

// DeleteLoopsInPlace removes self-arcs from dg by left-to-right compaction,
// shifting TailPtr downward. See §4.B "Delete-loops".
func DeleteLoopsInPlace(dg *Digraph) {
	var write ArcIndex
	for v := 0; v < dg.Vertices; v++ {
		start, stop := dg.TailPtr[v], dg.TailPtr[v+1]
		dg.TailPtr[v] = write
		for i := start; i < stop; i++ {
			if int(dg.Head[i]) != v {
				dg.Head[write] = dg.Head[i]
				write++
			}
		}
	}
	dg.TailPtr[dg.Vertices] = write
}
