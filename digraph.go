package scclust

// Digraph is a compressed-sparse-row directed graph: vertex v's out-arcs are
// Head[TailPtr[v]:TailPtr[v+1]]. See spec §3 "Digraph" for the invariants
// this type must uphold across its lifetime.
type Digraph struct {
	Vertices int
	MaxArcs  ArcIndex
	TailPtr  []ArcIndex
	Head     []PointIndex
}

// InitDigraph allocates TailPtr (length n+1, uninitialized) and, if maxArcs
// > 0, Head (length maxArcs). It fails with ErrTooLargeDigraph when maxArcs
// exceeds AMAX; true allocation failure is left to Go's allocator, which
// panics rather than returning an error.
func InitDigraph(n int, maxArcs ArcIndex) (*Digraph, error) {
	if maxArcs > AMAX {
		return nil, errTooLargeDigraph()
	}
	g := &Digraph{
		Vertices: n,
		MaxArcs:  maxArcs,
		TailPtr:  make([]ArcIndex, n+1),
	}
	if maxArcs > 0 {
		g.Head = make([]PointIndex, maxArcs)
	}
	return g, nil
}

// EmptyDigraph behaves like InitDigraph but zero-fills TailPtr, producing a
// digraph with zero arcs in every row (out-degree 0 everywhere) ready for an
// algebra operator to fill in.
func EmptyDigraph(n int, maxArcs ArcIndex) (*Digraph, error) {
	g, err := InitDigraph(n, maxArcs)
	if err != nil {
		return nil, err
	}
	for i := range g.TailPtr {
		g.TailPtr[i] = 0
	}
	return g, nil
}

// NullDigraph returns the null digraph: n=0, no arcs, no allocations.
func NullDigraph() *Digraph {
	return &Digraph{}
}

// ChangeArcStorage resizes Head to newCap. newCap=0 frees Head. TailPtr is
// left untouched; callers that shrink below TailPtr[Vertices] are expected
// to have already compacted the live arcs into the retained prefix (the
// two-pass algebra operators always shrink to exactly TailPtr[Vertices]).
func (g *Digraph) ChangeArcStorage(newCap ArcIndex) error {
	if newCap > AMAX {
		return errTooLargeDigraph()
	}
	if newCap == 0 {
		g.Head = nil
		g.MaxArcs = 0
		return nil
	}
	newHead := make([]PointIndex, newCap)
	n := ArcIndex(len(g.Head))
	if newCap < n {
		n = newCap
	}
	copy(newHead, g.Head[:n])
	g.Head = newHead
	g.MaxArcs = newCap
	return nil
}

// Free resets g to the null digraph. Idempotent; a nil receiver is a no-op.
func (g *Digraph) Free() {
	if g == nil {
		return
	}
	g.Vertices = 0
	g.MaxArcs = 0
	g.TailPtr = nil
	g.Head = nil
}

// IsInitialized reports whether g has an allocated TailPtr, which every
// non-null digraph must have per spec §3.
func (g *Digraph) IsInitialized() bool {
	return g != nil && g.TailPtr != nil
}

// IsEmpty reports whether g is the null digraph (n=0, no arcs).
func (g *Digraph) IsEmpty() bool {
	return g == nil || (g.Vertices == 0 && g.MaxArcs == 0 && g.TailPtr == nil)
}

// IsValid checks the structural invariants of §3: TailPtr present and
// monotone, TailPtr[n] within MaxArcs, Head present iff MaxArcs>0, and every
// arc destination within [0, Vertices).
func (g *Digraph) IsValid() bool {
	if !g.IsInitialized() {
		return false
	}
	if len(g.TailPtr) != g.Vertices+1 {
		return false
	}
	if (g.MaxArcs > 0) != (len(g.Head) > 0) {
		return false
	}
	for v := 0; v < g.Vertices; v++ {
		if g.TailPtr[v+1] < g.TailPtr[v] {
			return false
		}
	}
	if g.TailPtr[g.Vertices] > g.MaxArcs {
		return false
	}
	for _, h := range g.Head[:g.TailPtr[g.Vertices]] {
		if int(h) >= g.Vertices {
			return false
		}
	}
	return true
}

// IsBalanced reports whether every vertex has out-degree exactly k, as
// required of a size-k NNG before it is handed to a seed finder.
func (g *Digraph) IsBalanced(k int) bool {
	if !g.IsValid() {
		return false
	}
	for v := 0; v < g.Vertices; v++ {
		if int(g.TailPtr[v+1]-g.TailPtr[v]) != k {
			return false
		}
	}
	return true
}

// Out returns vertex v's out-arc destinations as a slice view into Head.
func (g *Digraph) Out(v PointIndex) []PointIndex {
	return g.Head[g.TailPtr[v]:g.TailPtr[v+1]]
}

// OutDegree returns the out-degree of vertex v.
func (g *Digraph) OutDegree(v PointIndex) int {
	return int(g.TailPtr[v+1] - g.TailPtr[v])
}
