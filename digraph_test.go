package scclust

import "testing"

func TestInitDigraph(t *testing.T) {
	g, err := InitDigraph(4, 6)
	if err != nil {
		t.Fatalf("InitDigraph returned error: %v", err)
	}
	if len(g.TailPtr) != 5 {
		t.Errorf("len(TailPtr) = %d, want 5", len(g.TailPtr))
	}
	if len(g.Head) != 6 {
		t.Errorf("len(Head) = %d, want 6", len(g.Head))
	}
}

func TestEmptyDigraphZeroFilled(t *testing.T) {
	g, err := EmptyDigraph(3, 10)
	if err != nil {
		t.Fatalf("EmptyDigraph returned error: %v", err)
	}
	for v, tp := range g.TailPtr {
		if tp != 0 {
			t.Errorf("TailPtr[%d] = %d, want 0", v, tp)
		}
	}
	if !g.IsValid() {
		t.Error("empty digraph should be valid")
	}
}

func TestNullDigraph(t *testing.T) {
	g := NullDigraph()
	if !g.IsEmpty() {
		t.Error("NullDigraph should be empty")
	}
	if g.IsInitialized() {
		t.Error("NullDigraph should not be initialized")
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	g, _ := InitDigraph(3, 3)
	g.Free()
	g.Free()
	if g.IsInitialized() {
		t.Error("Free should leave the digraph uninitialized")
	}
	var nilG *Digraph
	nilG.Free() // must not panic
}

func TestChangeArcStorageShrink(t *testing.T) {
	g, _ := InitDigraph(2, 10)
	g.Head[0] = 1
	g.Head[1] = 0
	if err := g.ChangeArcStorage(2); err != nil {
		t.Fatalf("ChangeArcStorage returned error: %v", err)
	}
	if len(g.Head) != 2 {
		t.Errorf("len(Head) = %d, want 2", len(g.Head))
	}
	if g.Head[0] != 1 || g.Head[1] != 0 {
		t.Errorf("ChangeArcStorage corrupted retained arcs: %v", g.Head)
	}
}

func TestChangeArcStorageToZeroFreesHead(t *testing.T) {
	g, _ := InitDigraph(2, 4)
	if err := g.ChangeArcStorage(0); err != nil {
		t.Fatalf("ChangeArcStorage returned error: %v", err)
	}
	if g.Head != nil {
		t.Error("ChangeArcStorage(0) should leave Head nil")
	}
	if g.MaxArcs != 0 {
		t.Errorf("MaxArcs = %d, want 0", g.MaxArcs)
	}
}

func TestIsBalanced(t *testing.T) {
	g, _ := InitDigraph(3, 6)
	g.TailPtr[0], g.TailPtr[1], g.TailPtr[2], g.TailPtr[3] = 0, 2, 4, 6
	g.Head[0], g.Head[1] = 1, 2
	g.Head[2], g.Head[3] = 0, 2
	g.Head[4], g.Head[5] = 0, 1
	if !g.IsBalanced(2) {
		t.Error("g should be balanced with out-degree 2")
	}
	if g.IsBalanced(3) {
		t.Error("g should not be balanced with out-degree 3")
	}
}

func TestOutAndOutDegree(t *testing.T) {
	g, _ := InitDigraph(3, 3)
	g.TailPtr[0], g.TailPtr[1], g.TailPtr[2], g.TailPtr[3] = 0, 1, 1, 3
	g.Head[0] = 2
	g.Head[1] = 0
	g.Head[2] = 1

	if got := g.OutDegree(0); got != 1 {
		t.Errorf("OutDegree(0) = %d, want 1", got)
	}
	if got := g.OutDegree(1); got != 0 {
		t.Errorf("OutDegree(1) = %d, want 0", got)
	}
	out := g.Out(2)
	if len(out) != 2 || out[0] != 0 || out[1] != 1 {
		t.Errorf("Out(2) = %v, want [0 1]", out)
	}
}

func TestIsValidRejectsDecreasingTailPtr(t *testing.T) {
	g, _ := InitDigraph(2, 4)
	g.TailPtr[0], g.TailPtr[1], g.TailPtr[2] = 2, 0, 4
	if g.IsValid() {
		t.Error("digraph with decreasing TailPtr should be invalid")
	}
}

func TestIsValidRejectsOutOfRangeHead(t *testing.T) {
	g, _ := InitDigraph(2, 1)
	g.TailPtr[0], g.TailPtr[1], g.TailPtr[2] = 0, 1, 1
	g.Head[0] = 5
	if g.IsValid() {
		t.Error("digraph with out-of-range Head entry should be invalid")
	}
}
