package scclust

import "testing"

func seedSet(sr *SeedResult) map[PointIndex]bool {
	m := make(map[PointIndex]bool, len(sr.Seeds))
	for _, s := range sr.Seeds {
		m[s] = true
	}
	return m
}

func labelsFor(t *testing.T, nng *Digraph, sr *SeedResult) []ClusterLabel {
	t.Helper()
	cl, err := NewClustering(nng.Vertices)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	cl.labelSeeds(sr, nng)
	return cl.Label
}

func TestFindSeedsLexicalScenario1(t *testing.T) {
	nng := buildDigraph(t, [][]PointIndex{{1}, {0}, {3}, {2}, {5}, {4}})
	sr, err := FindSeeds(nng, SeedLexical, false)
	if err != nil {
		t.Fatalf("FindSeeds: %v", err)
	}
	wantSeeds := map[PointIndex]bool{0: true, 2: true, 4: true}
	if got := seedSet(sr); !mapsEqual(got, wantSeeds) {
		t.Errorf("seeds = %v, want %v", got, wantSeeds)
	}
	want := []ClusterLabel{0, 0, 1, 1, 2, 2}
	got := labelsFor(t, nng, sr)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFindSeedsLexicalScenario2(t *testing.T) {
	nng := buildDigraph(t, [][]PointIndex{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}})
	sr, err := FindSeeds(nng, SeedLexical, false)
	if err != nil {
		t.Fatalf("FindSeeds: %v", err)
	}
	wantSeeds := map[PointIndex]bool{0: true, 3: true}
	if got := seedSet(sr); !mapsEqual(got, wantSeeds) {
		t.Errorf("seeds = %v, want %v", got, wantSeeds)
	}
	want := []ClusterLabel{0, 0, 0, 1, 1, 1}
	got := labelsFor(t, nng, sr)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFindSeedsLexicalScenario3Cycle(t *testing.T) {
	nng := buildDigraph(t, [][]PointIndex{{1}, {2}, {3}, {0}})
	sr, err := FindSeeds(nng, SeedLexical, false)
	if err != nil {
		t.Fatalf("FindSeeds: %v", err)
	}
	wantSeeds := map[PointIndex]bool{0: true}
	if got := seedSet(sr); !mapsEqual(got, wantSeeds) {
		t.Errorf("seeds = %v, want %v", got, wantSeeds)
	}

	cl, err := NewClustering(nng.Vertices)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	cl.labelSeeds(sr, nng)
	if err := cl.assignUnassigned(nng, nil, UnassignedIgnore); err != nil {
		t.Fatalf("assignUnassigned: %v", err)
	}
	want := []ClusterLabel{0, 0, CNA, CNA}
	for i := range want {
		if cl.Label[i] != want[i] {
			t.Errorf("label[%d] = %d, want %d", i, cl.Label[i], want[i])
		}
	}
}

func mapsEqual(a, b map[PointIndex]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// checkSeedsDisjointAndNonEmpty verifies the two seed-finder invariants of
// spec.md §8 common to every method: pairwise closed-neighborhood
// disjointness and a non-empty out-neighborhood for every seed.
func checkSeedsDisjointAndNonEmpty(t *testing.T, nng *Digraph, sr *SeedResult) {
	t.Helper()
	covered := make(map[PointIndex]PointIndex)
	for _, s := range sr.Seeds {
		if nng.OutDegree(s) == 0 {
			t.Errorf("seed %d has empty out-neighborhood", s)
		}
		closed := append([]PointIndex{s}, nng.Out(s)...)
		for _, x := range closed {
			if owner, ok := covered[x]; ok {
				t.Errorf("point %d covered by both seed %d and seed %d", x, owner, s)
			}
			covered[x] = s
		}
	}
}

func TestSeedFindersDisjointAcrossAllMethods(t *testing.T) {
	nng := buildDigraph(t, [][]PointIndex{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
		{7, 8}, {6, 8}, {6, 7},
	})
	methods := []SeedMethod{
		SeedLexical, SeedInwardsOrder, SeedInwardsUpdating,
		SeedInwardsAltUpdating, SeedExclusionOrder, SeedExclusionUpdating,
	}
	for _, m := range methods {
		sr, err := FindSeeds(nng, m, false)
		if err != nil {
			t.Fatalf("FindSeeds(%v): %v", m, err)
		}
		checkSeedsDisjointAndNonEmpty(t, nng, sr)
	}
}

func TestFindSeedsLexicalIsDeterministic(t *testing.T) {
	nng := buildDigraph(t, [][]PointIndex{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}})
	sr1, err := FindSeeds(nng, SeedLexical, false)
	if err != nil {
		t.Fatalf("FindSeeds: %v", err)
	}
	sr2, err := FindSeeds(nng, SeedLexical, false)
	if err != nil {
		t.Fatalf("FindSeeds: %v", err)
	}
	if len(sr1.Seeds) != len(sr2.Seeds) {
		t.Fatalf("non-deterministic seed count: %d vs %d", len(sr1.Seeds), len(sr2.Seeds))
	}
	for i := range sr1.Seeds {
		if sr1.Seeds[i] != sr2.Seeds[i] {
			t.Errorf("seed %d differs between runs: %d vs %d", i, sr1.Seeds[i], sr2.Seeds[i])
		}
	}
}

func TestFindSeedsRejectsInvalidNNG(t *testing.T) {
	if _, err := FindSeeds(NullDigraph(), SeedLexical, false); Code(err) != ErrInvalidInput {
		t.Errorf("Code(err) = %v, want ErrInvalidInput", Code(err))
	}
}

func TestExclusionMethodsAgreeWithLexicalSeedCountBound(t *testing.T) {
	// On two disjoint triangles every closed neighborhood covers a whole
	// triangle, so lexical finds one seed per triangle and exclusion_order
	// cannot find more.
	nng := buildDigraph(t, [][]PointIndex{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}})
	lex, err := FindSeeds(nng, SeedLexical, false)
	if err != nil {
		t.Fatalf("FindSeeds(lexical): %v", err)
	}
	exo, err := FindSeeds(nng, SeedExclusionOrder, false)
	if err != nil {
		t.Fatalf("FindSeeds(exclusion_order): %v", err)
	}
	if len(exo.Seeds) > len(lex.Seeds) {
		t.Errorf("exclusion_order produced %d seeds, more than lexical's %d", len(exo.Seeds), len(lex.Seeds))
	}
}
