package scclust

import "testing"

// fakeOracle answers Search from a fixed table of neighbor rows, letting
// batch-clusterer tests pin down exact oracle output instead of depending on
// a real spatial index's tie-breaking.
type fakeOracle struct {
	rows    map[PointIndex][]PointIndex
	opened  bool
	failAll bool
}

func (o *fakeOracle) Open(subset []PointIndex) error {
	if o.failAll {
		return errDistSearch("forced failure")
	}
	o.opened = true
	return nil
}

func (o *fakeOracle) Close() { o.opened = false }

func (o *fakeOracle) Search(queries []PointIndex, k int, radius float64, stable bool, out []PointIndex) (int, error) {
	numOK := 0
	for _, q := range queries {
		row, ok := o.rows[q]
		if !ok || len(row) < k {
			continue
		}
		copy(out[numOK*k:(numOK+1)*k], row[:k])
		queries[numOK] = q
		numOK++
	}
	return numOK, nil
}

func TestBatchClusterScenario6(t *testing.T) {
	rows := map[PointIndex][]PointIndex{
		0: {0, 1, 2}, 1: {0, 1, 2}, 2: {0, 1, 2},
		3: {3, 4, 5}, 4: {3, 4, 5}, 5: {3, 4, 5},
		6: {6, 7, 8}, 7: {6, 7, 8}, 8: {6, 7, 8},
		9: {7, 8, 9},
	}
	oracle := &fakeOracle{rows: rows}
	clustering, err := NewClustering(10)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}

	cfg := DefaultBatchConfig()
	cfg.SizeConstraint = 3
	if err := BatchCluster(clustering, oracle, cfg); err != nil {
		t.Fatalf("BatchCluster: %v", err)
	}

	wantClusters := [][]PointIndex{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
	if clustering.NumClusters != 3 {
		t.Fatalf("NumClusters = %d, want 3", clustering.NumClusters)
	}
	for _, cluster := range wantClusters {
		label := clustering.Label[cluster[0]]
		for _, p := range cluster {
			if clustering.Label[p] != label {
				t.Errorf("point %d has label %d, want %d (same cluster as %d)", p, clustering.Label[p], label, cluster[0])
			}
		}
	}
	if clustering.Label[9] != CNA {
		t.Errorf("Label[9] = %d, want CNA (tail point left unassigned)", clustering.Label[9])
	}
}

func TestBatchClusterEveryClusterAtLeastK(t *testing.T) {
	rows := map[PointIndex][]PointIndex{
		0: {0, 1, 2}, 1: {0, 1, 2}, 2: {0, 1, 2},
		3: {3, 4, 5}, 4: {3, 4, 5}, 5: {3, 4, 5},
	}
	oracle := &fakeOracle{rows: rows}
	clustering, err := NewClustering(6)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	cfg := DefaultBatchConfig()
	cfg.SizeConstraint = 3
	if err := BatchCluster(clustering, oracle, cfg); err != nil {
		t.Fatalf("BatchCluster: %v", err)
	}
	counts := make(map[ClusterLabel]int)
	for _, l := range clustering.Label {
		if l != CNA {
			counts[l]++
		}
	}
	for label, n := range counts {
		if n < cfg.SizeConstraint {
			t.Errorf("cluster %d has %d members, want >= %d", label, n, cfg.SizeConstraint)
		}
	}
}

func TestBatchClusterAnyNeighborAssignsEveryPoint(t *testing.T) {
	rows := map[PointIndex][]PointIndex{
		0: {0, 1, 2}, 1: {0, 1, 2}, 2: {0, 1, 2},
		3: {1, 2, 3},
	}
	oracle := &fakeOracle{rows: rows}
	clustering, err := NewClustering(4)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	cfg := DefaultBatchConfig()
	cfg.SizeConstraint = 3
	cfg.UnassignedMethod = UnassignedAnyNeighbor
	if err := BatchCluster(clustering, oracle, cfg); err != nil {
		t.Fatalf("BatchCluster: %v", err)
	}
	if clustering.Label[3] == CNA {
		t.Error("point 3 should have been tentatively assigned to a neighbor's cluster")
	}
}

func TestBatchClusterNoSolutionWhenNoSeedForms(t *testing.T) {
	rows := map[PointIndex][]PointIndex{} // every query fails (too few in row)
	oracle := &fakeOracle{rows: rows}
	clustering, err := NewClustering(5)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	cfg := DefaultBatchConfig()
	cfg.SizeConstraint = 2
	err = BatchCluster(clustering, oracle, cfg)
	if Code(err) != ErrNoSolution {
		t.Fatalf("Code(err) = %v, want ErrNoSolution", Code(err))
	}
}

func TestBatchClusterRejectsRefinement(t *testing.T) {
	oracle := &fakeOracle{rows: map[PointIndex][]PointIndex{}}
	clustering, err := NewClustering(4)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	clustering.NumClusters = 1
	err = BatchCluster(clustering, oracle, DefaultBatchConfig())
	if Code(err) != ErrNotImplemented {
		t.Fatalf("Code(err) = %v, want ErrNotImplemented", Code(err))
	}
}

func TestBatchClusterPropagatesOracleOpenError(t *testing.T) {
	oracle := &fakeOracle{failAll: true}
	clustering, err := NewClustering(4)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	err = BatchCluster(clustering, oracle, DefaultBatchConfig())
	if Code(err) != ErrDistSearch {
		t.Fatalf("Code(err) = %v, want ErrDistSearch", Code(err))
	}
}
