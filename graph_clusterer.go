package scclust

// BuildNNG materializes a size-k nearest-neighbor digraph over every point
// the oracle was opened with, by issuing whole-data-set batches of at most
// batchSize queries through oracle.Search. It is the bridge between a
// SearchOracle and the graph-based clusterer, which needs an explicit
// Digraph rather than a streaming interface.
func BuildNNG(oracle SearchOracle, n, k int, radius float64, stable bool, batchSize int) (*Digraph, error) {
	if n <= k {
		return nil, errInvalidInput("BuildNNG requires more points than k")
	}
	if batchSize <= 0 || batchSize > n {
		batchSize = n
	}

	if err := oracle.Open(nil); err != nil {
		return nil, errDistSearch(err.Error())
	}
	defer oracle.Close()

	g, err := InitDigraph(n, ArcIndex(n*k))
	if err != nil {
		return nil, err
	}

	for v := 0; v <= n; v++ {
		g.TailPtr[v] = ArcIndex(v * k)
	}

	queries := make([]PointIndex, batchSize)
	out := make([]PointIndex, batchSize*k)

	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		for i := start; i < end; i++ {
			queries[i-start] = PointIndex(i)
		}
		rows := queries[:end-start]
		numOK, err := oracle.Search(rows, k, radius, stable, out[:len(rows)*k])
		if err != nil {
			g.Free()
			return nil, errDistSearch(err.Error())
		}
		if numOK != len(rows) {
			g.Free()
			return nil, errNoSolution("radius constraint excludes some points from having k neighbors")
		}
		// Every row was filled (numOK == len(rows)). Search may have
		// reordered rows, but rows[i] names the query point of out row i,
		// so its arcs land at exactly g.TailPtr[rows[i]].
		for i, q := range rows {
			base := g.TailPtr[q]
			copy(g.Head[base:base+ArcIndex(k)], out[i*k:(i+1)*k])
		}
	}
	return g, nil
}

// GraphCluster implements the graph-based entry point: given an already
// materialized NNG (out-degree exactly k per §3's "NNG" definition), pick a
// seed-selection heuristic from §4.D, label every seed's closed
// neighborhood, then dispose of points left unlabelled per
// cfg.UnassignedMethod. This is the counterpart to BatchCluster that
// operates on an explicit Digraph instead of streaming an oracle.
func GraphCluster(clustering *Clustering, nng *Digraph, cfg GraphConfig) error {
	cfg.applyDefaults()
	if err := cfg.validate(nng); err != nil {
		return err
	}
	if clustering.NumClusters != 0 {
		return newError(ErrNotImplemented, "cannot refine an existing clustering")
	}
	if nng.Vertices != clustering.NumDataPoints {
		return errInvalidInput("NNG vertex count must match clustering's data point count")
	}

	cfg.Logger.Debug("graph clustering starting", "points", nng.Vertices, "method", cfg.SeedMethod)

	seeds, err := FindSeeds(nng, cfg.SeedMethod, cfg.Stable)
	if err != nil {
		return err
	}
	cfg.Logger.Debug("seeds found", "count", len(seeds.Seeds))

	clustering.labelSeeds(seeds, nng)

	if err := clustering.assignUnassigned(nng, nil, cfg.UnassignedMethod); err != nil {
		return err
	}

	cfg.Logger.Debug("graph clustering finished", "clusters", clustering.NumClusters)
	return nil
}
