package scclust

// BatchCluster implements §4.E, the batched NNG clusterer: it streams
// batches of candidate points through oracle without ever materializing
// the full NNG, grounded on original_source/src/nng_batch_clustering.c's
// iscc_run_nng_batches.
//
// clustering.NumClusters must be 0 on entry (no refinement of an existing
// clustering); on success it holds the number of clusters produced.
func BatchCluster(clustering *Clustering, oracle SearchOracle, cfg BatchConfig) error {
	cfg.applyDefaults()
	if err := cfg.validate(clustering.NumDataPoints); err != nil {
		return err
	}
	if clustering.NumClusters != 0 {
		return newError(ErrNotImplemented, "cannot refine an existing clustering")
	}

	n := clustering.NumDataPoints
	k := cfg.SizeConstraint

	batchSize := cfg.BatchSize
	if batchSize <= 0 || batchSize > n {
		batchSize = n
	}

	var primaryMask []bool
	if cfg.PrimaryPoints != nil {
		primaryMask = make([]bool, n)
		for _, p := range cfg.PrimaryPoints {
			primaryMask[p] = true
		}
	}

	radius := 0.0
	if cfg.RadiusConstraint {
		radius = cfg.Radius
	}

	if err := oracle.Open(nil); err != nil {
		return errDistSearch(err.Error())
	}
	defer oracle.Close()

	batchIndices := make([]PointIndex, batchSize)
	outIndices := make([]PointIndex, k*batchSize)
	assigned := make([]bool, n)

	searchDone := false
	var nextLabel ClusterLabel

	cfg.Logger.Debug("batch clustering starting", "points", n, "k", k, "batch_size", batchSize)

	curr := 0
	for curr < n {
		inBatch := 0
		for inBatch < batchSize && curr < n {
			if !assigned[curr] {
				clustering.Label[curr] = CNA
				if primaryMask == nil || primaryMask[curr] {
					batchIndices[inBatch] = PointIndex(curr)
					inBatch++
				}
			}
			curr++
		}
		if inBatch == 0 {
			break
		}

		searchDone = true
		numOK, err := oracle.Search(batchIndices[:inBatch], k, radius, cfg.Stable, outIndices[:inBatch*k])
		if err != nil {
			return errDistSearch(err.Error())
		}

		for i := 0; i < numOK; i++ {
			seed := batchIndices[i]
			if assigned[seed] {
				continue
			}
			row := outIndices[i*k : (i+1)*k]

			allUnassigned := true
			for _, x := range row {
				if assigned[x] {
					allUnassigned = false
					break
				}
			}

			if allUnassigned {
				if nextLabel == CMAX {
					return errTooLargeProblem("too many clusters: adjust ClusterLabel's width")
				}
				for _, x := range row {
					assigned[x] = true
					clustering.Label[x] = nextLabel
				}
				// If batch_indices[i] appeared among its own k neighbors, the
				// self-loop slot already labelled it and the cluster has k
				// members. Otherwise the seed joins as an extra, (k+1)-th
				// member.
				if !assigned[seed] {
					assigned[seed] = true
					clustering.Label[seed] = nextLabel
				}
				cfg.Logger.Debug("seed accepted", "seed", seed, "cluster", nextLabel)
				nextLabel++
			} else if cfg.UnassignedMethod == UnassignedAnyNeighbor {
				for _, x := range row {
					if assigned[x] {
						clustering.Label[seed] = clustering.Label[x]
						break
					}
				}
			}
		}

		cfg.Logger.Debug("batch processed", "clusters_so_far", nextLabel)
	}

	if nextLabel == 0 {
		if !searchDone {
			return errNoSolution("no primary data points")
		}
		return errNoSolution("infeasible radius constraint")
	}

	clustering.NumClusters = nextLabel
	return nil
}
