// Package scclust computes size-constrained clusterings: partitions of a
// set of data points in which every cluster contains at least a
// user-specified number of points, optionally subject to a maximum
// within-cluster distance (a radius constraint).
//
// There are two entry points, both filling a Clustering. BatchCluster streams
// batches of candidate points through a SearchOracle, never materializing
// the full nearest-neighbor digraph, and tests each returned neighbor row
// for a new seed directly:
//
//	oracle := scclust.NewKDTreeOracle(data, n, dims, scclust.EuclideanMetric{}, 16, 1)
//	clustering, err := scclust.NewClustering(n)
//	cfg := scclust.DefaultBatchConfig()
//	cfg.SizeConstraint = 5
//	err = scclust.BatchCluster(clustering, oracle, cfg)
//	// clustering.Label[i] is the cluster label of point i (scclust.CNA if unassigned)
//
// GraphCluster instead takes an explicit nearest-neighbor digraph and picks
// seeds with one of six ordering heuristics (see SeedMethod):
//
//	nng, err := scclust.BuildNNG(oracle, n, k, 0, false, 0)
//	err = scclust.GraphCluster(clustering, nng, scclust.DefaultGraphConfig())
//
// # Digraph algebra
//
// The lower-level digraph.go/digraph_algebra.go/inwards_sort.go/seedfinder.go
// files implement the compressed-sparse-row digraph, its algebraic
// operators (union, union-and-delete, difference, transpose, adjacency
// product, loop-deletion), and the bucket-sorted inwards-count index that
// the seed finders scan. These are exported for callers building a custom
// clusterer on top of an already-computed nearest-neighbor digraph.
package scclust
