package scclust

// SearchOracle is the abstract nearest-neighbor search collaborator of §6
// "Inbound": the batch and graph clusterers never touch raw point data
// directly, only through this interface. Implementations own whatever
// index structure backs Search (a KD-tree, a ball tree, a remote service);
// Open and Close bracket that structure's lifetime.
type SearchOracle interface {
	// Open prepares the oracle to answer queries against the data set it
	// was constructed with, restricted to subset if non-nil (subset holds
	// the PointIndex values eligible to be returned as neighbors).
	Open(subset []PointIndex) error

	// Search finds, for every query in queries, its k nearest neighbors
	// subject to an optional radius cutoff (radius <= 0 means unconstrained).
	// queries is overwritten in place: on return queries[i] together with
	// out[i*k:(i+1)*k] describe query row i in whatever order Search found
	// convenient, and numOK reports how many of the first len(queries) rows
	// were filled (a row with fewer than k neighbors inside radius is
	// omitted and does not count toward numOK, per §6). stable, when true,
	// sorts each filled row by PointIndex before returning it.
	Search(queries []PointIndex, k int, radius float64, stable bool, out []PointIndex) (numOK int, err error)

	// Close releases resources acquired by Open. Idempotent.
	Close()
}
