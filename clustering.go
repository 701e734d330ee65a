package scclust

// Clustering is the output of every clustering operation in this package:
// a label assignment over a fixed number of data points, plus the count of
// distinct (non-unassigned) clusters currently in use. See §3 "Clustering".
type Clustering struct {
	NumDataPoints int
	NumClusters   ClusterLabel
	Label         []ClusterLabel

	// externalLabels marks a Clustering whose Label slice was supplied by
	// the caller (e.g. a pre-allocated output buffer) rather than allocated
	// here; Free leaves it alone.
	externalLabels bool
}

// NewClustering allocates a Clustering over numDataPoints points with every
// label set to CNA (unassigned).
func NewClustering(numDataPoints int) (*Clustering, error) {
	if numDataPoints <= 0 {
		return nil, errInvalidInput("NewClustering requires at least one data point")
	}
	label := make([]ClusterLabel, numDataPoints)
	for i := range label {
		label[i] = CNA
	}
	return &Clustering{NumDataPoints: numDataPoints, Label: label}, nil
}

// WrapClusterLabels builds a Clustering around a caller-owned label slice,
// counting the distinct non-CNA labels already present. Used when a caller
// hands in a pre-populated or pre-allocated buffer it wants to retain
// ownership of.
func WrapClusterLabels(label []ClusterLabel) (*Clustering, error) {
	if len(label) == 0 {
		return nil, errInvalidInput("WrapClusterLabels requires a non-empty slice")
	}
	seen := make(map[ClusterLabel]bool)
	for _, l := range label {
		if l != CNA {
			seen[l] = true
		}
	}
	return &Clustering{
		NumDataPoints:  len(label),
		NumClusters:    ClusterLabel(len(seen)),
		Label:          label,
		externalLabels: true,
	}, nil
}

// Free releases cl's internally owned label slice. A nil receiver, or a
// Clustering built by WrapClusterLabels, is a no-op.
func (cl *Clustering) Free() {
	if cl == nil || cl.externalLabels {
		return
	}
	cl.Label = nil
	cl.NumDataPoints = 0
	cl.NumClusters = 0
}

// IsValid reports whether every label is either CNA or within
// [0, NumClusters).
func (cl *Clustering) IsValid() bool {
	if cl == nil || cl.Label == nil {
		return false
	}
	for _, l := range cl.Label {
		if l != CNA && l >= ClusterLabel(cl.NumClusters) {
			return false
		}
	}
	return true
}

// AssignedCount returns the number of points with a label other than CNA.
func (cl *Clustering) AssignedCount() int {
	n := 0
	for _, l := range cl.Label {
		if l != CNA {
			n++
		}
	}
	return n
}

// labelSeeds assigns each seed its own fresh cluster label and marks every
// other point in its closed out-neighborhood (in nng) with that same label,
// first-writer-wins. See §4.E / §5 "labelling a clustering from seeds".
func (cl *Clustering) labelSeeds(seeds *SeedResult, nng *Digraph) {
	for _, s := range seeds.Seeds {
		label := cl.NumClusters
		cl.NumClusters++
		if cl.Label[s] == CNA {
			cl.Label[s] = label
		}
		for _, x := range nng.Out(s) {
			if cl.Label[x] == CNA {
				cl.Label[x] = label
			}
		}
	}
}

// assignUnassigned disposes of points still labeled CNA after seed
// labelling according to method. See §4.E "Unassigned-point handling".
func (cl *Clustering) assignUnassigned(nng *Digraph, radiusNeighbors func(PointIndex) []PointIndex, method UnassignedMethod) error {
	switch method {
	case UnassignedIgnore:
		return nil
	case UnassignedAnyNeighbor:
		for v := 0; v < cl.NumDataPoints; v++ {
			pv := PointIndex(v)
			if cl.Label[pv] != CNA {
				continue
			}
			neighbors := nng.Out(pv)
			if radiusNeighbors != nil {
				neighbors = radiusNeighbors(pv)
			}
			for _, x := range neighbors {
				if cl.Label[x] != CNA {
					cl.Label[pv] = cl.Label[x]
					break
				}
			}
		}
		return nil
	default:
		return errInvalidInput("unknown UnassignedMethod")
	}
}
