package scclust

import "math"

// PointIndex identifies a data point. Valid values lie in [0, PNA).
type PointIndex uint32

// ArcIndex indexes the concatenated adjacency buffer of a Digraph.
type ArcIndex uint32

// ClusterLabel identifies a cluster. Valid values lie in [0, CNA).
type ClusterLabel uint32

const (
	// PNA is the sentinel PointIndex meaning "no point".
	PNA PointIndex = math.MaxUint32

	// AMAX is the largest value an ArcIndex may hold.
	AMAX ArcIndex = math.MaxUint32

	// CNA is the sentinel ClusterLabel meaning "unassigned".
	CNA ClusterLabel = math.MaxUint32

	// CMAX is the largest value a ClusterLabel may hold; the number of
	// clusters produced by any entry point must stay strictly below it.
	CMAX ClusterLabel = math.MaxUint32
)

// UnassignedMethod selects how points outside any seed's closed neighborhood
// are handled.
type UnassignedMethod int

const (
	// UnassignedIgnore leaves unassigned points labelled CNA.
	UnassignedIgnore UnassignedMethod = iota
	// UnassignedAnyNeighbor tentatively assigns an unassigned point to the
	// cluster of any already-assigned neighbor.
	UnassignedAnyNeighbor
)

// SeedMethod selects one of the six seed-finding heuristics of §4.D.
type SeedMethod int

const (
	SeedLexical SeedMethod = iota
	SeedInwardsOrder
	SeedInwardsUpdating
	SeedInwardsAltUpdating
	SeedExclusionOrder
	SeedExclusionUpdating
)

func (m SeedMethod) String() string {
	switch m {
	case SeedLexical:
		return "lexical"
	case SeedInwardsOrder:
		return "inwards_order"
	case SeedInwardsUpdating:
		return "inwards_updating"
	case SeedInwardsAltUpdating:
		return "inwards_alt_updating"
	case SeedExclusionOrder:
		return "exclusion_order"
	case SeedExclusionUpdating:
		return "exclusion_updating"
	default:
		return "unknown"
	}
}
