package scclust

import "github.com/hashicorp/go-hclog"

// BatchConfig controls the batched NNG clusterer of §4.E. Start with
// [DefaultBatchConfig] and override the fields you need: fill zero fields
// with applyDefaults, then validate.
type BatchConfig struct {
	// SizeConstraint is the minimum cluster size k. Must be >= 2.
	SizeConstraint int

	// UnassignedMethod controls disposal of points that never became a
	// seed's core member. Default: UnassignedIgnore.
	UnassignedMethod UnassignedMethod

	// RadiusConstraint, if true, bounds every accepted neighbor to within
	// Radius (which must then be strictly positive).
	RadiusConstraint bool
	Radius           float64

	// PrimaryPoints restricts which points may become seeds. nil means
	// every point is eligible. If non-nil it must be non-empty.
	PrimaryPoints []PointIndex

	// BatchSize caps how many candidates are searched per oracle call.
	// 0 means "as large as possible" (the full remaining point count).
	BatchSize int

	// Stable requests deterministic output independent of batch size and
	// oracle tie-breaks (§4.E "Determinism").
	Stable bool

	// Logger receives debug-level progress lines. Default: a null logger.
	Logger hclog.Logger
}

// DefaultBatchConfig returns the zero-value-safe defaults for BatchConfig.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		SizeConstraint:   2,
		UnassignedMethod: UnassignedIgnore,
	}
}

// applyDefaults fills in zero-valued fields with their defaults.
func (cfg *BatchConfig) applyDefaults() {
	if cfg.SizeConstraint == 0 {
		cfg.SizeConstraint = 2
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
}

// validate checks cfg against numDataPoints, aggregating every violated
// precondition rather than failing on the first (per hashicorp-terraform's
// use of go-multierror for config diagnostics).
func (cfg *BatchConfig) validate(numDataPoints int) error {
	var verrs validationErrors
	if cfg.SizeConstraint < 2 {
		verrs.add("size constraint must be 2 or greater, got %d", cfg.SizeConstraint)
	}
	if numDataPoints < cfg.SizeConstraint {
		verrs.add("fewer data points (%d) than size constraint (%d)", numDataPoints, cfg.SizeConstraint)
	}
	if cfg.UnassignedMethod != UnassignedIgnore && cfg.UnassignedMethod != UnassignedAnyNeighbor {
		verrs.add("invalid unassigned method %v", cfg.UnassignedMethod)
	}
	if cfg.RadiusConstraint && cfg.Radius <= 0 {
		verrs.add("radius must be strictly positive when RadiusConstraint is set, got %f", cfg.Radius)
	}
	if cfg.PrimaryPoints != nil && len(cfg.PrimaryPoints) == 0 {
		verrs.add("primary points must be non-empty when non-nil")
	}
	if cfg.BatchSize < 0 {
		verrs.add("batch size must be >= 0, got %d", cfg.BatchSize)
	}
	return verrs.err()
}

// GraphConfig controls the graph-based clusterer: seed-selection method
// over a materialized NNG, then closed-neighborhood labelling.
type GraphConfig struct {
	// SeedMethod selects which of the six §4.D heuristics builds the seed
	// list. Default: SeedLexical.
	SeedMethod SeedMethod

	// UnassignedMethod controls disposal of points left unlabelled after
	// seed labelling. Default: UnassignedIgnore.
	UnassignedMethod UnassignedMethod

	// Stable requests the deterministic re-sort behavior of §4.C/§4.D.
	Stable bool

	// Logger receives debug-level progress lines. Default: a null logger.
	Logger hclog.Logger
}

// DefaultGraphConfig returns the zero-value-safe defaults for GraphConfig.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{SeedMethod: SeedLexical, UnassignedMethod: UnassignedIgnore}
}

func (cfg *GraphConfig) applyDefaults() {
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
}

func (cfg *GraphConfig) validate(nng *Digraph) error {
	var verrs validationErrors
	if !nng.IsValid() {
		verrs.add("NNG is not a valid digraph")
	}
	if cfg.UnassignedMethod != UnassignedIgnore && cfg.UnassignedMethod != UnassignedAnyNeighbor {
		verrs.add("invalid unassigned method %v", cfg.UnassignedMethod)
	}
	switch cfg.SeedMethod {
	case SeedLexical, SeedInwardsOrder, SeedInwardsUpdating, SeedInwardsAltUpdating, SeedExclusionOrder, SeedExclusionUpdating:
	default:
		verrs.add("invalid seed method %v", cfg.SeedMethod)
	}
	return verrs.err()
}
