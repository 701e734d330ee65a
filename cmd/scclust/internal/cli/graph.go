package cli

import (
	"github.com/spf13/cobra"

	scclust "github.com/fsavje/scclust-go"
)

var (
	graphSizeConstraint int
	graphMethod         string
	graphAnyNeighbor    bool
	graphStable         bool
	graphWorkers        int
	graphLeafSize       int
)

var seedMethodsByName = map[string]scclust.SeedMethod{
	"lexical":              scclust.SeedLexical,
	"inwards_order":        scclust.SeedInwardsOrder,
	"inwards_updating":     scclust.SeedInwardsUpdating,
	"inwards_alt_updating": scclust.SeedInwardsAltUpdating,
	"exclusion_order":      scclust.SeedExclusionOrder,
	"exclusion_updating":   scclust.SeedExclusionUpdating,
}

var graphCmd = &cobra.Command{
	Use:   "graph <points.csv>",
	Short: "Cluster points by materializing the NNG and selecting seeds",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().IntVar(&graphSizeConstraint, "size", 2, "minimum cluster size (k); the NNG out-degree")
	graphCmd.Flags().StringVar(&graphMethod, "method", "lexical", "seed method: lexical, inwards_order, inwards_updating, inwards_alt_updating, exclusion_order, exclusion_updating")
	graphCmd.Flags().BoolVar(&graphAnyNeighbor, "any-neighbor", false, "assign leftover points to a neighboring cluster instead of leaving them unassigned")
	graphCmd.Flags().BoolVar(&graphStable, "stable", false, "deterministic seed selection")
	graphCmd.Flags().IntVar(&graphWorkers, "workers", 1, "goroutines used by the search oracle")
	graphCmd.Flags().IntVar(&graphLeafSize, "leaf-size", 16, "KD-tree leaf size")
}

func runGraph(cmd *cobra.Command, args []string) error {
	method, ok := seedMethodsByName[graphMethod]
	if !ok {
		return &scclust.Error{Code: scclust.ErrInvalidInput, Message: "unknown seed method " + graphMethod}
	}

	data, n, dims, err := loadPoints(args[0])
	if err != nil {
		return err
	}

	oracle := scclust.NewKDTreeOracle(data, n, dims, scclust.EuclideanMetric{}, graphLeafSize, graphWorkers)
	nng, err := scclust.BuildNNG(oracle, n, graphSizeConstraint, 0, graphStable, 0)
	if err != nil {
		return err
	}
	defer nng.Free()

	clustering, err := scclust.NewClustering(n)
	if err != nil {
		return err
	}

	cfg := scclust.DefaultGraphConfig()
	cfg.SeedMethod = method
	cfg.Stable = graphStable
	cfg.Logger = logger
	if graphAnyNeighbor {
		cfg.UnassignedMethod = scclust.UnassignedAnyNeighbor
	}

	if err := scclust.GraphCluster(clustering, nng, cfg); err != nil {
		return err
	}

	printLabels(clustering)
	return nil
}
