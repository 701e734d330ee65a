package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	scclust "github.com/fsavje/scclust-go"
)

var (
	batchSizeConstraint int
	batchBatchSize      int
	batchAnyNeighbor    bool
	batchRadius         float64
	batchStable         bool
	batchWorkers        int
	batchLeafSize       int
)

var batchCmd = &cobra.Command{
	Use:   "batch <points.csv>",
	Short: "Cluster points with the batched NNG clusterer",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchSizeConstraint, "size", 2, "minimum cluster size (k)")
	batchCmd.Flags().IntVar(&batchBatchSize, "batch-size", 0, "oracle batch size (0 = unbounded)")
	batchCmd.Flags().BoolVar(&batchAnyNeighbor, "any-neighbor", false, "assign leftover points to a neighboring cluster instead of leaving them unassigned")
	batchCmd.Flags().Float64Var(&batchRadius, "radius", 0, "maximum within-cluster distance (0 = unconstrained)")
	batchCmd.Flags().BoolVar(&batchStable, "stable", false, "deterministic output independent of batch size")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 1, "goroutines used by the search oracle")
	batchCmd.Flags().IntVar(&batchLeafSize, "leaf-size", 16, "KD-tree leaf size")
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, n, dims, err := loadPoints(args[0])
	if err != nil {
		return err
	}

	clustering, err := scclust.NewClustering(n)
	if err != nil {
		return err
	}

	oracle := scclust.NewKDTreeOracle(data, n, dims, scclust.EuclideanMetric{}, batchLeafSize, batchWorkers)

	cfg := scclust.DefaultBatchConfig()
	cfg.SizeConstraint = batchSizeConstraint
	cfg.BatchSize = batchBatchSize
	cfg.Stable = batchStable
	cfg.Logger = logger
	if batchAnyNeighbor {
		cfg.UnassignedMethod = scclust.UnassignedAnyNeighbor
	}
	if batchRadius > 0 {
		cfg.RadiusConstraint = true
		cfg.Radius = batchRadius
	}

	if err := scclust.BatchCluster(clustering, oracle, cfg); err != nil {
		return err
	}

	printLabels(clustering)
	return nil
}

func printLabels(clustering *scclust.Clustering) {
	for i, label := range clustering.Label {
		if label == scclust.CNA {
			fmt.Printf("%d,-\n", i)
			continue
		}
		fmt.Printf("%d,%d\n", i, label)
	}
}
