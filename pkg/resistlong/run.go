package resistlong

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/exclusion"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// Run aggregates all workbooks in dir and applies the exclusion rules.
// It either returns both partitions or fails as a whole.
func Run(ctx context.Context, dir string, opts Options) (*models.Result, error) {
	filter, err := exclusion.New(opts.Rules)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	opts.Logger = opts.logger().With(slog.String("run_id", runID))

	table, err := Aggregate(ctx, dir, opts)
	if err != nil {
		return nil, err
	}

	res := filter.Partition(table)
	reasons := filter.Summarize(res.Excluded)
	opts.Logger.Info("run complete",
		slog.Int("retained", len(res.Retained)),
		slog.Int("excluded", len(res.Excluded)),
		slog.Int("excluded_term", reasons[exclusion.ReasonTerm]),
		slog.Int("excluded_taxonomy", reasons[exclusion.ReasonTaxonomy]),
		slog.Int("excluded_comma", reasons[exclusion.ReasonComma]))
	return &res, nil
}
