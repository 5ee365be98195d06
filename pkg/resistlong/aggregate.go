package resistlong

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"golang.org/x/sync/errgroup"
)

// lockFilePrefix marks the owner files Office leaves next to open workbooks.
const lockFilePrefix = "~$"

// ListWorkbooks returns the paths of the workbooks in dir, sorted by name.
// A file qualifies when its extension matches one of exts, ignoring case.
func ListWorkbooks(dir string, exts []string, log *slog.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name(), exts) {
			continue
		}
		if strings.HasPrefix(e.Name(), lockFilePrefix) {
			log.Warn("skipping office lock file", slog.String("file", e.Name()))
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Aggregate processes every workbook in dir and concatenates the records in
// file, sheet, row order. Records whose value is numeric zero are dropped.
// Any failing workbook aborts the whole run.
func Aggregate(ctx context.Context, dir string, opts Options) (models.Table, error) {
	log := opts.logger()
	files, err := ListWorkbooks(dir, opts.extensions(), log)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, NewNoDataFoundError(dir, 0)
	}
	log.Info("workbooks found", slog.String("dir", dir), slog.Int("count", len(files)))

	perFile, err := processAll(ctx, files, opts)
	if err != nil {
		return nil, err
	}

	var all models.Table
	for _, tables := range perFile {
		for _, t := range tables {
			all = append(all, t...)
		}
	}
	if len(all) == 0 {
		return nil, NewNoDataFoundError(dir, len(files))
	}

	kept := DropZero(all)
	log.Info("records aggregated",
		slog.Int("records", len(all)),
		slog.Int("zero_dropped", len(all)-len(kept)))
	return kept, nil
}

// processAll runs ProcessWorkbook over files. Results are indexed by file
// position so the output order does not depend on scheduling.
func processAll(ctx context.Context, files []string, opts Options) ([][]models.Table, error) {
	perFile := make([][]models.Table, len(files))

	if opts.Workers <= 1 {
		for i, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tables, err := ProcessWorkbook(ctx, path, opts)
			if err != nil {
				return nil, err
			}
			perFile[i] = tables
		}
		return perFile, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, path := range files {
		g.Go(func() error {
			tables, err := ProcessWorkbook(gctx, path, opts)
			if err != nil {
				return err
			}
			perFile[i] = tables
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perFile, nil
}

// DropZero returns the records whose value is not numeric zero.
// Empty and non-numeric values are kept.
func DropZero(t models.Table) models.Table {
	out := make(models.Table, 0, len(t))
	for _, rec := range t {
		if rec.Waarde.IsNumericZero() {
			continue
		}
		out = append(out, rec)
	}
	return out
}
