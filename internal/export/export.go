// Package export renders dashboard pages ahead of time and writes them to disk.
//
// An exported file goes through the same fetch-and-render cycle the HTTP
// surface serves, so its contents match what a request to the page path
// would have returned at export time.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
	"github.com/pawansinha0612/indian-stock-api/internal/logger"
	"github.com/pawansinha0612/indian-stock-api/internal/service"
)

const pageSuffix = ".html"

// pageFile returns the output filename for an index page.
func pageFile(index models.Index) string {
	return strings.ToLower(index.ID) + pageSuffix
}

// WritePages renders one page per index and writes each to dir.
//
// Parameters:
//   - ctx: context propagated to every upstream fetch.
//   - svc: dashboard service producing the rendered pages.
//   - indices: indices to export, one output file per entry.
//   - dir: output directory, created if missing.
//   - parallel: concurrency limit; <= 0 picks min(len(indices), NumCPU).
//
// Behavior:
//   - Writes each page as "<id>.html" with the index ID lowercased.
//   - An unreachable upstream still yields a page (its error variant); only
//     renderer or filesystem failures abort the export.
//   - If any page returns an error, cancels the rest and returns that error.
//
// Returns:
//   - error: first error encountered (if any).
func WritePages(ctx context.Context, svc service.DashboardService, indices []models.Index, dir string, parallel int) error {
	if len(indices) == 0 {
		return fmt.Errorf("no indices to export")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	log := logger.With("export")
	log.Info().Int("pages", len(indices)).Str("dir", dir).Msg("export start")

	// Concurrency: default to min(len(indices), NumCPU), or use provided clamp(1..len).
	maxParallel := len(indices)
	if parallel > 0 {
		if parallel > len(indices) {
			parallel = len(indices)
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	log.Info().Int("max_parallel", maxParallel).Msg("export configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, index := range indices {
		idx := i
		ix := index
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			name := pageFile(ix)
			log.Info().Int("idx", idx+1).Int("total", len(indices)).Str("file", name).Msg("page start")

			page, err := svc.IndexPage(gctx, ix)
			if err != nil {
				log.Error().Str("file", name).Dur("elapsed", time.Since(start)).Err(err).Msg("page failed")
				return fmt.Errorf("page %s: %w", ix.ID, err)
			}

			full := filepath.Join(dir, name)
			if err := os.WriteFile(full, page, 0o644); err != nil {
				log.Error().Str("file", name).Err(err).Msg("write failed")
				return fmt.Errorf("page %s: write %s: %w", ix.ID, full, err)
			}

			log.Info().Int("idx", idx+1).Int("total", len(indices)).Str("file", name).Int("bytes", len(page)).Dur("elapsed", time.Since(start)).Msg("page done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}
