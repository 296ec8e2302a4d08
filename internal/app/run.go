package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Run scans the configured root for chart files and rewrites the ones
// that need it. Per-file failures are counted and logged, never fatal;
// the returned error only covers an unusable root. Files are processed
// independently, so cfg.Workers of them may run at once.
func (a *App) Run(ctx context.Context) (*Stats, error) {
	info, err := a.fs.Stat(a.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid root %s: %w", a.cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid root %s: not a directory", a.cfg.Root)
	}

	stats := &Stats{}

	// traversal trouble is local, like any other per-file error: count
	// it, skip the entry, keep walking
	var paths []string
	_ = afero.Walk(a.fs, a.cfg.Root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			atomic.AddInt64(&stats.Errors, 1)
			log.Errorf("%s: %v", path, err)
			if fi != nil && fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !fi.IsDir() && matchesExt(fi.Name()) {
			paths = append(paths, path)
		}
		return nil
	})

	log.Infof("scanning %s: %d files to examine", a.cfg.Root, len(paths))

	workers := a.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				// shutdown requested, skip remaining files
				return nil
			default:
			}
			a.handleFile(path, stats)
			return nil
		})
	}
	_ = g.Wait()

	log.Infof("examined %d files: %d modified, %d errors",
		atomic.LoadInt64(&stats.Examined),
		atomic.LoadInt64(&stats.Modified),
		atomic.LoadInt64(&stats.Errors))

	return stats, nil
}

func (a *App) handleFile(path string, stats *Stats) {
	atomic.AddInt64(&stats.Examined, 1)

	changed, err := a.processFile(path)
	switch {
	case err != nil:
		atomic.AddInt64(&stats.Errors, 1)
		log.Errorf("%s: %v", path, err)
	case changed:
		atomic.AddInt64(&stats.Modified, 1)
		log.Infof("modified %s", path)
	default:
		log.Debugf("unchanged %s", path)
	}
}
