// Package driver connects the formatting engine to the filesystem:
// collecting Modelica sources, formatting them in parallel, and
// skipping files the result cache already knows to be clean.
package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"mofmt/internal/format"
)

// FormatOptions configures a formatting batch.
type FormatOptions struct {
	Check   bool
	Stdout  bool
	Jobs    int
	NoCache bool
	Options format.Options
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the given files or directories (recursively
// collecting .mo files). When opts.Check is true, files are not
// modified; Changed indicates whether formatting would update them.
// When opts.Stdout is true, formatted content is returned in the
// results without touching files on disk. Per-file failures land in
// FormatResult.Err; the batch keeps going.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no Modelica source files found")
	}

	var cache *FormatCache
	if !opts.NoCache {
		// A broken cache only costs the shortcut, never the run.
		if c, cacheErr := OpenFormatCache("mofmt"); cacheErr == nil {
			cache = c
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Index-addressed slots, so the goroutines never share a result.
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOneFile(path, opts, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatOneFile(path string, opts FormatOptions, cache *FormatCache) FormatResult {
	res := FormatResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	if cache.IsFormatted(sha256.Sum256(data), opts.Options) {
		if opts.Stdout {
			res.Formatted = data
		}
		return res
	}

	formatted := []byte(format.Format(string(data), opts.Options))
	changed := !bytes.Equal(data, formatted)

	// Record the output digest: content matching it is a fixed point of
	// the current options and can skip the pipeline next run.
	_ = cache.Record(sha256.Sum256(formatted), opts.Options)

	switch {
	case opts.Check:
		res.Changed = changed
	case opts.Stdout:
		res.Formatted = formatted
		res.Changed = changed
	default:
		if changed {
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if writeErr := os.WriteFile(path, formatted, mode.Perm()); writeErr != nil {
				res.Err = writeErr
				return res
			}
			res.Changed = true
		}
	}
	return res
}

func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == ".mo" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if filepath.Ext(p) == ".mo" {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}
