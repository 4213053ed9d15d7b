// Package batch holds the shared plumbing of the command-line tools:
// collecting input files, sizing the worker pool, and running independent
// per-file jobs.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Collect gathers regular files under root whose extension (without dot,
// case-insensitive) is in exts. A file root is returned as-is when it
// matches. Without recursive, only root's immediate entries are visited.
func Collect(root string, recursive bool, exts []string) ([]string, error) {
	lowered := make([]string, len(exts))
	for i, e := range exts {
		lowered[i] = strings.ToLower(e)
	}
	match := func(path string) bool {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		for _, e := range lowered {
			if ext == e {
				return true
			}
		}
		return false
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if match(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal for the batch.
			return nil
		}
		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if match(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// ParseWorkers parses a worker-count flag: an integer >= 1, or "auto" for
// one worker per available CPU.
func ParseWorkers(raw string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return 0, fmt.Errorf("empty value (use integer >= 1 or 'auto')")
	}
	if v == "auto" {
		return runtime.GOMAXPROCS(0), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q (use integer >= 1 or 'auto')", raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%d (must be >= 1 or 'auto')", n)
	}
	return n, nil
}

// Run executes fn for every path on a pool of workers. Each file is
// independent; fn errors are collected per path and do not stop the rest
// of the batch. Result ordering across workers is unspecified.
func Run(paths []string, workers int, fn func(path string) error) []error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	errs := make(chan error, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := fn(path); err != nil {
					errs <- fmt.Errorf("%s: %w", path, err)
				}
			}
		}()
	}
	for _, p := range paths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	close(errs)

	var out []error
	for err := range errs {
		out = append(out, err)
	}
	return out
}

// FormatSize renders a byte count in human-readable 1024-based units.
func FormatSize(bytes uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}

	if bytes == 0 {
		return "0 B"
	}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s (%d bytes)", size, units[unit], bytes)
}
