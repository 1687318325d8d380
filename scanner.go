package jsxspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // files matched by the glob patterns
	FilesScanned    int // files kept after filtering
	FilesSkipped    int // dependency, bundled or ignored files
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads ./.gitignore once. A missing file is not an error.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isBundled reports paths that are never hand-written sources: installed
// dependencies and minified bundles.
func isBundled(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" {
			return true
		}
	}
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".min.js") || strings.HasSuffix(base, ".min.jsx")
}

// shouldSkipFile reports whether path is excluded from scanning. The
// .gitignore only applies to relative paths.
func shouldSkipFile(path string) bool {
	if isBundled(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandGlobPatternsWithStats expands doublestar globs into a deduplicated
// list of regular files.
func expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}
