package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultImportPatterns select the entry files an import scans for.
var DefaultImportPatterns = []string{"**/*.yml", "**/*.yaml", "**/*.json"}

// ImportStats summarizes one import run.
type ImportStats struct {
	Files    int
	Imported int
	Skipped  int
}

// ProgressFunc is called once per processed file during an import.
type ProgressFunc func(path string)

// ImportDir walks root for entry files matching the given doublestar
// patterns and creates an entry per record. Files that fail to parse
// are skipped, not fatal; the caller decides what to do with the stats.
func ImportDir(ctx context.Context, store *Store, root string, patterns []string, progress ProgressFunc) (*ImportStats, error) {
	if len(patterns) == 0 {
		patterns = DefaultImportPatterns
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	stats := &ImportStats{}
	for _, path := range files {
		if progress != nil {
			progress(path)
		}
		stats.Files++

		entries, err := parseEntryFile(path)
		if err != nil {
			stats.Skipped++
			continue
		}
		for _, e := range entries {
			if e.Question == "" || e.Answer == "" {
				stats.Skipped++
				continue
			}
			if _, err := store.Create(ctx, e); err != nil {
				return stats, fmt.Errorf("importing from %s: %w", path, err)
			}
			stats.Imported++
		}
	}
	return stats, nil
}

// parseEntryFile reads one YAML or JSON file holding a list of entries.
func parseEntryFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return entries, nil
}
