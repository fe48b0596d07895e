package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var fileLog = logger.New("registry:file")

// FileRegistry reads display names from component description files. Each
// file is JSON or YAML holding a list whose entries are either names or
// objects with a displayName field.
type FileRegistry struct {
	root     string
	patterns []string

	mu    sync.RWMutex
	names []string
}

// NewFileRegistry returns a registry for the doublestar patterns, resolved
// against root unless absolute. Call Load before use.
func NewFileRegistry(root string, patterns ...string) *FileRegistry {
	return &FileRegistry{root: root, patterns: patterns}
}

// Load reads every matching file and replaces the current snapshot. On error
// the previous snapshot is kept.
func (r *FileRegistry) Load() error {
	var names []string
	seen := make(map[string]bool)

	for _, pattern := range r.patterns {
		paths, err := r.expand(pattern)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fileNames, err := readNames(path)
			if err != nil {
				return err
			}
			for _, name := range fileNames {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}

	r.mu.Lock()
	r.names = names
	r.mu.Unlock()

	fileLog.Printf("Loaded %d component names from %d patterns", len(names), len(r.patterns))
	return nil
}

// DisplayNames returns a copy of the last loaded snapshot.
func (r *FileRegistry) DisplayNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// expand resolves pattern to file paths. A pattern that matches nothing is
// an error, so a mistyped path does not silently empty the registry.
func (r *FileRegistry) expand(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	base := filepath.ToSlash(r.root)
	if filepath.IsAbs(pattern) || base == "" {
		base, pattern = doublestar.SplitPattern(pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid registry pattern: %s", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(base), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to expand registry pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("registry pattern matched no files: %s", filepath.Join(base, pattern))
	}

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(base, filepath.FromSlash(m))
	}
	fileLog.Printf("Pattern %s matched %d files", pattern, len(paths))
	return paths, nil
}

func readNames(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("registry file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	var entries []any
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		switch e := entry.(type) {
		case string:
			if e != "" {
				names = append(names, e)
			}
		case map[string]any:
			name, ok := e["displayName"].(string)
			if !ok {
				return nil, fmt.Errorf("registry file %s: entry %d has no string displayName", path, i)
			}
			if name != "" {
				names = append(names, name)
			}
		default:
			return nil, fmt.Errorf("registry file %s: entry %d must be a string or an object, got %T", path, i, entry)
		}
	}
	return names, nil
}
