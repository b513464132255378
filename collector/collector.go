package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"aiforge/stager/models"
)

// SwiftExtension is the only extension either side of the staging contract
// recognizes. Matching is case-insensitive.
const SwiftExtension = ".swift"

// Error kinds surfaced per input. Callers match with errors.Is.
var (
	ErrInvalidExtension    = errors.New("file does not have the .swift extension")
	ErrDirectoryUnreadable = errors.New("directory cannot be read")
	ErrInputNotFound       = errors.New("input path does not exist")
)

// CollectedFile is one eligible source file tagged with its category and the
// destination subdirectory it belongs to (empty for flat destinations).
type CollectedFile struct {
	Path     string
	Group    string
	Category models.Category
}

// InputFailure records a rejected input alongside the reason.
type InputFailure struct {
	Path string
	Err  error
}

// Result carries the best-effort outcome of a collection batch: every eligible
// file found, plus per-input warnings and failures. A failed input never
// discards what sibling inputs contributed.
type Result struct {
	Files    []CollectedFile
	Warnings []string
	Failures []InputFailure
}

// Collector expands user-chosen paths into a validated, deduplicated list of
// eligible source files. It never copies or mutates anything.
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

// Collect validates each input path and expands directories recursively.
// Individual files must carry the recognized extension; directories are walked
// in enumeration order, skipping hidden entries and non-regular files. The
// final list is deduplicated by absolute path, first seen wins.
func (c *Collector) Collect(paths []string, category models.Category) Result {
	var result Result
	seen := make(map[string]bool)

	appendFile := func(path, group string) {
		if seen[path] {
			return
		}
		seen[path] = true
		result.Files = append(result.Files, CollectedFile{
			Path:     path,
			Group:    group,
			Category: category,
		})
	}

	for _, inputPath := range paths {
		absPath, err := filepath.Abs(inputPath)
		if err != nil {
			result.Failures = append(result.Failures, InputFailure{
				Path: inputPath,
				Err:  fmt.Errorf("failed to resolve path: %w", err),
			})
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			// A path that does not exist is not a readability problem;
			// it may just as well name a file.
			kind := ErrDirectoryUnreadable
			if os.IsNotExist(err) {
				kind = ErrInputNotFound
			}
			result.Failures = append(result.Failures, InputFailure{
				Path: inputPath,
				Err:  fmt.Errorf("%w: %v", kind, err),
			})
			continue
		}

		if !info.IsDir() {
			if !HasSwiftExtension(absPath) {
				result.Failures = append(result.Failures, InputFailure{
					Path: inputPath,
					Err:  fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath),
				})
				continue
			}
			appendFile(absPath, "")
			continue
		}

		found, err := c.walkFolder(absPath, filepath.Base(absPath), appendFile)
		if err != nil {
			result.Failures = append(result.Failures, InputFailure{
				Path: inputPath,
				Err:  fmt.Errorf("%w: %v", ErrDirectoryUnreadable, err),
			})
			continue
		}
		if found == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no .swift files found in %s", inputPath))
		}
	}

	return result
}

// walkFolder recursively collects eligible files under root, reporting how
// many it found. Hidden directories are pruned whole.
func (c *Collector) walkFolder(root, group string, appendFile func(path, group string)) (int, error) {
	found := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if IsHidden(d.Name()) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip directories and anything that is not a regular file
		// (sockets, devices; symlinks follow the platform default).
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if !HasSwiftExtension(path) {
			return nil
		}

		appendFile(path, group)
		found++
		return nil
	})
	if err != nil {
		return found, err
	}

	return found, nil
}

// HasSwiftExtension reports whether path ends in the recognized extension,
// ignoring case, so Foo.SWIFT passes and Foo.txt does not.
func HasSwiftExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SwiftExtension)
}

// IsHidden reports whether a file or directory name starts with the
// hidden-file marker.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
