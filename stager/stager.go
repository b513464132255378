package stager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"aiforge/collector"
	"aiforge/stager/models"
)

// Error kinds surfaced per staged file. Callers match with errors.Is.
var (
	ErrSourceNotFound = errors.New("source file no longer exists")
	ErrCopyFailed     = errors.New("failed to copy file into destination")
	ErrFileNotFound   = errors.New("staged file not found")
	ErrNotAFile       = errors.New("reference does not name a regular file")
	ErrInvalidGroup   = errors.New("group must be a single directory name")
)

// DirNames configures the two destination directory names. The defaults match
// what the downstream dataset scripts expect; both are overridable so nothing
// in this package relies on process-wide constants.
type DirNames struct {
	CodeExamples    string
	APITrainingData string
}

// DefaultDirNames returns the directory names the external scripts consume.
func DefaultDirNames() DirNames {
	return DirNames{
		CodeExamples:    "code_examples",
		APITrainingData: "api_training_data",
	}
}

// Stager copies eligible files into their category's destination directory and
// synthesizes references from what is on disk. The directory trees themselves
// are the durable state: there is no index file and no cache, so listings
// always reflect filesystem truth, including out-of-process changes.
type Stager struct {
	ProjectRoot string
	Dirs        DirNames
}

func NewStager(projectRoot string, dirs DirNames) *Stager {
	if dirs.CodeExamples == "" {
		dirs.CodeExamples = DefaultDirNames().CodeExamples
	}
	if dirs.APITrainingData == "" {
		dirs.APITrainingData = DefaultDirNames().APITrainingData
	}
	return &Stager{ProjectRoot: projectRoot, Dirs: dirs}
}

// DestinationDir resolves the fixed destination for a category: code examples
// live under the project root, API training data one level above it.
func (s *Stager) DestinationDir(category models.Category) string {
	if category == models.APIDocumentation {
		return filepath.Join(filepath.Dir(s.ProjectRoot), s.Dirs.APITrainingData)
	}
	return filepath.Join(s.ProjectRoot, s.Dirs.CodeExamples)
}

// Stage copies one source file into its category's destination, preserving the
// base name. For code examples, group names the destination subdirectory; the
// API destination is flat and ignores it.
//
// Duplicate policy: an existing destination file with identical content makes
// the call a no-op returning the existing file's reference; differing content
// is overwritten. Either way re-adding the same source is idempotent.
func (s *Stager) Stage(sourcePath string, category models.Category, group string) (*models.SourceFileReference, error) {
	if !validGroup(group) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroup, group)
	}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	hash := xxh3.Hash(content)

	destDir := s.DestinationDir(category)
	if category == models.CodeExamples && group != "" {
		destDir = filepath.Join(destDir, group)
	}

	// Safe under concurrent sibling calls: creating an existing directory
	// is not an error.
	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	destPath := filepath.Join(destDir, filepath.Base(sourcePath))

	if existing, err := os.ReadFile(destPath); err == nil && xxh3.Hash(existing) == hash {
		info, err := os.Stat(destPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
		}
		return newReference(destPath, info.Size(), hash, category, info.ModTime()), nil
	}

	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	return newReference(destPath, int64(len(content)), hash, category, time.Now()), nil
}

// BatchResult carries every reference a batch produced plus the per-file
// failures, so one bad input never discards its siblings' progress.
type BatchResult struct {
	References []models.SourceFileReference
	Failures   []collector.InputFailure
}

// StageBatch stages every collected file, accumulating failures per file. All
// copies complete, successfully or with an individually-recorded failure,
// before the batch is reported back.
func (s *Stager) StageBatch(files []collector.CollectedFile) BatchResult {
	var result BatchResult
	for _, f := range files {
		ref, err := s.Stage(f.Path, f.Category, f.Group)
		if err != nil {
			result.Failures = append(result.Failures, collector.InputFailure{Path: f.Path, Err: err})
			continue
		}
		result.References = append(result.References, *ref)
	}
	return result
}

// List synthesizes references from the destination directories' live contents.
// With no categories given it scans both. The code-examples tree is organized
// into subdirectories and scanned recursively; the API destination is flat. A
// destination that does not exist yet yields an empty list, not an error.
func (s *Stager) List(categories ...models.Category) ([]models.SourceFileReference, error) {
	if len(categories) == 0 {
		categories = models.Categories
	}

	var refs []models.SourceFileReference
	for _, category := range categories {
		dir := s.DestinationDir(category)
		var (
			found []models.SourceFileReference
			err   error
		)
		if category == models.APIDocumentation {
			found, err = listFlat(dir, category)
		} else {
			found, err = listRecursive(dir, category)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list %s destination: %w", category, err)
		}
		refs = append(refs, found...)
	}
	return refs, nil
}

// Counts returns the number of staged files per category.
func (s *Stager) Counts() (map[models.Category]int, error) {
	counts := make(map[models.Category]int)
	for _, category := range models.Categories {
		refs, err := s.List(category)
		if err != nil {
			return nil, err
		}
		counts[category] = len(refs)
	}
	return counts, nil
}

// Remove deletes exactly the file the reference names. It never removes the
// containing directory, even when the deletion leaves it empty. An
// already-missing file surfaces ErrFileNotFound; callers that want idempotent
// removal treat that as success.
func (s *Stager) Remove(ref models.SourceFileReference) error {
	return s.RemoveByPath(ref.FilePath)
}

// RemoveByPath removes a staged file by its absolute path.
func (s *Stager) RemoveByPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// CanComplete reports whether the collection step can be marked complete:
// at least one category must hold at least one staged file.
func CanComplete(counts map[models.Category]int) bool {
	for _, n := range counts {
		if n > 0 {
			return true
		}
	}
	return false
}

func listFlat(dir string, category models.Category) ([]models.SourceFileReference, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var refs []models.SourceFileReference
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if collector.IsHidden(entry.Name()) || !collector.HasSwiftExtension(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			// File vanished between the scan and the read.
			continue
		}
		refs = append(refs, *newReference(path, info.Size(), xxh3.Hash(content), category, info.ModTime()))
	}
	return refs, nil
}

func listRecursive(dir string, category models.Category) ([]models.SourceFileReference, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var refs []models.SourceFileReference
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if collector.IsHidden(d.Name()) && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !collector.HasSwiftExtension(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			// File vanished between the scan and the read.
			return nil
		}
		refs = append(refs, *newReference(path, info.Size(), xxh3.Hash(content), category, info.ModTime()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// validGroup accepts only a single clean path element, so a staged path can
// never resolve outside the category's destination directory.
func validGroup(group string) bool {
	if group == "" {
		return true
	}
	if group == "." || group == ".." {
		return false
	}
	if strings.ContainsAny(group, `/\`) {
		return false
	}
	return group == filepath.Clean(group)
}

func newReference(path string, size int64, hash uint64, category models.Category, createdAt time.Time) *models.SourceFileReference {
	return &models.SourceFileReference{
		ID:        uuid.NewString(),
		FileName:  filepath.Base(path),
		FilePath:  path,
		Size:      size,
		Hash:      hash,
		Category:  category,
		CreatedAt: createdAt,
	}
}
