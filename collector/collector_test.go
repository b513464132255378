package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiforge/stager/models"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// Collecting an individual .swift file returns exactly that file.
func TestCollect_SingleFile(t *testing.T) {
	tempDir := t.TempDir()
	swiftFile := filepath.Join(tempDir, "API.swift")
	writeFile(t, swiftFile, "import SwiftUI")

	c := NewCollector()
	result := c.Collect([]string{swiftFile}, models.APIDocumentation)

	require.Len(t, result.Files, 1)
	assert.Equal(t, swiftFile, result.Files[0].Path)
	assert.Equal(t, models.APIDocumentation, result.Files[0].Category)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Failures)
}

// Extension matching is case-insensitive: Foo.SWIFT passes, Foo.txt fails.
func TestCollect_ExtensionValidation(t *testing.T) {
	tempDir := t.TempDir()
	upper := filepath.Join(tempDir, "Foo.SWIFT")
	txt := filepath.Join(tempDir, "Foo.txt")
	writeFile(t, upper, "struct Foo {}")
	writeFile(t, txt, "not swift")

	c := NewCollector()

	result := c.Collect([]string{upper}, models.CodeExamples)
	require.Len(t, result.Files, 1)
	assert.Empty(t, result.Failures)

	result = c.Collect([]string{txt}, models.CodeExamples)
	assert.Empty(t, result.Files)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, ErrInvalidExtension)
}

// A recursive walk finds every eligible file regardless of nesting depth and
// none of the ineligible ones.
func TestCollect_RecursiveDiscovery(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "Anim", "A.swift"), "// a")
	writeFile(t, filepath.Join(tempDir, "Data", "B.swift"), "// b")
	writeFile(t, filepath.Join(tempDir, "Data", "Deep", "Nested", "C.swift"), "// c")
	writeFile(t, filepath.Join(tempDir, "README.md"), "# readme")
	writeFile(t, filepath.Join(tempDir, "Data", "notes.txt"), "notes")

	c := NewCollector()
	result := c.Collect([]string{tempDir}, models.CodeExamples)

	require.Len(t, result.Files, 3)
	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.Path)
		assert.Equal(t, filepath.Base(tempDir), f.Group)
	}
	assert.Contains(t, paths, filepath.Join(tempDir, "Anim", "A.swift"))
	assert.Contains(t, paths, filepath.Join(tempDir, "Data", "B.swift"))
	assert.Contains(t, paths, filepath.Join(tempDir, "Data", "Deep", "Nested", "C.swift"))
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Failures)
}

// Hidden files and hidden directories never cross the interface.
func TestCollect_SkipsHiddenEntries(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "Visible.swift"), "// v")
	writeFile(t, filepath.Join(tempDir, ".Hidden.swift"), "// h")
	writeFile(t, filepath.Join(tempDir, ".build", "Generated.swift"), "// g")

	c := NewCollector()
	result := c.Collect([]string{tempDir}, models.CodeExamples)

	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(tempDir, "Visible.swift"), result.Files[0].Path)
}

// A folder with no eligible files yields a warning, not a failure, and does
// not disturb sibling inputs.
func TestCollect_EmptyFolderWarning(t *testing.T) {
	emptyDir := t.TempDir()
	fullDir := t.TempDir()
	writeFile(t, filepath.Join(fullDir, "A.swift"), "// a")

	c := NewCollector()
	result := c.Collect([]string{emptyDir, fullDir}, models.CodeExamples)

	require.Len(t, result.Files, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], emptyDir)
	assert.Empty(t, result.Failures)
}

// A missing input is reported per-input while the rest of the batch proceeds.
// The failure says "not found", not "unreadable directory", since the input
// may just as well name a file.
func TestCollect_MissingInputDoesNotAbortBatch(t *testing.T) {
	tempDir := t.TempDir()
	swiftFile := filepath.Join(tempDir, "A.swift")
	writeFile(t, swiftFile, "// a")
	missingFile := filepath.Join(tempDir, "Missing.swift")
	missingDir := filepath.Join(tempDir, "does-not-exist")

	c := NewCollector()
	result := c.Collect([]string{missingDir, missingFile, swiftFile}, models.APIDocumentation)

	require.Len(t, result.Files, 1)
	assert.Equal(t, swiftFile, result.Files[0].Path)
	require.Len(t, result.Failures, 2)
	for i, missing := range []string{missingDir, missingFile} {
		assert.ErrorIs(t, result.Failures[i].Err, ErrInputNotFound)
		assert.NotErrorIs(t, result.Failures[i].Err, ErrDirectoryUnreadable)
		assert.Equal(t, missing, result.Failures[i].Path)
	}
}

// The result is deduplicated by absolute path, first seen wins.
func TestCollect_Deduplication(t *testing.T) {
	tempDir := t.TempDir()
	swiftFile := filepath.Join(tempDir, "A.swift")
	writeFile(t, swiftFile, "// a")

	c := NewCollector()
	result := c.Collect([]string{swiftFile, swiftFile, tempDir}, models.CodeExamples)

	require.Len(t, result.Files, 1)
	// The file was first seen as an individual input, so it keeps that
	// input's empty group.
	assert.Equal(t, "", result.Files[0].Group)
}

// Collection is read-only: the source tree is untouched afterwards.
func TestCollect_DoesNotMutateSources(t *testing.T) {
	tempDir := t.TempDir()
	swiftFile := filepath.Join(tempDir, "A.swift")
	writeFile(t, swiftFile, "// a")

	c := NewCollector()
	_ = c.Collect([]string{tempDir}, models.CodeExamples)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	content, err := os.ReadFile(swiftFile)
	require.NoError(t, err)
	assert.Equal(t, "// a", string(content))
}

func TestHasSwiftExtension(t *testing.T) {
	assert.True(t, HasSwiftExtension("Foo.swift"))
	assert.True(t, HasSwiftExtension("Foo.SWIFT"))
	assert.True(t, HasSwiftExtension("Foo.Swift"))
	assert.False(t, HasSwiftExtension("Foo.txt"))
	assert.False(t, HasSwiftExtension("Fooswift"))
	assert.False(t, HasSwiftExtension("Foo"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".DS_Store"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("Visible.swift"))
}
