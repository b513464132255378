package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiforge/stager"
	"aiforge/stager/models"
)

func newTestWatcher(t *testing.T) (*stager.Stager, <-chan Event) {
	t.Helper()

	base := t.TempDir()
	projectRoot := filepath.Join(base, "proj")
	require.NoError(t, os.MkdirAll(projectRoot, 0755))

	s := stager.NewStager(projectRoot, stager.DefaultDirNames())
	require.NoError(t, os.MkdirAll(s.DestinationDir(models.APIDocumentation), 0755))
	require.NoError(t, os.MkdirAll(s.DestinationDir(models.CodeExamples), 0755))

	w, err := NewDestinationWatcher(s)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events, err := w.Watch(ctx)
	require.NoError(t, err)

	return s, events
}

// waitForEvent waits for a specific (path, op) pair, skipping unrelated
// events; a single write can emit both a create and a modify.
func waitForEvent(t *testing.T, events <-chan Event, path string, op Op) Event {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if event.Path == path && event.Op == op {
				return event
			}
		case <-deadline:
			t.Fatalf("no %s event for %s", op, path)
		}
	}
}

// A .swift file dropped into the API destination out-of-process is reported
// with its category.
func TestWatch_ReportsAPIDestinationChanges(t *testing.T) {
	s, events := newTestWatcher(t)

	path := filepath.Join(s.DestinationDir(models.APIDocumentation), "New.swift")
	require.NoError(t, os.WriteFile(path, []byte("// new"), 0644))

	event := waitForEvent(t, events, path, FileCreated)
	assert.Equal(t, models.APIDocumentation, event.Category)
}

// Removals under the code-examples tree are reported too.
func TestWatch_ReportsRemovals(t *testing.T) {
	s, events := newTestWatcher(t)

	path := filepath.Join(s.DestinationDir(models.CodeExamples), "Gone.swift")
	require.NoError(t, os.WriteFile(path, []byte("// gone"), 0644))
	waitForEvent(t, events, path, FileCreated)

	require.NoError(t, os.Remove(path))
	event := waitForEvent(t, events, path, FileRemoved)
	assert.Equal(t, models.CodeExamples, event.Category)
}

// Non-swift and hidden files never produce events.
func TestWatch_FiltersIneligibleFiles(t *testing.T) {
	s, events := newTestWatcher(t)

	apiDir := s.DestinationDir(models.APIDocumentation)
	require.NoError(t, os.WriteFile(filepath.Join(apiDir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(apiDir, ".hidden.swift"), []byte("x"), 0644))

	select {
	case event := <-events:
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "created", FileCreated.String())
	assert.Equal(t, "modified", FileModified.String())
	assert.Equal(t, "removed", FileRemoved.String())
}
