package workflow

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) StepRepository {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), ".aiforge", "workflow.db"))
	require.NoError(t, err)
	return NewStepRepository(db)
}

// A fresh database is seeded with the fixed step list in order.
func TestInit_SeedsDefaultSteps(t *testing.T) {
	repo := newTestRepository(t)

	steps, err := repo.List()
	require.NoError(t, err)
	require.Len(t, steps, len(DefaultSteps))

	for i, step := range steps {
		assert.Equal(t, DefaultSteps[i].Key, step.Key)
		assert.Equal(t, i+1, step.Position)
		assert.Equal(t, StatusNotStarted, step.Status)
	}
}

// Reopening the database does not duplicate the seed.
func TestInit_SeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.db")

	db, err := Init(path)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err = Init(path)
	require.NoError(t, err)

	steps, err := NewStepRepository(db).List()
	require.NoError(t, err)
	assert.Len(t, steps, len(DefaultSteps))
}

func TestSetStatus(t *testing.T) {
	repo := newTestRepository(t)

	step, err := repo.SetStatus(StepCollectCodeExamples, StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, step.Status)

	step, err = repo.GetByKey(StepCollectCodeExamples)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, step.Status)

	// Other steps are untouched.
	other, err := repo.GetByKey(StepFineTune)
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, other.Status)
}

func TestSetStatus_Invalid(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.SetStatus(StepFineTune, StepStatus("paused"))
	assert.Error(t, err)

	_, err = repo.SetStatus("no-such-step", StatusCompleted)
	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestResetAll(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.SetStatus(StepPrepareAPIDocs, StatusCompleted)
	require.NoError(t, err)
	_, err = repo.SetStatus(StepGenerateDatasets, StatusSkipped)
	require.NoError(t, err)

	require.NoError(t, repo.ResetAll())

	steps, err := repo.List()
	require.NoError(t, err)
	for _, step := range steps {
		assert.Equal(t, StatusNotStarted, step.Status)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusNotStarted))
	assert.True(t, ValidStatus(StatusInProgress))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusSkipped))
	assert.False(t, ValidStatus(StepStatus("done")))
}
