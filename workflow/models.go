package workflow

import "time"

// StepStatus is one of the four workflow states a step moves through.
type StepStatus string

const (
	StatusNotStarted StepStatus = "notStarted"
	StatusInProgress StepStatus = "inProgress"
	StatusCompleted  StepStatus = "completed"
	StatusSkipped    StepStatus = "skipped"
)

// ValidStatus reports whether s is one of the known step states.
func ValidStatus(s StepStatus) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Step is one entry in the fixed linear preparation workflow.
type Step struct {
	ID        uint       `gorm:"primaryKey"`
	Key       string     `gorm:"size:64;not null;uniqueIndex"`
	Title     string     `gorm:"size:255;not null"`
	Position  int        `gorm:"not null"`
	Status    StepStatus `gorm:"size:32;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Step keys. The list is fixed; steps are never added or removed at runtime.
const (
	StepPrepareAPIDocs      = "prepare-api-docs"
	StepCollectCodeExamples = "collect-code-examples"
	StepGenerateDatasets    = "generate-datasets"
	StepFineTune            = "fine-tune"
)

// DefaultSteps seeds the workflow on first run.
var DefaultSteps = []Step{
	{Key: StepPrepareAPIDocs, Title: "Prepare API Documentation", Position: 1, Status: StatusNotStarted},
	{Key: StepCollectCodeExamples, Title: "Collect Code Examples", Position: 2, Status: StatusNotStarted},
	{Key: StepGenerateDatasets, Title: "Generate Datasets", Position: 3, Status: StatusNotStarted},
	{Key: StepFineTune, Title: "Run Fine-Tuning", Position: 4, Status: StatusNotStarted},
}
