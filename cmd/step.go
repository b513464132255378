package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/stager"
	"aiforge/workflow"
)

// stepCmd: aiforge step <start|complete|skip|reset> <step-key>
var stepCmd = &cobra.Command{
	Use:   "step [action] [step-key]",
	Short: "Update a workflow step's status.",
	Long: `The 'step' subcommand moves one workflow step through its statuses.
Actions: start, complete, skip, reset. Step keys: prepare-api-docs,
collect-code-examples, generate-datasets, fine-tune. Use 'step reset all' to
reset the whole workflow.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		handleStepCommand(deps, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

var stepActions = map[string]workflow.StepStatus{
	"start":    workflow.StatusInProgress,
	"complete": workflow.StatusCompleted,
	"skip":     workflow.StatusSkipped,
	"reset":    workflow.StatusNotStarted,
}

func handleStepCommand(deps *RootDependencies, action, key string) {
	status, ok := stepActions[action]
	if !ok {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("unknown action %q (expected start, complete, skip, or reset)", action)))
		return
	}

	repo, err := openWorkflow(deps)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	if action == "reset" && key == "all" {
		if err := repo.ResetAll(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to reset workflow: %v", err)))
			return
		}
		fmt.Println(lipgloss.Green.Render("✓ Workflow reset."))
		return
	}

	// Completing the collection step requires at least one staged file.
	if status == workflow.StatusCompleted && key == workflow.StepCollectCodeExamples {
		counts, err := deps.Stager.Counts()
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to count staged files: %v", err)))
			return
		}
		if !stager.CanComplete(counts) {
			fmt.Println(lipgloss.Yellow.Render("Cannot complete: no files staged in either category yet."))
			return
		}
	}

	step, err := repo.SetStatus(key, status)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ %s → %s", step.Title, step.Status)))
}
