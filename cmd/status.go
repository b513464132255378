package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/stager"
	"aiforge/stager/models"
	"aiforge/workflow"
)

// statusCmd: aiforge status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workflow progress and staged file counts.",
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		handleStatusCommand(deps)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func handleStatusCommand(deps *RootDependencies) {
	repo, err := openWorkflow(deps)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	steps, err := repo.List()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to list workflow steps: %v", err)))
		return
	}

	data := pterm.TableData{{"#", "Step", "Status"}}
	for _, step := range steps {
		data = append(data, []string{
			fmt.Sprintf("%d", step.Position),
			step.Title,
			renderStatus(step.Status),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	counts, err := deps.Stager.Counts()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to count staged files: %v", err)))
		return
	}

	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("API documentation: %d file(s), code examples: %d file(s)",
		counts[models.APIDocumentation], counts[models.CodeExamples])))

	if stager.CanComplete(counts) {
		fmt.Println(lipgloss.Green.Render("✓ Collection step can be completed."))
	} else {
		fmt.Println(lipgloss.Yellow.Render("Stage at least one file before completing the collection step."))
	}
}

func renderStatus(status workflow.StepStatus) string {
	switch status {
	case workflow.StatusCompleted:
		return lipgloss.Green.Render("completed")
	case workflow.StatusInProgress:
		return lipgloss.BlueSky.Render("in progress")
	case workflow.StatusSkipped:
		return lipgloss.Gray.Render("skipped")
	default:
		return lipgloss.Yellow.Render("not started")
	}
}
