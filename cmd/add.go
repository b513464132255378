package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/stager/models"
)

// addCmd: aiforge add <path>... --category api|code
var addCmd = &cobra.Command{
	Use:   "add [paths...]",
	Short: "Collect .swift sources and stage them into their category's destination.",
	Long: `The 'add' subcommand validates each given path (file or folder), expands
folders recursively, and copies every eligible .swift file into the destination
directory for the chosen category. Failures on individual inputs are reported
alongside the files that staged successfully; one bad input never aborts the batch.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		handleAddCommand(deps, cmd, args)
	},
}

func init() {
	addCmd.Flags().String("category", "", "Target category: 'api' (API documentation) or 'code' (code examples).")
	addCmd.Flags().String("group", "", "Code-examples subdirectory to stage into (defaults to each source folder's name).")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}

func handleAddCommand(deps *RootDependencies, cmd *cobra.Command, args []string) {
	categoryFlag, _ := cmd.Flags().GetString("category")
	group, _ := cmd.Flags().GetString("group")

	category, err := models.ParseCategory(categoryFlag)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true)

	spinnerCollect, _ := spinner.Start("Collecting sources...")
	collected := deps.Collector.Collect(args, category)
	spinnerCollect.Stop()
	fmt.Print("\r")

	for _, warning := range collected.Warnings {
		fmt.Println(lipgloss.Yellow.Render("⚠ " + warning))
	}
	for _, failure := range collected.Failures {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("✗ %s: %v", failure.Path, failure.Err)))
	}

	if len(collected.Files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("Nothing to stage."))
		return
	}

	if group != "" {
		for i := range collected.Files {
			collected.Files[i].Group = group
		}
	}

	spinnerStage, _ := spinner.Start(fmt.Sprintf("Staging %d file(s)...", len(collected.Files)))
	result := deps.Stager.StageBatch(collected.Files)
	spinnerStage.Stop()
	fmt.Print("\r")

	for _, failure := range result.Failures {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("✗ %s: %v", failure.Path, failure.Err)))
	}

	if len(result.References) > 0 {
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Staged %d file(s) into %s",
			len(result.References), deps.Stager.DestinationDir(category))))
	}
	if len(result.Failures) > 0 || len(collected.Failures) > 0 {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%d input(s) failed.",
			len(result.Failures)+len(collected.Failures))))
	}
}
