package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/stager/models"
)

// listCmd: aiforge list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the staged files in the destination directories.",
	Long: `The 'list' subcommand scans the destination directories and prints every
staged .swift file. The listing is synthesized from what is on disk at call time,
so files added or removed outside aiforge show up too.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		handleListCommand(deps, cmd)
	},
}

func init() {
	listCmd.Flags().String("category", "", "Limit the listing to one category: 'api' or 'code'.")
	rootCmd.AddCommand(listCmd)
}

func handleListCommand(deps *RootDependencies, cmd *cobra.Command) {
	categoryFlag, _ := cmd.Flags().GetString("category")

	var categories []models.Category
	if categoryFlag != "" {
		category, err := models.ParseCategory(categoryFlag)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			return
		}
		categories = append(categories, category)
	}

	refs, err := deps.Stager.List(categories...)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	if len(refs) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No staged files."))
		return
	}

	data := pterm.TableData{{"Name", "Category", "Size", "Path"}}
	for _, ref := range refs {
		data = append(data, []string{
			ref.FileName,
			string(ref.Category),
			formatSize(ref.Size),
			ref.FilePath,
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("%d staged file(s)", len(refs))))
}

func formatSize(size int64) string {
	switch {
	case size >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	case size >= 1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
