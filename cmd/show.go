package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/utils"
)

// showCmd: aiforge show <stagedPath>
var showCmd = &cobra.Command{
	Use:   "show [stagedPath]",
	Short: "Preview a staged Swift file with syntax highlighting.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		if err := utils.RenderSwiftFile(os.Stdout, args[0], deps.Config.Theme); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
