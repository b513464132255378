package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/stager"
	"aiforge/utils"
)

// removeCmd: aiforge remove <stagedPath>...
var removeCmd = &cobra.Command{
	Use:   "remove [stagedPaths...]",
	Short: "Remove staged files from their destination directory.",
	Long: `The 'remove' subcommand deletes the named staged files. Only the files are
removed; the containing directories stay, even when they become empty. A file
that is already gone counts as removed, so retries are safe.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		handleRemoveCommand(deps, cmd, args)
	},
}

func init() {
	removeCmd.Flags().BoolP("force", "f", false, "Remove without confirmation.")
	rootCmd.AddCommand(removeCmd)
}

func handleRemoveCommand(deps *RootDependencies, cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")
	reader := bufio.NewReader(os.Stdin)

	removed := 0
	for _, path := range args {
		if !force {
			accepted, err := utils.ConfirmPrompt(fmt.Sprintf("Remove %s?", path), reader)
			if err != nil {
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
				continue
			}
			if !accepted {
				fmt.Println(lipgloss.Yellow.Render("Skipped " + path))
				continue
			}
		}

		err := deps.Stager.RemoveByPath(path)
		switch {
		case err == nil:
			removed++
		case errors.Is(err, stager.ErrFileNotFound):
			// Already gone: the end state matches intent.
			fmt.Println(lipgloss.Yellow.Render("Already removed: " + path))
			removed++
		default:
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("✗ %v", err)))
		}
	}

	if removed > 0 {
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Removed %d file(s)", removed)))
	}
}
