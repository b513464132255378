package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/pipeline"
)

// generateCmd: aiforge generate [unified|api|examples]
var generateCmd = &cobra.Command{
	Use:   "generate [target]",
	Short: "Run the external Python dataset generation scripts.",
	Long: `The 'generate' subcommand runs one of the dataset generation scripts against
the staged destination directories. Targets: 'examples' (code examples dataset),
'api' (API reference dataset), 'unified' (combined dataset, the default). The
scripts write their artifacts under data/.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		target := "unified"
		if len(args) > 0 {
			target = args[0]
		}
		handleGenerateCommand(deps, target)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func handleGenerateCommand(deps *RootDependencies, target string) {
	var script string
	switch target {
	case "examples":
		script = deps.Config.Scripts.Examples
	case "api":
		script = deps.Config.Scripts.API
	case "unified":
		script = deps.Config.Scripts.Unified
	default:
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("unknown target %q (expected examples, api, or unified)", target)))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := pipeline.NewRunner(deps.Config.PythonBinary, deps.ProjectRoot)

	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Running %s dataset generation...", target)))
	if err := runner.RunScript(ctx, script); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	fmt.Println(lipgloss.Green.Render("✓ Dataset generation finished."))
}
