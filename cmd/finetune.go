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

// finetuneCmd: aiforge finetune
var finetuneCmd = &cobra.Command{
	Use:   "finetune",
	Short: "Run the external fine-tuning script against the generated datasets.",
	Long: `The 'finetune' subcommand runs the fine-tuning script on the datasets the
'generate' step produced. Use --mlx to train with the MLX backend instead of the
default one, and --setup to run the MLX environment setup script first.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		mlx, _ := cmd.Flags().GetBool("mlx")
		setup, _ := cmd.Flags().GetBool("setup")
		handleFinetuneCommand(deps, mlx, setup)
	},
}

func init() {
	finetuneCmd.Flags().Bool("mlx", false, "Train with the MLX backend.")
	finetuneCmd.Flags().Bool("setup", false, "Run the MLX environment setup script before training.")
	rootCmd.AddCommand(finetuneCmd)
}

func handleFinetuneCommand(deps *RootDependencies, mlx, setup bool) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := pipeline.NewRunner(deps.Config.PythonBinary, deps.ProjectRoot)

	if setup {
		fmt.Println(lipgloss.Info.Render("Running MLX environment setup..."))
		if err := runner.RunScript(ctx, deps.Config.Scripts.SetupMLX); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			return
		}
	}

	script := deps.Config.Scripts.FineTune
	if mlx {
		script = deps.Config.Scripts.FineTuneMLX
	}

	fmt.Println(lipgloss.Info.Render("Running fine-tuning..."))
	if err := runner.RunScript(ctx, script); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	fmt.Println(lipgloss.Green.Render("✓ Fine-tuning finished."))
}
