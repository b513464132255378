package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"aiforge/collector"
	"aiforge/config"
	"aiforge/constants/lipgloss"
	"aiforge/stager"
	"aiforge/workflow"
)

// RootDependencies holds the components every subcommand works against.
type RootDependencies struct {
	Config      *config.Config
	ProjectRoot string
	Collector   *collector.Collector
	Stager      *stager.Stager
}

var rootCmd = &cobra.Command{
	Use:   "aiforge",
	Short: "Prepare Swift source material for fine-tuning datasets.",
	Long: `aiforge walks you through preparing Swift source material for fine-tuning:
collect .swift sources, stage them into the destination directories the dataset
scripts consume, track workflow progress, and run the generation scripts.`,
}

func init() {
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			deps := handleRootCommand(cmd)
			fmt.Println(deps.Config.Version)
			return
		}
		_ = cmd.Help()
	}
	config.InitFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

// handleRootCommand resolves the project root, loads configuration, and wires
// the collector and stager every subcommand shares.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	projectRoot, _ := cmd.Flags().GetString("project_root")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
			os.Exit(1)
		}
		projectRoot = cwd
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error resolving project root: %v", err)))
		os.Exit(1)
	}

	cfg := config.LoadConfigs(rootCmd, projectRoot)

	return &RootDependencies{
		Config:      cfg,
		ProjectRoot: projectRoot,
		Collector:   collector.NewCollector(),
		Stager: stager.NewStager(projectRoot, stager.DirNames{
			CodeExamples:    cfg.Directories.CodeExamples,
			APITrainingData: cfg.Directories.APITrainingData,
		}),
	}
}

// openWorkflow opens the workflow step store under the project root.
func openWorkflow(deps *RootDependencies) (workflow.StepRepository, error) {
	dbPath := deps.Config.DatabaseFile
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(deps.ProjectRoot, dbPath)
	}
	db, err := workflow.Init(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workflow database: %w", err)
	}
	return workflow.NewStepRepository(db), nil
}
