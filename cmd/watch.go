package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aiforge/constants/lipgloss"
	"aiforge/watcher"
)

// watchCmd: aiforge watch
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the destination directories for changes.",
	Long: `The 'watch' subcommand monitors both destination directories and reports
every .swift file created, modified, or removed, including changes made outside
aiforge. Press Ctrl+C to stop.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps := handleRootCommand(cmd)
		handleWatchCommand(deps)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func handleWatchCommand(deps *RootDependencies) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, err := watcher.NewDestinationWatcher(deps.Stager)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to start watcher: %v", err)))
		return
	}
	defer func() { _ = w.Stop() }()

	events, err := w.Watch(ctx)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to watch destinations: %v", err)))
		return
	}

	fmt.Println(lipgloss.Info.Render("Watching destination directories (Ctrl+C to stop)..."))

	for event := range events {
		var line string
		switch event.Op {
		case watcher.FileCreated:
			line = lipgloss.Green.Render(fmt.Sprintf("+ %s (%s)", event.Path, event.Category))
		case watcher.FileRemoved:
			line = lipgloss.Red.Render(fmt.Sprintf("- %s (%s)", event.Path, event.Category))
		default:
			line = lipgloss.Yellow.Render(fmt.Sprintf("~ %s (%s)", event.Path, event.Category))
		}
		fmt.Println(line)
	}
}
