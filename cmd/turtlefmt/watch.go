package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	turtlemode "github.com/riverfjs/turtlemode-go"
	"github.com/riverfjs/turtlemode-go/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Watch a directory and reformat Turtle files on change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(watcher.DefaultConfig(args[0]))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	turtlemode.Logger.Printf("watching %s", args[0])
	for {
		select {
		case <-ctx.Done():
			return nil
		case batch := <-changes:
			for _, path := range batch {
				if err := formatFile(ctx, cmd.OutOrStdout(), path, true); err != nil {
					turtlemode.Logger.Printf("%v", err)
					continue
				}
				turtlemode.Logger.Printf("formatted %s", path)
			}
		}
	}
}
