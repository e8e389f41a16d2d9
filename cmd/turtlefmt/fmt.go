package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	turtlemode "github.com/riverfjs/turtlemode-go"
)

// fmtCmd is the explicit form of the bare root invocation.
var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Reindent Turtle files",
	Args:  cobra.ArbitraryArgs,
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false,
		"write result back to source files instead of stdout")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, err := turtlemode.Reindent(ctx, string(content), indentOptions()...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	for _, path := range args {
		if err := formatFile(ctx, cmd.OutOrStdout(), path, write); err != nil {
			return err
		}
	}
	return nil
}

// formatFile reformats one file. Markdown files have only their Turtle
// code blocks touched; everything else is treated as a Turtle document.
func formatFile(ctx context.Context, stdout io.Writer, path string, write bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var out string
	if isMarkdownFile(path) {
		out, err = turtlemode.FormatMarkdown(ctx, string(content), indentOptions()...)
	} else {
		if !turtlemode.IsTurtleFile(path) {
			turtlemode.Logger.Printf("%s: not a Turtle file, formatting anyway", path)
		}
		out, err = turtlemode.Reindent(ctx, string(content), indentOptions()...)
	}
	if err != nil {
		return fmt.Errorf("formatting %s: %w", path, err)
	}

	if !write {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if out == string(content) {
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
