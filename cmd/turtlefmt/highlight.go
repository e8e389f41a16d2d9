package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	turtlemode "github.com/riverfjs/turtlemode-go"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight FILE",
	Short: "Print a Turtle file with syntax highlighting",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.AddCommand(highlightCmd)
}

// tagStyles maps each lexical category to a terminal style.
var tagStyles = map[turtlemode.StyleTag]lipgloss.Style{
	turtlemode.TagDirective:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	turtlemode.TagNamespace:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	turtlemode.TagString:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	turtlemode.TagLongString:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	turtlemode.TagDatatypeIRI:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	turtlemode.TagDatatypeName: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	turtlemode.TagIRI:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true),
	turtlemode.TagBlankNode:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	turtlemode.TagPrefixedName: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	turtlemode.TagPunctuation:  lipgloss.NewStyle().Faint(true),
}

func runHighlight(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	text := string(content)
	if noColor || !cfg.Color {
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}

	// Widen once over the whole document so multi-line strings render
	// as one unit regardless of the file layout.
	start, end := turtlemode.ExtendRegion(text, 0, len(text))
	spans := turtlemode.Highlight(text[start:end])

	_, err = io.WriteString(cmd.OutOrStdout(), renderSpans(text[start:end], spans))
	return err
}

// renderSpans applies styles to the text. Overlapping spans resolve to
// the earliest-starting (and at equal starts, widest) span.
func renderSpans(text string, spans []turtlemode.StyleSpan) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, s := range spans {
		if s.Start < pos {
			continue
		}
		b.WriteString(text[pos:s.Start])
		style, ok := tagStyles[s.Tag]
		if !ok {
			b.WriteString(turtlemode.SpanText(text, s))
		} else {
			b.WriteString(style.Render(turtlemode.SpanText(text, s)))
		}
		pos = s.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
