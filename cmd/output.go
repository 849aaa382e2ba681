package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/devdeck/devdeck/pkg/models"
)

func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printSheet renders one sheet's headers and entries.
func printSheet(s *models.Sheet) {
	title := color.New(color.Bold, color.Underline)
	header := color.New(color.Bold)
	cmdColor := color.New(color.FgHiGreen)
	desc := color.New(color.Faint, color.Italic)

	_, _ = title.Fprintln(color.Output, s.Name)
	for _, h := range s.Headers {
		_, _ = header.Fprintf(color.Output, "  %s\n", h.Name)
		for _, n := range h.Notes {
			if n.IsCommand() {
				_, _ = cmdColor.Fprintf(color.Output, "    $ %s", n.Content)
			} else {
				_, _ = fmt.Fprintf(color.Output, "    %s", n.Content)
			}
			if n.Description != "" {
				_, _ = desc.Fprintf(color.Output, "  # %s", n.Description)
			}
			_, _ = fmt.Fprintln(color.Output)
		}
	}
}

// printNotesTable renders search results.
func printNotesTable(notes []*models.Note) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("SHEET", "HEADER", "KIND", "CONTENT", "DESCRIPTION")
	for _, n := range notes {
		tbl.AddRow(n.SheetName, n.HeaderName, string(n.Kind), n.Content, n.Description)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// printTree renders project nodes as an indented tree. Openable nodes
// show their path; folder nodes just show the segment name.
func printTree(nodes []*models.ProjectTreeNode, depth int) {
	folder := color.New(color.Bold)
	pathColor := color.New(color.Faint)
	star := color.New(color.FgHiYellow)
	inactive := color.New(color.Faint, color.CrossedOut)

	for _, node := range nodes {
		indent := strings.Repeat("  ", depth)
		name := node.Name
		_, _ = fmt.Fprint(color.Output, indent)

		switch {
		case !node.Active:
			_, _ = inactive.Fprint(color.Output, name)
		case len(node.Children) > 0 && !node.IsOpenable():
			_, _ = folder.Fprint(color.Output, name)
		default:
			_, _ = fmt.Fprint(color.Output, name)
		}
		if node.Favorite {
			_, _ = star.Fprint(color.Output, " *")
		}
		if node.IsOpenable() {
			_, _ = pathColor.Fprintf(color.Output, "  (%s)", node.FullPath)
		}
		_, _ = fmt.Fprintln(color.Output)

		printTree(node.Children, depth+1)
	}
}

func printSectionTitle(s string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, s)
}
