package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

var (
	colorHeader = lipgloss.Color("39")  // Blue
	colorMuted  = lipgloss.Color("240") // Dark gray
	colorWarn   = lipgloss.Color("214") // Orange
)

var catalogHeaders = []string{"TYPE", "SCHEMA", "NAME", "PATH", "CHECKSUM"}

// isTerminal reports whether w is a terminal that accepts styled output.
// NO_COLOR disables styling.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderCatalog prints one row per script. Terminals get a bordered table;
// anything else gets tab-separated lines.
func renderCatalog(w io.Writer, root string, scripts []*zocbuild.ScriptFile) {
	rows := catalogRows(root, scripts)

	if !isTerminal(w) {
		for _, row := range append([][]string{catalogHeaders}, rows...) {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(w, "\t")
				}
				fmt.Fprint(w, cell)
			}
			fmt.Fprintln(w)
		}
		return
	}

	fmt.Fprintln(w, styledCatalog(lipgloss.NewRenderer(w), rows, scripts))
}

func styledCatalog(r *lipgloss.Renderer, rows [][]string, scripts []*zocbuild.ScriptFile) string {
	headerStyle := r.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)
	mutedStyle := cellStyle.Foreground(colorMuted)
	warnStyle := cellStyle.Foreground(colorWarn)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(colorMuted)).
		Headers(catalogHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && row < len(scripts) && len(scripts[row].Mismatches()) > 0:
				return warnStyle
			case col == 4:
				return mutedStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func catalogRows(root string, scripts []*zocbuild.ScriptFile) [][]string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	rows := make([][]string, 0, len(scripts))
	for _, s := range scripts {
		path := s.Path
		if rel, err := filepath.Rel(absRoot, s.Path); err == nil {
			path = rel
		}
		rows = append(rows, []string{
			s.ScriptObject.ObjectType.String(),
			s.ScriptObject.SchemaName,
			s.ScriptObject.ObjectName,
			path,
			shortChecksum(s.Checksum),
		})
	}
	return rows
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
