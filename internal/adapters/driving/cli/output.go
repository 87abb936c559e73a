package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui/styles"
)

// maxCellWidth bounds free-text columns such as descriptions.
const maxCellWidth = 60

// renderer writes views as JSON or as tables.
type renderer struct {
	out    io.Writer
	json   bool
	styled bool
	styles *styles.Styles
}

// newRenderer creates a renderer for cmd's output. Tables are styled only
// when the output is a terminal.
func newRenderer(cmd *cobra.Command) *renderer {
	out := cmd.OutOrStdout()
	return rendererTo(out, isTerminal(out))
}

// rendererTo creates a renderer writing to out.
func rendererTo(out io.Writer, styled bool) *renderer {
	return &renderer{
		out:    out,
		json:   jsonOutput,
		styled: styled,
		styles: styles.DefaultStyles(),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// JSON writes v as indented JSON.
func (r *renderer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

// Table writes rows under headers. Columns listed in numeric are right
// aligned.
func (r *renderer) Table(headers []string, rows [][]string, numeric ...int) {
	if len(rows) == 0 {
		fmt.Fprintln(r.out, r.muted("No results."))
		return
	}

	isNumeric := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		isNumeric[c] = true
	}

	t := table.New().Headers(headers...).Rows(rows...)
	if r.styled {
		t = t.Border(lipgloss.RoundedBorder()).BorderStyle(r.styles.Border)
	} else {
		t = t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).BorderBottom(false).
			BorderLeft(false).BorderRight(false).
			BorderColumn(false).BorderHeader(false)
	}
	t = t.StyleFunc(func(row, col int) lipgloss.Style {
		var s lipgloss.Style
		switch {
		case row == table.HeaderRow:
			s = r.styles.Header
		case isNumeric[col]:
			s = r.styles.Count
		default:
			s = r.styles.Cell
		}
		if !r.styled {
			s = lipgloss.NewStyle().Padding(0, 1)
			if isNumeric[col] {
				s = s.Align(lipgloss.Right)
			}
		}
		return s
	})

	fmt.Fprintln(r.out, t.Render())
}

// Fields writes label/value pairs, skipping empty values.
func (r *renderer) Fields(title string, pairs [][2]string) {
	fmt.Fprintln(r.out, r.title(title))
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		label := fmt.Sprintf("%-*s", width, p[0])
		fmt.Fprintf(r.out, "  %s  %s\n", r.muted(label), p[1])
	}
}

// Footer writes a hint line below a listing.
func (r *renderer) Footer(format string, args ...any) {
	fmt.Fprintln(r.out, r.muted(fmt.Sprintf(format, args...)))
}

func (r *renderer) title(s string) string {
	if !r.styled {
		return s
	}
	return r.styles.Title.Render(s)
}

func (r *renderer) muted(s string) string {
	if !r.styled {
		return s
	}
	return r.styles.Muted.Render(s)
}

// swatch renders a language colour marker in styled output.
func (r *renderer) swatch(color string) string {
	if !r.styled {
		return ""
	}
	return r.styles.Swatch(color) + " "
}

// count formats n with thousands separators.
func count(n int) string {
	return humanize.Comma(int64(n))
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
// Only the first line of s is kept.
func truncate(s string, n int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
