package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/todokeeper/internal/api"
)

const timeLayout = "2006-01-02 15:04"

type renderer struct {
	plain  bool
	done   lipgloss.Style
	open   lipgloss.Style
	header lipgloss.Style
}

func newRenderer(plain bool) *renderer {
	return &renderer{
		plain:  plain,
		done:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		open:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		header: lipgloss.NewStyle().Bold(true),
	}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *renderer) status(completed bool) string {
	if completed {
		return r.style(r.done, "done")
	}
	return r.style(r.open, "open")
}

// table prints todos one per row. The styled status column is last so
// escape sequences do not disturb alignment.
func (r *renderer) table(w io.Writer, todos []*api.Todo) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "No todos yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		r.style(r.header, "ID"), r.style(r.header, "TITLE"), r.style(r.header, "CREATED"), r.style(r.header, "STATUS"))
	for _, t := range todos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Title, localTime(t.CreatedAt), r.status(t.Completed))
	}
	return tw.Flush()
}

func (r *renderer) details(w io.Writer, t *api.Todo) {
	fmt.Fprintf(w, "ID:          %s\n", t.ID)
	fmt.Fprintf(w, "Title:       %s\n", t.Title)
	if t.Description != nil {
		fmt.Fprintf(w, "Description: %s\n", *t.Description)
	}
	fmt.Fprintf(w, "Status:      %s\n", r.status(t.Completed))
	fmt.Fprintf(w, "Created:     %s\n", localTime(t.CreatedAt))
	fmt.Fprintf(w, "Updated:     %s\n", localTime(t.UpdatedAt))
}

func localTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}
