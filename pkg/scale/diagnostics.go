package scale

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Report is a read-only snapshot of the values shown by the diagnostics
// overlay.
type Report struct {
	Viewport Size
	Content  Size
	Screen   Size
	Scale    float64
	Mode     Mode
}

// Lines renders the report one value per line.
func (r Report) Lines() []string {
	return []string{
		"window => " + r.Viewport.String(),
		"container => " + r.Content.String(),
		"screen => " + r.Screen.String(),
		"scale => " + formatNumber(r.Scale),
		"scaleBy => " + r.Mode.String(),
	}
}

// Table renders the report as a two-column text table.
func (r Report) Table() string {
	t := table.NewWriter()
	t.SetTitle("scale info")
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"window", r.Viewport.String()},
		{"container", r.Content.String()},
		{"screen", r.Screen.String()},
		{"scale", formatNumber(r.Scale)},
		{"scaleBy", r.Mode.String()},
	})
	t.SetStyle(table.StyleLight)
	return t.Render()
}
