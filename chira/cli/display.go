package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/chira"
	"github.com/npillmayer/chira/chira/ui/termui"
	"github.com/npillmayer/chira/variables"
)

// Formatter formats output of the chira REPL and of batch runs.
type Formatter struct {
	termui.DefaultFormatter
}

// Format writes item to w. Variable stores are written as a table.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format item of type %T", item)
	switch t := item.(type) {
	case *variables.Store:
		if t.Len() == 0 {
			_, err := io.WriteString(w, "▶ no variables\n")
			return err == nil, err
		}
		item = variablesAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables -------------------------------------------------------

func variablesAsTable(st *variables.Store) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"name", "type", "value"})
	st.Each(func(v variables.Variable) {
		tw.AppendRow(table.Row{v.Name, v.Type, displayValue(v.Value)})
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

func displayValue(v chira.Value) string {
	if s, ok := v.(chira.Str); ok {
		return `"` + string(s) + `"`
	}
	return v.String()
}
