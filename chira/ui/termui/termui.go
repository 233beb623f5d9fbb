// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/chira"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'chira.cli'.
func trace() tracing.Trace {
	return tracing.Select("chira.cli")
}

// Formatter writes an item to w. It returns false if it did not know how to
// format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats values printed by Chira statements, statement
// errors and tables.
type DefaultFormatter struct {
	Colored bool // color errors
}

// Format writes item to w, followed by a newline.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case chira.Value:
		_, err = io.WriteString(w, t.String()+"\n")
	case string:
		_, err = io.WriteString(w, t+"\n")
	case error:
		msg := t.Error()
		if df.Colored {
			msg = prtxt.FgRed.Sprint(msg)
		}
		_, err = io.WriteString(w, msg+"\n")
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = io.WriteString(w, t.Render()+"\n")
		}
	default:
		trace().Debugf("no format for item of type %T", t)
		_, err = io.WriteString(w, fmt.Sprintf("▶ object of type %T\n", t))
		return false, err
	}
	return err == nil, err
}
