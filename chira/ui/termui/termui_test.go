package termui

import (
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/chira"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.cli")
	defer teardown()
	//
	for i, x := range []struct {
		item interface{}
		out  string
	}{
		{chira.Int(8), "8\n"},
		{chira.Float(2), "2.0\n"},
		{chira.Bool(true), "True\n"},
		{chira.Str("hello"), "hello\n"},
		{"plain", "plain\n"},
		{chira.NoVariableFound("x"), "NoVariableFoundError: Could not find variable named \"x\"\n"},
		{errors.New("cannot load"), "cannot load\n"},
	} {
		var b strings.Builder
		ok, err := DefaultFormatter{}.Format(x.item, &b)
		if !ok || err != nil {
			t.Errorf("test %d: expected item to be formatted, wasn't: %v", i, err)
		}
		if b.String() != x.out {
			t.Errorf("test %d: expected %q, is %q", i, x.out, b.String())
		}
	}
}

func TestFormatTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.cli")
	defer teardown()
	//
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"name", "type", "value"})
	tw.AppendRow(table.Row{"x", "int", "5"})
	var b strings.Builder
	if ok, _ := (DefaultFormatter{}).Format(tw, &b); !ok {
		t.Fatal("expected table to be formatted, wasn't")
	}
	if !strings.Contains(b.String(), "int") || !strings.HasSuffix(b.String(), "\n") {
		t.Errorf("unexpected table output %q", b.String())
	}
}

func TestFormatUnknownItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.cli")
	defer teardown()
	//
	var b strings.Builder
	if ok, _ := (DefaultFormatter{}).Format(struct{}{}, &b); ok {
		t.Error("expected unknown item not to be formatted, was")
	}
}
