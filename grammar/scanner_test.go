package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		word string
		cat  Category
	}{
		{word: "x", cat: Ident},
		{word: "my_var2", cat: Ident},
		{word: "_x", cat: Ident},
		{word: "5", cat: Number},
		{word: "-5", cat: Number},
		{word: "+5", cat: Number},
		{word: "3.14", cat: Number},
		{word: ".5", cat: Number},
		{word: "1e10", cat: Number},
		{word: `"hello"`, cat: String},
		{word: `""`, cat: String},
		{word: "true", cat: Boolean},
		{word: "False", cat: Boolean},
		{word: "int", cat: TypeName},
		{word: "float", cat: TypeName},
		{word: "if", cat: Keyword},
		{word: "print", cat: Keyword},
		{word: "quit", cat: Keyword},
		{word: "load", cat: Keyword},
		{word: "=", cat: AssignOp},
		{word: "**=", cat: AssignOp},
		{word: "%=", cat: AssignOp},
		{word: "==", cat: CompareOp},
		{word: ">=", cat: CompareOp},
		{word: "<", cat: CompareOp},
		{word: "+", cat: ArithOp},
		{word: "**", cat: ArithOp},
		{word: "<>", cat: UnknownOp},
		{word: "=>", cat: UnknownOp},
		{word: "x=5", cat: Literal},
		{word: "hello!", cat: Literal},
		{word: `"a`, cat: Literal},
		{word: "", cat: Literal},
	} {
		if c := Classify(x.word); c != x.cat {
			t.Errorf("test %d: expected %q to be classified as %s, is %s", i, x.word, x.cat, c)
		}
	}
}

func TestSplitProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.grammar")
	defer teardown()
	//
	stmts := SplitProgram("int x = 5 ; x += 3\nprint x;;\r\n")
	if len(stmts) != 6 {
		t.Fatalf("expected 6 statements, is %d: %v", len(stmts), stmts)
	}
	expect := [][]string{
		{"int", "x", "=", "5"},
		{"x", "+=", "3"},
		{"print", "x"},
		nil,
		nil,
		nil,
	}
	for i, s := range stmts {
		if len(s) != len(expect[i]) {
			t.Errorf("statement %d: expected %v, is %v", i, expect[i], s)
			continue
		}
		for j := range s {
			if s[j] != expect[i][j] {
				t.Errorf("statement %d: expected word %q, is %q", i, expect[i][j], s[j])
			}
		}
	}
}

func TestSplitStatementKeepsEmptyWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.grammar")
	defer teardown()
	//
	words := SplitStatement("  print  x ")
	if len(words) != 3 || words[0] != "print" || words[1] != "" || words[2] != "x" {
		t.Errorf("expected [print  x] with an empty word, is %q", words)
	}
	if words := SplitStatement("   "); words != nil {
		t.Errorf("expected blank statement to have no words, is %q", words)
	}
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.grammar")
	defer teardown()
	//
	toks := Tokenize([]string{"if", "x", "<", "5"})
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, is %d", len(toks))
	}
	if toks[0].Cat != Keyword || toks[1].Cat != Ident || toks[2].Cat != CompareOp || toks[3].Cat != Number {
		t.Errorf("unexpected token categories: %s", Dump(toks))
	}
	if toks[1].IsValue() {
		t.Error("expected word token not to be a value, is")
	}
	if !toks[0].Is("if") {
		t.Error("expected first token to be keyword 'if', isn't")
	}
}
