package variables_test

import (
	"testing"

	"github.com/npillmayer/chira"
	"github.com/npillmayer/chira/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStoreSetGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.variables")
	defer teardown()
	//
	st := variables.NewStore()
	if st.Exists("x") {
		t.Error("expected empty store not to contain x, does")
	}
	st.Set("x", chira.IntType, chira.Int(5))
	if !st.Exists("x") {
		t.Fatal("expected store to contain x, doesn't")
	}
	v, err := st.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if v != chira.Int(5) {
		t.Errorf("expected x to be 5, is %v", v)
	}
	typ, err := st.GetType("x")
	if err != nil || typ != chira.IntType {
		t.Errorf("expected x to be of type int, is %q (%v)", typ, err)
	}
	st.Set("x", chira.StrType, chira.Str("five"))
	if typ, _ := st.GetType("x"); typ != chira.StrType {
		t.Errorf("expected Set to overwrite type, type is %q", typ)
	}
}

func TestStoreMissingVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.variables")
	defer teardown()
	//
	st := variables.NewStore()
	if _, err := st.Get("nope"); !chira.IsKind(err, chira.NoVariableFoundError) {
		t.Errorf("expected NoVariableFoundError, is %v", err)
	}
	if _, err := st.GetType("nope"); !chira.IsKind(err, chira.NoVariableFoundError) {
		t.Errorf("expected NoVariableFoundError, is %v", err)
	}
}

func TestStoreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.variables")
	defer teardown()
	//
	st := variables.NewStore()
	for _, name := range []string{"c", "a", "b"} {
		st.Set(name, chira.BoolType, chira.Bool(true))
	}
	names := st.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected names to be sorted, are %v", names)
	}
	var visited []string
	st.Each(func(v variables.Variable) {
		visited = append(visited, v.Name)
	})
	if len(visited) != 3 || visited[0] != "a" {
		t.Errorf("expected Each to visit variables in order, visited %v", visited)
	}
	if st.Len() != 3 {
		t.Errorf("expected 3 variables, have %d", st.Len())
	}
}

func TestTxCommit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.variables")
	defer teardown()
	//
	st := variables.NewStore()
	st.Set("x", chira.IntType, chira.Int(1))
	tx := st.Begin()
	tx.Set("x", chira.IntType, chira.Int(2))
	tx.Set("y", chira.FloatType, chira.Float(0.5))
	if v, _ := tx.Get("x"); v != chira.Int(2) {
		t.Errorf("expected transaction to see pending x = 2, sees %v", v)
	}
	if !tx.Exists("y") {
		t.Error("expected transaction to see pending y, doesn't")
	}
	if v, _ := st.Get("x"); v != chira.Int(1) {
		t.Errorf("expected store to be unchanged before commit, x is %v", v)
	}
	if st.Exists("y") {
		t.Error("expected y not to be in store before commit, is")
	}
	tx.Commit()
	if v, _ := st.Get("x"); v != chira.Int(2) {
		t.Errorf("expected x = 2 after commit, is %v", v)
	}
	if typ, _ := st.GetType("y"); typ != chira.FloatType {
		t.Errorf("expected y to be float after commit, is %q", typ)
	}
}

func TestTxRollback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira.variables")
	defer teardown()
	//
	st := variables.NewStore()
	tx := st.Begin()
	tx.Set("x", chira.IntType, chira.Int(2))
	if tx.Pending() != 1 {
		t.Errorf("expected 1 pending write, have %d", tx.Pending())
	}
	tx.Rollback()
	tx.Commit()
	if st.Exists("x") {
		t.Error("expected rolled back write not to reach the store, did")
	}
}
