package variables

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/chira"
)

// Variable is a named and typed value.
type Variable struct {
	Name  string
	Type  string // declared type, one of chira.TypeNames()
	Value chira.Value
}

func (v Variable) String() string {
	return fmt.Sprintf("<var %s:%s=%v>", v.Name, v.Type, v.Value)
}

// Accessor is the interface for reading and writing variables. It is
// implemented by Store and by Tx.
type Accessor interface {
	Exists(name string) bool
	Get(name string) (chira.Value, error)
	GetType(name string) (string, error)
	Set(name, typename string, value chira.Value) chira.Value
}

// === Store ===================================================================

// Store maps variable names to variables. Variables are kept sorted by name.
//
// A Store is not safe for concurrent use; it belongs to a single interpreter
// session.
type Store struct {
	vars *treemap.Map
}

var _ Accessor = (*Store)(nil)

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{vars: treemap.NewWithStringComparator()}
}

// Exists is a predicate: is there a variable called name?
func (st *Store) Exists(name string) bool {
	_, found := st.vars.Get(name)
	return found
}

// Set creates or overwrites variable name. There is no error path, callers
// are responsible for type and value being consistent.
func (st *Store) Set(name, typename string, value chira.Value) chira.Value {
	st.vars.Put(name, Variable{Name: name, Type: typename, Value: value})
	tracer().P("var", name).Debugf("set %s = %v", typename, value)
	return value
}

// Get returns the value of variable name, or a NoVariableFoundError.
func (st *Store) Get(name string) (chira.Value, error) {
	v, ok := st.lookup(name)
	if !ok {
		return nil, chira.NoVariableFound(name)
	}
	return v.Value, nil
}

// GetType returns the declared type of variable name, or a NoVariableFoundError.
func (st *Store) GetType(name string) (string, error) {
	v, ok := st.lookup(name)
	if !ok {
		return "", chira.NoVariableFound(name)
	}
	return v.Type, nil
}

// Variable returns the variable called name, if present.
func (st *Store) Variable(name string) (Variable, bool) {
	return st.lookup(name)
}

func (st *Store) lookup(name string) (Variable, bool) {
	v, found := st.vars.Get(name)
	if !found {
		return Variable{}, false
	}
	return v.(Variable), true
}

// Len returns the number of variables in the store.
func (st *Store) Len() int {
	return st.vars.Size()
}

// Names returns the names of all variables, sorted.
func (st *Store) Names() []string {
	keys := st.vars.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Each calls f for every variable, in order of names.
func (st *Store) Each(f func(Variable)) {
	st.vars.Each(func(_ interface{}, v interface{}) {
		f(v.(Variable))
	})
}

// Begin starts a transaction on the store.
func (st *Store) Begin() *Tx {
	return &Tx{store: st, pending: make(map[string]Variable)}
}

// === Transactions ============================================================

// Tx collects the writes of a single statement. Reads see pending writes
// first, then the store. Nothing reaches the store before Commit.
type Tx struct {
	store   *Store
	pending map[string]Variable
	order   []string // names in order of first write
}

var _ Accessor = (*Tx)(nil)

// Exists is a predicate: is there a variable called name, pending or stored?
func (tx *Tx) Exists(name string) bool {
	if _, ok := tx.pending[name]; ok {
		return true
	}
	return tx.store.Exists(name)
}

// Set records a pending write.
func (tx *Tx) Set(name, typename string, value chira.Value) chira.Value {
	if _, ok := tx.pending[name]; !ok {
		tx.order = append(tx.order, name)
	}
	tx.pending[name] = Variable{Name: name, Type: typename, Value: value}
	return value
}

// Get returns the value of variable name, or a NoVariableFoundError.
func (tx *Tx) Get(name string) (chira.Value, error) {
	if v, ok := tx.pending[name]; ok {
		return v.Value, nil
	}
	return tx.store.Get(name)
}

// GetType returns the declared type of variable name, or a NoVariableFoundError.
func (tx *Tx) GetType(name string) (string, error) {
	if v, ok := tx.pending[name]; ok {
		return v.Type, nil
	}
	return tx.store.GetType(name)
}

// Pending returns the number of pending writes.
func (tx *Tx) Pending() int {
	return len(tx.pending)
}

// Commit applies all pending writes to the store. A transaction may be
// committed once; later calls are no-ops.
func (tx *Tx) Commit() {
	for _, name := range tx.order {
		v := tx.pending[name]
		tx.store.Set(v.Name, v.Type, v.Value)
	}
	if len(tx.order) > 0 {
		tracer().Debugf("committed %d variable(s)", len(tx.order))
	}
	tx.pending = make(map[string]Variable)
	tx.order = nil
}

// Rollback drops all pending writes.
func (tx *Tx) Rollback() {
	if len(tx.order) > 0 {
		tracer().Debugf("dropping %d pending variable(s)", len(tx.order))
	}
	tx.pending = make(map[string]Variable)
	tx.order = nil
}
