/*
Package variables implements the variable store of a Chira interpreter.

Variables are simple things in Chira: a name, a declared type and a value.
The type is fixed when a variable is created by an assignment with '=' and
does not change afterwards, compound assignments (`x += 1`) only replace
the value.

   int x = 5 ; x += 3      ⟹  x : int = 8

Every statement works on a transaction (type Tx) instead of on the store
directly. Writes within a statement are kept pending until the statement has
been evaluated without error, and are dropped otherwise. Thus a failing
statement never leaves a partial assignment behind.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package variables

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chira.variables'
func tracer() tracing.Trace {
	return tracing.Select("chira.variables")
}
