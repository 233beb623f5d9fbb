/*
Package evaluator evaluates Chira statements.

A statement is a list of words. It is reduced by a fixed sequence of passes,
every pass scanning the statement left to right and replacing a span of
tokens by its value:

  1. conditional:   if a < b …     ⟹ evaluate "a < b", continue with "…" or stop
  2. assignment:    [type] name op value
  3. substitution:  variable names ⟹ their values
  4. comparison:    a op b         ⟹ true or false
  5. functions:     print value, quit

There is no operator precedence and there are no parentheses. Operators
must be separated from their operands by spaces.

Errors do not unwind anything. Every pass returns an error value, which
stops evaluation of the statement and is handed to the caller. Variable
writes of a failing statement are discarded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chira.eval'
func tracer() tracing.Trace {
	return tracing.Select("chira.eval")
}
