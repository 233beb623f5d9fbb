/*
Package cli implements the chira command line interface.

Called without arguments, chira enters an interactive REPL. Files given as
arguments and statements given with -c are run in batch mode:

   chira prog.chira
   chira -c 'int x = 5 ; print x'
   chira -i -c 'int x = 5'      # enter the REPL afterwards

Lines of the form 'load <path>' load a file and run it, both in the REPL
and in loaded files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chira.cli'
func tracer() tracing.Trace {
	return tracing.Select("chira.cli")
}
