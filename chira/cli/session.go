package cli

import (
	"io"
	"strings"

	"github.com/npillmayer/chira"
	"github.com/npillmayer/chira/chira/ui/termui"
	"github.com/npillmayer/chira/evaluator"
	"github.com/npillmayer/chira/grammar"
)

// session connects an interpreter to the terminal.
type session struct {
	intp   *evaluator.Interpreter
	loader *Loader
	format Formatter
	out    io.Writer
	errs   io.Writer
	failed int // errors reported so far
}

func newSession(out, errs io.Writer, strict bool, maxDepth int) *session {
	s := &session{out: out, errs: errs}
	s.intp = evaluator.NewInterpreter(s.output,
		evaluator.WithStrict(strict),
		evaluator.WithErrorSink(s.report))
	s.loader = NewLoader(s.intp, maxDepth, s.report)
	return s
}

func (s *session) output(v chira.Value) {
	s.format.Format(v, s.out)
}

func (s *session) report(err error) {
	s.failed++
	s.format.Format(err, s.errs)
}

// runBatch loads files, then runs command. It returns true as soon as a
// statement executes 'quit'.
func (s *session) runBatch(files []string, command string) bool {
	for _, f := range files {
		quit, err := s.loader.LoadFile(f)
		if err != nil {
			s.report(err)
			continue
		}
		if quit {
			return true
		}
	}
	if command != "" {
		return s.loader.Run(command)
	}
	return false
}

// InterpretCommand is called by the REPL for every line which is not an
// administrative command.
func (s *session) InterpretCommand(line string) bool {
	line = strings.Trim(line, "\x00")
	if strings.TrimSpace(line) == grammar.Quit {
		return true
	}
	return s.loader.Run(line)
}

// prompt enters the REPL. An empty prompt selects the default one.
func (s *session) prompt(prompt string) {
	repl := termui.NewBaseREPL("chira", version)
	repl.Interpreter = s
	repl.Helper = func(w io.Writer) {
		io.WriteString(w, languageHelp)
	}
	repl.AddCommand("vars", termui.REPLCommand{
		Help: "list variables",
		Run: func(args []string, w io.Writer) {
			s.format.Format(s.intp.Variables(), w)
		},
	})
	if prompt != "" {
		repl.SetPrompt(prompt)
	}
	s.out, s.errs = repl.Outputs()
	s.format.Colored = true
	repl.Prompt(true)
}

var languageHelp = `
chira will interpret the following statements:

  [type] name op value     : assign, type is int|str|float|bool,
                             op is = += -= *= /= %= **=
  a op b                   : compare, op is == != > < >= <=
  if a op b statement      : run statement if the comparison holds
  print value              : print a value
  load path                : load a file and run it
  quit                     : end the session

Words are separated by spaces, statements by ';'.

`
