package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/chira"
	"github.com/npillmayer/chira/evaluator"
	"github.com/npillmayer/chira/grammar"
)

// DefaultMaxDepth is the default limit for nested loads.
const DefaultMaxDepth = 8

// Loader runs program text through an interpreter, line by line. Lines of the
// form
//
//    load <path>
//
// are handled by the loader: the file is read and its lines are run the same
// way. Relative paths are relative to the working directory of the process.
type Loader struct {
	intp     *evaluator.Interpreter
	maxDepth int
	onError  evaluator.ErrorSink
}

// NewLoader creates a loader for an interpreter. Nested loads are followed up
// to maxDepth levels; maxDepth <= 0 selects DefaultMaxDepth. Errors of load
// lines are reported to onError, which may be nil.
func NewLoader(intp *evaluator.Interpreter, maxDepth int, onError evaluator.ErrorSink) *Loader {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Loader{intp: intp, maxDepth: maxDepth, onError: onError}
}

// Run runs program text. Returns true if a statement executed 'quit'.
func (l *Loader) Run(text string) (quit bool) {
	return l.run(text, 0)
}

// LoadFile loads a file and runs it. Returns true if a statement executed
// 'quit'. An error is returned if the file cannot be read; errors in
// statements of the file, and of files loaded by it, go to the error sink.
func (l *Loader) LoadFile(path string) (quit bool, err error) {
	return l.load(path, 1)
}

func (l *Loader) run(text string, depth int) bool {
	for _, line := range strings.Split(text, "\n") {
		if path, ok := LoadPath(line); ok {
			quit, err := l.load(path, depth+1)
			if err != nil {
				l.report(err)
				continue
			}
			if quit {
				return true
			}
			continue
		}
		if l.intp.Parse(line) {
			return true
		}
	}
	return false
}

func (l *Loader) load(path string, depth int) (bool, error) {
	if path == "" {
		return false, chira.Syntax(fmt.Sprintf("%q needs a file path", grammar.Load))
	}
	if depth > l.maxDepth {
		return false, fmt.Errorf("cannot load %q: files nested deeper than %d levels", path, l.maxDepth)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("cannot load %q: %w", path, err)
	}
	tracer().P("file", path).Debugf("loading at depth %d", depth)
	return l.run(string(data), depth), nil
}

func (l *Loader) report(err error) {
	if l.onError != nil {
		l.onError(err)
		return
	}
	tracer().Errorf(err.Error())
}

// LoadPath checks if line is a load command. It returns the path to load if it
// is. Double quotes are removed from the line and the words following 'load'
// are joined by single spaces, so paths may contain spaces.
func LoadPath(line string) (string, bool) {
	line = strings.TrimSpace(line)
	words := strings.Split(strings.ReplaceAll(line, `"`, ""), " ")
	if len(words) < 2 || words[0] != grammar.Load {
		return "", false
	}
	return strings.TrimSpace(strings.Join(words[1:], " ")), true
}
