package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/chira"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var promptTemplate = "%s> " // filled in via fmt.Sprintf with the tool name
var stdprompt = prtxt.FgGreen.Sprint(promptTemplate)
var editmode string = "emacs"

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	completer   *readline.PrefixCompleter
	commands    map[string]REPLCommand
	toolname    string
	version     string
	prompt      string
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version.
func NewBaseREPL(toolname, version string) *BaseREPL {
	repl := &BaseREPL{
		completer: newCompleter(),
		commands:  make(map[string]REPLCommand),
		toolname:  toolname,
		version:   version,
		prompt:    fmt.Sprintf(stdprompt, toolname),
	}
	repl.readline = newReadline(toolname, repl.prompt, repl.completer)
	return repl
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter. If the interpreter returns
// true, the REPL terminates.
type REPLCommandInterpreter interface {
	InterpretCommand(string) bool
}

// REPLCommand is an additional administrative command. It receives the
// words of the input line, the command included.
type REPLCommand struct {
	Help string
	Run  func(args []string, out io.Writer)
}

// AddCommand registers an administrative command, which will be executed
// instead of being sent to the interpreter.
func (repl *BaseREPL) AddCommand(name string, cmd REPLCommand) {
	repl.commands[name] = cmd
	repl.completer.SetChildren(append(repl.completer.GetChildren(), readline.PcItem(name)))
}

// Create a readline instance.
func newReadline(toolname, prompt string, completer readline.AutoCompleter) *readline.Instance {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        completer,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
	names := make([]string, 0, len(repl.commands))
	for name := range repl.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		io.WriteString(out, fmt.Sprintf("  %-18s : %s\n", name, repl.commands[name].Help))
	}
}

// Completer-tree for interactive sub-commands
func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// SetPrompt sets the prompt. An empty prompt selects the default prompt.
func (repl *BaseREPL) SetPrompt(prompt string) {
	if prompt == "" {
		repl.prompt = fmt.Sprintf(stdprompt, repl.toolname)
	} else {
		repl.prompt = prompt + " "
	}
	repl.readline.SetPrompt(repl.prompt)
}

// Prompt enters a REPL and executes commands.
// Commands are either internal administrative (setprompt, help, etc.)
// or interpreted statements.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	if exitOnBye {
		chira.AtExit(repl.readline) // Exit skips deferred calls
	} else {
		defer repl.readline.Close()
	}
	io.WriteString(repl.readline.Stderr(),
		fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.readline.Stderr().Write([]byte{'\n'})
	}
	for chira.SignalContext.Err() == nil {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
	if exitOnBye {
		chira.Exit(0)
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch cmd {
	case "":
		// do nothing
	case "help":
		repl.displayCommands(repl.readline.Stderr())
		if repl.Helper != nil {
			repl.Helper(repl.readline.Stderr())
		}
	case "bye":
		io.WriteString(repl.readline.Stderr(), "> goodbye!\n")
		return true
	case "mode":
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf("> current input mode: %s\n", editmode))
	case "setprompt":
		if len(line) <= 10 {
			repl.SetPrompt("")
		} else {
			repl.SetPrompt(line[10:])
		}
	default:
		if c, ok := repl.commands[cmd]; ok {
			c.Run(args, repl.readline.Stdout())
			return false
		}
		trace().Debugf("call interpreter on: '%s'", line)
		return repl.interpret(line)
	}
	return false // do not exit
}

// interpret calls the interpreter, sending a statement.
func (repl *BaseREPL) interpret(line string) bool {
	if repl.Interpreter == nil {
		return false
	}
	return repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
