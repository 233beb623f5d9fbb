package cli

import (
	"github.com/npillmayer/chira"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// version of the chira tool
const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chira [file ...]",
	Short: "An interpreter for the Chira scripting language",
	Long: `Welcome to Chira V0.1 (experimental)

Chira interprets programs written in a small scripting language with typed
variables, conditionals and output.

Chira is able to run in interactive mode or execute files and statements in
batch-mode.  If run in interactive mode, it will prompt for user input in a
terminal REPL.

`,
	Run: runChiraCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by chira.main().
func Execute() {
	if rootCmd.Execute() != nil {
		chira.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Enter the REPL after running files and commands")
	rootCmd.PersistentFlags().StringP("command", "c", "", "Statements to run in batch-mode")
	rootCmd.PersistentFlags().Bool("strict", false, "Identifiers naming no variable are an error")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML or TOML)")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

// runChiraCmd runs files given as arguments and statements given by flag -c,
// in this order. Without any of them, or with flag -i, it enters the REPL
// afterwards.
func runChiraCmd(cmd *cobra.Command, args []string) {
	conf := chira.Configuration
	tracing.Infof("chira interpreter called")
	s := newSession(cmd.OutOrStdout(), cmd.ErrOrStderr(),
		conf.Bool("strict"), conf.Int("load.maxdepth"))
	command := conf.String("command")
	batch := len(args) > 0 || command != ""
	quit := s.runBatch(args, command)
	if quit || (batch && !conf.Bool("interactive")) {
		if s.failed > 0 {
			chira.Exit(1)
		}
		chira.Exit(0)
	}
	s.prompt(conf.String("repl.prompt"))
}
