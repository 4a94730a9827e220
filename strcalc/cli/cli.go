// Package cli implements the strcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2025 S. Grinevich
//
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/sgrinevich/strcalc"
	"github.com/sgrinevich/strcalc/evaluator"
	"github.com/sgrinevich/strcalc/strcalc/ui/termui"
	"github.com/sgrinevich/strcalc/variables"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strcalc \"expression\" [name=value ...]",
	Short: "A calculator for string expressions",
	Long: `strcalc evaluates arithmetic expressions given as strings.

Expressions may contain named variables, supplied as trailing name=value
arguments. Supported functions: atan, cos, log10, log2, sin, sqrt, tan
(angles in radians). The letter e denotes Euler's number unless it is
overridden by a variable.

strcalc runs one-shot by default; with -i it will prompt for input in a
terminal REPL instead.
`,
	Run: runCalcCmd,
}

// Execute runs the root command. This is called exactly once by strcalc.main().
func Execute() {
	if rootCmd.Execute() != nil {
		strcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Run in interactive mode")
	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "Trace token and postfix sequences")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runCalcCmd(cmd *cobra.Command, args []string) {
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		runCalcRepl(cmd, args)
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no expression was provided")
		strcalc.Exit(1)
	}
	vars, err := variables.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		strcalc.Exit(1)
	}
	tracer().Debugf("given formula: %s", args[0])
	result, err := evaluator.Calculate(args[0], vars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		strcalc.Exit(2)
	}
	fmt.Println(formatResult(result))
}

// runCalcRepl starts the interactive mode. Command line arguments are
// variable assignments pre-loaded into the session.
func runCalcRepl(cmd *cobra.Command, args []string) {
	tracing.Infof("strcalc interactive mode")
	vars, err := variables.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		strcalc.Exit(1)
	}
	rcmd := &calcCmdIntpr{vars: vars}
	rcmd.BaseREPL = termui.NewBaseREPL("strcalc", "1.0")
	rcmd.Interpreter = rcmd
	rcmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
strcalc will interpret the following statements:

  <expression>     : evaluate an arithmetic expression
  <name>=<value>   : define a variable for subsequent expressions
  vars             : list the currently defined variables

`)
	}
	rcmd.Prompt(true)
}

type calcCmdIntpr struct {
	*termui.BaseREPL
	vars map[string]float64
}

// InterpretCommand executes a single REPL statement: a variable assignment,
// the vars listing, or an expression to evaluate.
func (rcmd *calcCmdIntpr) InterpretCommand(line string) {
	stdout, stderr := rcmd.Outputs()
	var formatter termui.DefaultFormatter
	switch {
	case line == "vars":
		formatter.Format(varsAsTable(rcmd.vars), stdout)
	case strings.ContainsRune(line, '='):
		name, value, err := variables.ParseAssignment(line)
		if err != nil {
			fmt.Fprintf(stderr, "> %v\n", err)
			return
		}
		rcmd.vars[name] = value
	default:
		result, err := evaluator.Calculate(line, rcmd.vars)
		if err != nil {
			fmt.Fprintf(stderr, "> %v\n", err)
			return
		}
		formatter.Format(formatResult(result), stdout)
	}
}

func formatResult(result float64) string {
	return strconv.FormatFloat(result, 'g', -1, 64)
}

// varsAsTable renders a variable mapping as a property table. An empty
// mapping renders as just the header row.
func varsAsTable(vars map[string]float64) table.Writer {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"variable", "value"})
	for _, name := range names {
		tw.AppendRow(table.Row{name, formatResult(vars[name])})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}
