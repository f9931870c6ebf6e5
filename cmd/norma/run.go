package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/norma/emulator"
	"github.com/ezrec/norma/norma"
	"github.com/ezrec/norma/programs"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.norma]",
	Short: "Run a Norma program.",
	Long: `Run a Norma program from a file, or a built-in program with --program,
printing every step of the execution and the final registers.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRunCmd,
}

func runRunCmd(cmd *cobra.Command, args []string) {
	var (
		builtinName = GetString(cmd, "program")
		assigns     = GetStringArray(cmd, "register")
		verbose     = GetFlag(cmd, "verbose")
		quiet       = GetFlag(cmd, "quiet")
	)

	show, err := parseShow(GetString(cmd, "show"))
	if err != nil {
		log.Errorf("--show: %v", err)
		os.Exit(2)
	}

	values, err := parseAssigns(assigns)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	ld := &norma.Loader{Verbose: verbose}

	var prog *norma.Program
	switch {
	case len(builtinName) != 0 && len(args) != 0:
		log.Error("give either a program file or --program, not both")
		os.Exit(2)
	case len(builtinName) != 0:
		builtin, ok := programs.Lookup(builtinName)
		if !ok {
			log.Errorf("unknown built-in program \"%s\"", builtinName)
			os.Exit(2)
		}
		if isTerminal(os.Stdin) {
			promptMissing(os.Stdin, os.Stdout, builtin.Inputs, values)
		}
		prog, err = builtin.Load(ld)
	case len(args) == 1:
		prog, err = ld.Load(args[0])
	default:
		cmd.Help()
		os.Exit(2)
	}

	for _, line_err := range ld.Errors {
		log.Warn(line_err)
	}
	if err != nil {
		log.Error(err)
		os.Exit(3)
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.MaxSteps = GetInt(cmd, "max-steps")
	if isTerminal(os.Stdout) {
		emu.Delay = GetDuration(cmd, "delay")
	}

	for _, warning := range emu.Initialize(values) {
		log.Warn(warning)
	}

	tp := &tracePrinter{out: os.Stdout, show: show}
	if !quiet {
		emu.Trace = tp.Print
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	regs, err := emu.Run(ctx)
	tp.Final(regs)
	if err != nil {
		log.Error(err)
		os.Exit(4)
	}
}

// parseAssigns parses NAME=VALUE register assignments.
func parseAssigns(assigns []string) (values map[string]string, err error) {
	values = map[string]string{}
	for _, assign := range assigns {
		name, value, ok := strings.Cut(assign, "=")
		if !ok {
			err = fmt.Errorf("register assignment \"%s\" is not NAME=VALUE", assign)
			return
		}
		values[strings.TrimSpace(name)] = value
	}
	return
}

// promptMissing asks for every input register not already assigned,
// repeating the question until the answer is a non-negative integer.
func promptMissing(in io.Reader, out io.Writer, inputs []norma.Register, values map[string]string) {
	scanner := bufio.NewScanner(in)

	for _, reg := range inputs {
		if hasValue(values, reg) {
			continue
		}
		for {
			fmt.Fprintf(out, "  > Value for register %v: ", reg)
			if !scanner.Scan() {
				return
			}
			answer := strings.TrimSpace(scanner.Text())
			if _, err := strconv.ParseUint(strings.TrimPrefix(answer, "+"), 10, 64); err != nil {
				fmt.Fprintln(out, "    ERROR: please enter a non-negative integer.")
				continue
			}
			values[reg.String()] = answer
			break
		}
	}
}

func hasValue(values map[string]string, reg norma.Register) bool {
	for name := range values {
		if strings.EqualFold(name, reg.String()) {
			return true
		}
	}
	return false
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("program", "p", "", "run a built-in program (see \"norma list\")")
	runCmd.Flags().StringArrayP("register", "r", nil, "initial register value, as NAME=VALUE")
	runCmd.Flags().String("show", "ABCDE", "registers shown in the trace")
	runCmd.Flags().Duration("delay", 100*time.Millisecond, "pause between trace rows on a terminal")
	runCmd.Flags().Int("max-steps", 0, "stop after this many instructions (0 for no limit)")
	runCmd.Flags().BoolP("quiet", "q", false, "only print the final registers")
}
