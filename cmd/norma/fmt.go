package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/norma/norma"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt file.norma",
	Short: "Print a program in canonical form.",
	Long: `Load a program and print it back in canonical form: one instruction per
line, ascending labels, upper-case mnemonics, comments removed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ld := &norma.Loader{Verbose: GetFlag(cmd, "verbose")}

		prog, err := ld.Load(args[0])
		for _, line_err := range ld.Errors {
			log.Warn(line_err)
		}
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}

		if _, err = prog.WriteTo(os.Stdout); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
