package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/norma/programs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in programs.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, builtin := range programs.All() {
			inputs := make([]string, 0, len(builtin.Inputs))
			for _, reg := range builtin.Inputs {
				inputs = append(inputs, reg.String())
			}
			fmt.Printf("%-6s %-30s inputs: %s\n", builtin.Name, builtin.Description, strings.Join(inputs, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
