package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/shaderpack"
)

var checkCmd = &cobra.Command{
	Use:   "check <shader>",
	Short: "Parse a shader file and report problems without writing output",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVarP(&includePaths, "include", "I", nil, "include search path (repeatable)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := args[0]

	res, err := shaderpack.ParseFile(input, parseOptions())
	if err != nil {
		return err
	}

	printDiagnostics(res.Diagnostics)
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("%s: %d problem(s) found", input, res.Diagnostics.Len())
	}

	if res.Program.Name == "" {
		logger.Warn("no #program directive", "file", input)
	} else {
		logger.Info("ok", "program", res.Program.Name)
	}
	return nil
}
