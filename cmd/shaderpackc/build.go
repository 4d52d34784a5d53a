package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/shaderpack"
)

var (
	outputDir    string
	includePaths []string

	buildCmd = &cobra.Command{
		Use:   "build <shader>",
		Short: "Parse a shader file and write its program sources",
		Long: `Parse a shader file, assemble its program, and write the vertex and
fragment sources plus the type-alias table into the output directory:

  <program>.vert.glsl
  <program>.frag.glsl
  <program>.ctypes.toml`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	buildCmd.Flags().StringArrayVarP(&includePaths, "include", "I", nil, "include search path (repeatable)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	input := args[0]
	logger.Debug("parsing", "file", input)

	res, err := shaderpack.ParseFile(input, parseOptions())
	if err != nil {
		return err
	}

	printDiagnostics(res.Diagnostics)
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("%s: %d problem(s) found", input, res.Diagnostics.Len())
	}
	if res.Program.Name == "" {
		return fmt.Errorf("%s: no #program directive", input)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	vertPath := filepath.Join(outputDir, res.Program.Name+".vert.glsl")
	if err := os.WriteFile(vertPath, []byte(res.Program.VertexSource+"\n"), 0o644); err != nil {
		return err
	}
	fragPath := filepath.Join(outputDir, res.Program.Name+".frag.glsl")
	if err := os.WriteFile(fragPath, []byte(res.Program.FragmentSource+"\n"), 0o644); err != nil {
		return err
	}

	aliasPath := filepath.Join(outputDir, res.Program.Name+".ctypes.toml")
	if err := writeAliasTable(aliasPath, res.TypeAliases); err != nil {
		return err
	}

	logger.Info("bundled", "program", res.Program.Name, "out", outputDir)
	return nil
}

// parseOptions merges config-file search paths with -I flags, config first.
func parseOptions() shaderpack.Options {
	paths := viper.GetStringSlice("search_paths")
	paths = append(paths, includePaths...)
	return shaderpack.Options{SearchPaths: paths}
}

// writeAliasTable dumps the type-alias table for the binding generator.
func writeAliasTable(path string, aliases map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc := struct {
		Types map[string]string `toml:"types"`
	}{Types: aliases}
	return toml.NewEncoder(f).Encode(doc)
}
