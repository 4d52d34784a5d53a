package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set via -ldflags at release time.
var version = "dev"

var (
	verbose bool
	cfgFile string

	logger = log.New(os.Stderr)

	rootCmd = &cobra.Command{
		Use:   "shaderpackc",
		Short: "Bundle directive-annotated GLSL into shader programs",
		Long: `shaderpackc assembles multi-module GLSL shader files into programs.

Source files use #module/#vert/#frag blocks closed by #end, compose them
with #include and #include_module, pair them with #program, and declare
type aliases for binding generation with #ctypedef. Native GLSL
preprocessor lines (#version, #define, ...) pass through untouched.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default shaderpack.toml in the working directory)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the root command. Exit-code policy lives here: any error from
// a subcommand, including "diagnostics were reported", terminates with a
// non-zero status.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initConfig layers the optional config file and SHADERPACK_* environment
// variables under the command-line flags.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shaderpack")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("SHADERPACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("loaded config", "file", viper.ConfigFileUsed())
	}

	if verbose || viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
}
