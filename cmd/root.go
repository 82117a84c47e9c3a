package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"github.com/loom-sh/loom/core/config"
)

var cfgPath string

func loadConfig() (*config.Config, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// loadConfigOrDefault falls back to the embedded defaults so the REPL works
// without an init step.
func loadConfigOrDefault() *config.Config {
	configuration, err := loadConfig()
	if err != nil {
		return config.Default()
	}
	return configuration
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "A recordable command REPL",
	Long: `loom is an interactive command REPL that classifies each line as a
builtin, a variable, an expression or an external program, and can record
sessions as replayable scripts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
