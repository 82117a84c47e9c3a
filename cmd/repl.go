package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/loom-sh/loom/core"
	"github.com/loom-sh/loom/core/handlers"
	"github.com/loom-sh/loom/core/logger"
	"github.com/loom-sh/loom/core/session"
)

// replCmd runs the REPL on the local terminal.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run the interactive REPL on this terminal.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg := loadConfigOrDefault()

		events := logger.Nop()
		if logFd, err := cfg.OpenAppLog(); err == nil {
			defer logFd.Close()
			events = logger.NewJSONLines(logFd).NewSession("local")
		}

		sess := session.New(afero.NewOsFs(), handlers.Resolver, cfg)
		sess.SetIO(os.Stdin, os.Stdout, os.Stderr)
		sess.SetLauncher(&session.ExecLauncher{})
		if wd, err := os.Getwd(); err == nil {
			sess.SetWorkingDir(wd)
		}

		shell, err := core.NewShell(sess, core.Terminal{IsPTY: true}, events)
		if err != nil {
			return err
		}
		return shell.Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
