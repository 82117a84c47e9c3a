package cmd

import (
	"io/ioutil"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/loom-sh/loom/core"
	"github.com/loom-sh/loom/core/handlers"
	"github.com/loom-sh/loom/core/logger"
	"github.com/loom-sh/loom/core/session"
)

// playCmd replays a saved script through the dispatch loop.
var playCmd = &cobra.Command{
	Use:   "play SCRIPT",
	Short: "Replay a script recorded with start-recording/save-script.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg := loadConfigOrDefault()

		sess := session.New(afero.NewOsFs(), handlers.Resolver, cfg)
		sess.SetIO(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		sess.SetLauncher(&session.ExecLauncher{})
		if wd, err := os.Getwd(); err == nil {
			sess.SetWorkingDir(wd)
		}

		shell, err := core.NewShell(sess, core.Terminal{}, logger.Nop())
		if err != nil {
			return err
		}
		return shell.Replay(core.ParseScript(data))
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
