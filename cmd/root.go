package cmd

import (
	"errors"
	"fmt"

	"foldersnap/pkg/logging"
	"foldersnap/pkg/snapshot"
	"foldersnap/pkg/version"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	logger  *zap.Logger
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd builds the foldersnap command tree.
// Running the root command generates a snapshot.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{logger: logger, v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "foldersnap",
		Short: "Foldersnap snapshots a directory tree into a single Markdown file",
		Long: `Foldersnap walks a directory tree and writes one Markdown document with
an indented listing of its folders and files followed by the full source of
every recognized code file, each in a language-tagged code block.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd)
		},
	}

	a.bindFlags(rootCmd)
	rootCmd.AddCommand(newVersionCmd(), newConfigCmd(a))
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}

// runGenerate writes the snapshot and reports the outcome on the command's output.
func (a *app) runGenerate(cmd *cobra.Command) error {
	s := a.settings()
	out := cmd.OutOrStdout()

	res, err := snapshot.Run(s.Options, a.logger)
	if errors.Is(err, snapshot.ErrInvalidRoot) {
		fmt.Fprintf(out, "The provided path '%s' is not a valid directory.\n", s.Options.Root)
		return err
	}
	if err != nil {
		return err
	}

	if s.Clipboard {
		if err := clipboard.WriteAll(res.Document.Markdown()); err != nil {
			a.logger.Warn("Failed to copy snapshot to clipboard", zap.Error(err))
		} else {
			a.logger.Info("Snapshot copied to clipboard")
		}
	}

	fmt.Fprintf(out, "Markdown documentation has been saved to %s\n", res.Output)
	return nil
}

// initConfig loads the config file and switches to the debug logger if requested.
func (a *app) initConfig() error {
	if err := loadConfig(a.v, a.cfgFile, a.logger); err != nil {
		return err
	}

	if a.v.GetBool(keyDebug) {
		logger, err := logging.Setup(true, version.AppName, version.Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		a.logger = logger
	}
	return nil
}
