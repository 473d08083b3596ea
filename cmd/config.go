// File: cmd/config.go
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"foldersnap/pkg/snapshot"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Configuration keys, shared by the config file, the environment and the flags.
const (
	keyRoot          = "root"
	keyOut           = "out"
	keyExcludeDirs   = "exclude_dirs"
	keyExcludeFiles  = "exclude_files"
	keyExtensions    = "extensions"
	keyHiddenPrefix  = "hidden_prefix"
	keyMaxFileSizeKB = "max_file_size_kb"
	keyGitignore     = "gitignore"
	keyClipboard     = "clipboard"
	keyDebug         = "debug"
)

const (
	configName = ".foldersnap"
	envPrefix  = "FOLDERSNAP"
)

// settings is the resolved configuration of a run.
type settings struct {
	Options   snapshot.Options
	Clipboard bool
	Debug     bool
}

// fileConfig mirrors the config file layout; `foldersnap config` prints it.
type fileConfig struct {
	Root          string   `yaml:"root"`
	Out           string   `yaml:"out"`
	ExcludeDirs   []string `yaml:"exclude_dirs"`
	ExcludeFiles  []string `yaml:"exclude_files"`
	Extensions    []string `yaml:"extensions"`
	HiddenPrefix  string   `yaml:"hidden_prefix"`
	MaxFileSizeKB int      `yaml:"max_file_size_kb"`
	Gitignore     bool     `yaml:"gitignore"`
	Clipboard     bool     `yaml:"clipboard"`
	Debug         bool     `yaml:"debug"`
}

// bindFlags defines the persistent flags and binds them to viper keys.
func (a *app) bindFlags(cmd *cobra.Command) {
	defaults := snapshot.DefaultRules()
	flags := cmd.PersistentFlags()

	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.foldersnap.yaml or $HOME/.config/foldersnap/.foldersnap.yaml)")

	flags.StringP("root", "r", snapshot.DefaultRoot, "Directory to snapshot")
	a.bind(keyRoot, flags.Lookup("root"))
	flags.StringP("out", "o", snapshot.DefaultOutput, "Output Markdown file")
	a.bind(keyOut, flags.Lookup("out"))

	flags.StringSlice("exclude-dir", defaults.ExcludeDirs, "Directory names that are never descended into")
	a.bind(keyExcludeDirs, flags.Lookup("exclude-dir"))
	flags.StringSlice("exclude-file", defaults.ExcludeFiles, "File names whose content is never embedded")
	a.bind(keyExcludeFiles, flags.Lookup("exclude-file"))
	flags.StringSlice("ext", defaults.Extensions, "Extensions whose content is embedded")
	a.bind(keyExtensions, flags.Lookup("ext"))
	flags.String("hidden-prefix", defaults.HiddenPrefix, "Name prefix marking hidden files and directories")
	a.bind(keyHiddenPrefix, flags.Lookup("hidden-prefix"))

	flags.Int("max-file-size", 0, "Maximum size in KB of an embedded file (0 for no limit)")
	a.bind(keyMaxFileSizeKB, flags.Lookup("max-file-size"))
	flags.Bool("gitignore", false, "Skip paths matched by the root .gitignore")
	a.bind(keyGitignore, flags.Lookup("gitignore"))
	flags.BoolP("clipboard", "c", false, "Also copy the document to the clipboard")
	a.bind(keyClipboard, flags.Lookup("clipboard"))
	flags.Bool("debug", false, "Enable debug logging")
	a.bind(keyDebug, flags.Lookup("debug"))

	a.v.SetDefault(keyRoot, snapshot.DefaultRoot)
	a.v.SetDefault(keyOut, snapshot.DefaultOutput)
	a.v.SetDefault(keyExcludeDirs, defaults.ExcludeDirs)
	a.v.SetDefault(keyExcludeFiles, defaults.ExcludeFiles)
	a.v.SetDefault(keyExtensions, defaults.Extensions)
	a.v.SetDefault(keyHiddenPrefix, defaults.HiddenPrefix)
	a.v.SetDefault(keyMaxFileSizeKB, 0)
}

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		a.logger.Error("Failed to bind flag", zap.String("key", key), zap.Error(err))
	}
}

// loadConfig reads the config file and FOLDERSNAP_* environment variables into v.
// A missing config file is not an error.
func loadConfig(v *viper.Viper, cfgFile string, logger *zap.Logger) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "foldersnap"))
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debug("No config file found, using defaults and flags")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	logger.Debug("Using config file", zap.String("file", v.ConfigFileUsed()))
	return nil
}

// settings resolves the run configuration from v.
func (a *app) settings() settings {
	return settings{
		Options: snapshot.Options{
			Root:   a.v.GetString(keyRoot),
			Output: a.v.GetString(keyOut),
			Rules: snapshot.Rules{
				Extensions:   a.v.GetStringSlice(keyExtensions),
				ExcludeDirs:  a.v.GetStringSlice(keyExcludeDirs),
				ExcludeFiles: a.v.GetStringSlice(keyExcludeFiles),
				HiddenPrefix: a.v.GetString(keyHiddenPrefix),
			},
			MaxFileSizeKB:    a.v.GetInt(keyMaxFileSizeKB),
			RespectGitignore: a.v.GetBool(keyGitignore),
		},
		Clipboard: a.v.GetBool(keyClipboard),
		Debug:     a.v.GetBool(keyDebug),
	}
}

// fileConfig converts the resolved settings to the config file layout.
func (s settings) fileConfig() fileConfig {
	return fileConfig{
		Root:          s.Options.Root,
		Out:           s.Options.Output,
		ExcludeDirs:   s.Options.Rules.ExcludeDirs,
		ExcludeFiles:  s.Options.Rules.ExcludeFiles,
		Extensions:    s.Options.Rules.Extensions,
		HiddenPrefix:  s.Options.Rules.HiddenPrefix,
		MaxFileSizeKB: s.Options.MaxFileSizeKB,
		Gitignore:     s.Options.RespectGitignore,
		Clipboard:     s.Clipboard,
		Debug:         s.Debug,
	}
}

// newConfigCmd prints the resolved configuration as YAML,
// in a form that can be saved as a config file.
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  `Print the configuration after merging defaults, the config file, FOLDERSNAP_* environment variables and flags.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.settings().fileConfig())
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
