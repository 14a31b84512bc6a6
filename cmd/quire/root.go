package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/quire"
)

var (
	verbose bool
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quire",
	Short: "Ordered Markdown notes where the filename is the database",
	Long: heredoc.Doc(`
		quire keeps a folder of Markdown notes in a user-defined order.
		The order lives in the filenames ("{number}-{slug}.md"), so the
		notes stay plain files any editor can open.

		Settings are read from flags, QUIRE_* environment variables and
		an optional --config file, in that order of precedence.
	`),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&cfgFile, "config", "", "settings file (yaml)")
	flags.String("notes-root", "", "directory holding the workspace folders (default ~/Documents/Notes)")
	flags.String("config-path", "", "workspace config file (default <user config dir>/com.write.app/workspaces.json)")
	flags.Bool("read-only", false, "refuse every change on disk")

	viper.BindPFlag("notes_root", flags.Lookup("notes-root"))
	viper.BindPFlag("config_path", flags.Lookup("config-path"))
	viper.BindPFlag("read_only", flags.Lookup("read-only"))
}

func initConfig() {
	viper.SetEnvPrefix("QUIRE")
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fatal("Failed to read settings", err)
	}
}

// openService builds the service from the resolved settings.
func openService(extra ...quire.Option) *quire.Service {
	opts := []quire.Option{
		quire.WithNotesRoot(viper.GetString("notes_root")),
		quire.WithConfigPath(viper.GetString("config_path")),
		quire.WithReadOnly(viper.GetBool("read_only")),
		quire.WithLogger(slog.Default()),
	}
	svc, err := quire.New(append(opts, extra...)...)
	if err != nil {
		fatal("Failed to initialize quire", err)
	}
	return svc
}
