package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gitprobe/internal/config"
	"gitprobe/internal/constants"
	"gitprobe/internal/logger"
)

var cfgFile string

// log is the shared logger for all subcommands, built once in the root
// PersistentPreRunE after config and flags are resolved.
var log = zap.NewNop()

// rootCmd defines the base command for the gitprobe CLI.
// All subcommands (cat-file, ls-tree) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gitprobe",
	Short: "A read-only inspector for git object stores",
	Long: `Gitprobe decodes the loose objects of a git repository: given a content
hash it decompresses the object, validates its header, and pretty-prints the
typed payload. Tree objects are rendered as directory listings. Gitprobe never
writes to the repository.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.NewLogger(viper.GetViper())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log = l
		return nil
	},
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .gitprobe.yaml)")

	// The store root can come from the flag, a GITPROBE_ env variable
	// or the config file; empty means walk-up discovery.
	rootCmd.PersistentFlags().String("git-dir", "", "path to the .git directory to inspect")
	if err := viper.BindPFlag(constants.CfgGitDir, rootCmd.PersistentFlags().Lookup("git-dir")); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to bind flag:", err)
		os.Exit(1)
	}
}

// initConfig reads the config file and environment variables.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}
}
