package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gitprobe/internal/constants"
)

// Load initializes viper: defaults first, then an optional config file,
// then GITPROBE_* environment variables. Flags bound by the CLI layer
// override all of these. A missing config file is not an error; a
// malformed one is.
func Load(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(home, ".config", "gitprobe"))
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gitprobe")
	}

	viper.SetEnvPrefix("GITPROBE")
	viper.AutomaticEnv()
	// Dotted keys need the replacer so GITPROBE_LOGGER_LEVEL reaches
	// "logger.level"; AutomaticEnv alone only matches flat keys.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault(constants.CfgLogLevel, "info")
	viper.SetDefault(constants.CfgLogFormat, "console")

	// Empty git dir means "discover by walking up from the working
	// directory"; resolved in the CLI layer.
	viper.SetDefault(constants.CfgGitDir, "")
}
