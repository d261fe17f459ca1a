package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"wld/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "WLD_LOG_LEVEL")
	viper.BindEnv("metrics.enabled", "WLD_METRICS_ENABLED")
	viper.BindEnv("github.token", "GITHUB_TOKEN")
	viper.BindEnv("github.owner", "GITHUB_OWNER")
	viper.BindEnv("github.repo", "GITHUB_REPO")
	viper.BindEnv("github.branch", "GITHUB_BRANCH")
	viper.BindEnv("github.filePath", "GITHUB_FILE_PATH")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "WineLogDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
