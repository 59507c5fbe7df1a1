package config

import (
	"bytes"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/component"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/log"
)

// Cfg holds all configuration sections of the review tool, read from a
// config file or environment variables.
type Cfg struct {
	DataSet      component.DataSet `mapstructure:"dataset"`
	Split        component.Split   `mapstructure:"split"`
	Model        component.Model   `mapstructure:"model"`
	Review       component.Review  `mapstructure:"review"`
	Report       component.Report  `mapstructure:"report"`
	LoggerConfig component.Logger  `mapstructure:"logger"`
}

// GetConfigs reads the configuration from file or environment variables.
// When cfgFile is empty the usual search paths are tried; a missing file is
// not an error, the defaults below are used instead.
func GetConfigs(logger *zap.SugaredLogger, cfgFile string) Cfg {
	var configs Cfg
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath("./configs/")
		v.AddConfigPath(".")
	}

	// Environment variables have the highest priority.
	v.SetEnvPrefix("FAIRAUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Warn(log.Colorize("Config not found ❌ Using default values 🔧", log.Magenta))
			return setDefaults(v, logger)
		}
		logger.Errorf("Config file found but unreadable: %v ⛔", err)
		return setDefaults(v, logger)
	}
	logger.Info(log.Colorize("Config found : Loading Config ⌛", log.Cyan))

	if err := v.Unmarshal(&configs); err != nil {
		logger.Errorf("Unable to unmarshal config: %v ⛔", err)
		return setDefaults(v, logger)
	}
	return configs
}

// setDefaults is only used when no usable value is provided by the user via
// config file or environment.
func setDefaults(v *viper.Viper, logger *zap.SugaredLogger) Cfg {
	var configs Cfg

	defaultConfig := []byte(`
	{
		"dataset": {
			"path": "",
			"target": "approved",
			"prohibited": ["gender", "race"]
		},
		"split": {
			"test_ratio": 0.2,
			"seed": 42
		},
		"model": {
			"learning_rate": 0.5,
			"epochs": 2000
		},
		"review": {
			"accuracy_threshold": 0.75,
			"air_threshold": 0.8
		},
		"report": {
			"format": "human"
		},
		"logger": {
			"level": "INFO",
			"disable_timestamp": false
		}
	}
	`)

	v.SetConfigType("json")
	if err := v.MergeConfig(bytes.NewReader(defaultConfig)); err != nil {
		// Panics if the embedded defaults are broken, nothing can run then.
		logger.Panic(log.Colorize("Failed to merge default configs ❌ ", log.Magenta), err.Error())
	}
	if err := v.Unmarshal(&configs); err != nil {
		logger.Panic(log.Colorize("Failed to unmarshal default configs ❌ ", log.Magenta), err.Error())
	}
	return configs
}
