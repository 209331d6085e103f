package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
	JWT    JWTConfig    `mapstructure:"jwt"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// ReportConfig selects the language of rendered summaries ("en" or "ru").
type ReportConfig struct {
	Locale string `mapstructure:"locale"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// JWTConfig defines JWT specific configuration.
// An empty secret leaves the workout routes unauthenticated.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// report.locale -> REPORT_LOCALE
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key needs a default so Unmarshal picks up env-only values.
	v.SetDefault("server.address", ":8080")
	v.SetDefault("report.locale", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.secret", "")

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No file; defaults and env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
