package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	RequestTimeoutSecs int      `mapstructure:"request_timeout_secs"`
	DataDir            string   `mapstructure:"data_dir"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Enabled reports whether a Postgres backend has been configured at all.
// When it returns false the server falls back to the flat-file store.
func (c *PostgresConfig) Enabled() bool {
	return c != nil && c.Host != ""
}

func Load(configPath string) (*AppConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(configPath)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("vp.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := vp.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("vp.Unmarshal -> %w", err)
	}

	if conf.API == nil {
		return nil, fmt.Errorf("missing `api` section in %v", configPath)
	}
	if conf.API.RequestTimeoutSecs <= 0 {
		conf.API.RequestTimeoutSecs = 15
	}
	if conf.API.DataDir == "" {
		conf.API.DataDir = "./data"
	}

	vp.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	vp.WatchConfig()

	return &conf, nil
}
