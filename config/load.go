package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ConfigName is the file Load looks for inside the config directory.
const ConfigName = "lastpenguin.cfg.json"

// DatabaseConfig holds score store settings
type DatabaseConfig struct {
	SqlitePath string `json:"sqlitePath" mapstructure:"sqlitePath"`
	Host       string `json:"host" mapstructure:"host"`
	Port       string `json:"port" mapstructure:"port"`
	Username   string `json:"username" mapstructure:"username"`
	Password   string `json:"password" mapstructure:"password"`
	Database   string `json:"database" mapstructure:"database"`
}

// AppConfig is the application level configuration read by Load.
type AppConfig struct {
	LogLevel   string         `json:"logLevel" mapstructure:"logLevel"`
	Username   string         `json:"username" mapstructure:"username"`
	Difficulty string         `json:"difficulty" mapstructure:"difficulty"`
	Mode       string         `json:"mode" mapstructure:"mode"`
	UseMouse   bool           `json:"useMouse" mapstructure:"useMouse"`
	Seed       uint64         `json:"seed" mapstructure:"seed"`
	TickRate   int            `json:"tickRate" mapstructure:"tickRate"`
	DB         DatabaseConfig `json:"db" mapstructure:"db"`
}

// App is populated by Load.
var App AppConfig

// Load reads configuration from JSON file and sets default values.
// A missing file is not an error; defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("username", "penguin")
	viper.SetDefault("difficulty", DifficultyEasy.String())
	viper.SetDefault("mode", ModeOffline.String())
	viper.SetDefault("useMouse", true)
	viper.SetDefault("seed", 0)
	viper.SetDefault("tickRate", 60)

	viper.SetDefault("db.sqlitePath", "lastpenguin.db")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "lastpenguin")

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var app AppConfig
	if err := viper.Unmarshal(&app); err != nil {
		return fmt.Errorf("error decoding config: %w", err)
	}
	App = app
	return nil
}

// Settings builds a session settings snapshot from the loaded config.
// Unknown difficulty or mode names fall back to the defaults.
func (a AppConfig) Settings() Settings {
	s := DefaultSettings()
	if d, err := ParseDifficulty(a.Difficulty); err == nil {
		s.Difficulty = d
	}
	if m, err := ParseMode(a.Mode); err == nil {
		s.Mode = m
	}
	s.UseMouse = a.UseMouse
	return s
}
