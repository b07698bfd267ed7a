package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the bar appearance settings. Everything has a default; a
// missing config file is not an error.
type Config struct {
	Separator     string `mapstructure:"separator"`
	ShowTitle     bool   `mapstructure:"show_title"`
	TitleWidth    int    `mapstructure:"title_width"`
	ActiveColor   string `mapstructure:"active_color"`
	InactiveColor string `mapstructure:"inactive_color"`
}

// loadConfig reads hyprbar.yaml from $XDG_CONFIG_HOME/hyprbar (falling back
// to ~/.config/hyprbar), with HYPRBAR_* environment variables taking
// precedence over the file.
func loadConfig() (Config, error) {
	v := viper.New()

	v.SetConfigName("hyprbar")
	v.SetConfigType("yaml")
	v.AddConfigPath("$XDG_CONFIG_HOME/hyprbar")
	v.AddConfigPath("$HOME/.config/hyprbar")

	v.SetDefault("separator", " ")
	v.SetDefault("show_title", true)
	v.SetDefault("title_width", 48)
	v.SetDefault("active_color", "6")
	v.SetDefault("inactive_color", "8")

	v.SetEnvPrefix("HYPRBAR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
