package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all server configuration loaded from environment variables.
type Config struct {
	Port      string // HTTP listen port
	PublicDir string // Root of the static front-end bundle
	ImagesDir string // Directory mounted at /images
	LogLevel  string // debug, info, warn or error
	LogFormat string // json or text
}

// Load reads configuration from environment variables, falling back to
// defaults. Variables that are set but empty count as unset.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	publicDir := v.GetString("public_dir")
	imagesDir := v.GetString("images_dir")
	if imagesDir == "" {
		imagesDir = filepath.Join(publicDir, "images")
	}

	return &Config{
		Port:      v.GetString("port"),
		PublicDir: publicDir,
		ImagesDir: imagesDir,
		LogLevel:  strings.ToLower(v.GetString("log_level")),
		LogFormat: strings.ToLower(v.GetString("log_format")),
	}
}

// ListenAddr returns the address passed to http.Server.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("public_dir", "public")
	v.SetDefault("images_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}
