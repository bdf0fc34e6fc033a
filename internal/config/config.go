// Package config loads the YAML configuration of the qrcode web form.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Mictilt/qrsvg"
)

// Config is the root of config.yaml.
type Config struct {
	Server struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		BodyLimit    int           `yaml:"body_limit"`
	} `yaml:"server"`

	QR struct {
		// Border is the quiet zone in modules.
		Border int `yaml:"border"`
		// Level is the error correction level name, see qrsvg.ParseLevel.
		Level string `yaml:"level"`
		// PixelSize is the width/height attribute of the SVG.
		PixelSize int `yaml:"pixel_size"`
		// BlockWidth is the pixel width of a module in PNG downloads.
		BlockWidth int `yaml:"block_width"`
	} `yaml:"qr"`

	Form struct {
		MaxFields int `yaml:"max_fields"`
	} `yaml:"form"`

	Download struct {
		Filename string        `yaml:"filename"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"download"`

	Cache struct {
		// RedisHost enables Redis storage when set, as host:port.
		RedisHost string `yaml:"redis_host"`
		RedisDB   int    `yaml:"redis_db"`
	} `yaml:"cache"`

	Logger struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
		Level      string `yaml:"level"`
	} `yaml:"logger"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Server.Addr = ":8080"
	cfg.Server.ReadTimeout = 10 * time.Second
	cfg.Server.WriteTimeout = 10 * time.Second
	cfg.Server.BodyLimit = 64 * 1024
	cfg.QR.Border = 4
	cfg.QR.Level = "low"
	cfg.QR.PixelSize = 200
	cfg.QR.BlockWidth = 10
	cfg.Form.MaxFields = 15
	cfg.Download.Filename = "qrcode.svg"
	cfg.Download.TTL = 10 * time.Minute
	cfg.Logger.MaxSizeMB = 10
	cfg.Logger.MaxBackups = 3
	cfg.Logger.MaxAgeDays = 28
	cfg.Logger.Level = "info"
	return cfg
}

// Load reads CONFIG_PATH, or config.yaml when unset. A missing file yields
// Default. QRCODE_ADDR and REDIS_HOST override the file.
func Load() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return LoadPath(path)
	}

	cfg := Default()
	cfg.applyEnv()
	cfg.mustValidate()
	return cfg
}

// LoadPath reads path like LoadFrom, then applies the QRCODE_ADDR and
// REDIS_HOST overrides.
func LoadPath(path string) Config {
	cfg := LoadFrom(path)
	cfg.applyEnv()
	cfg.mustValidate()
	return cfg
}

// LoadFrom reads path over Default and panics on unreadable or invalid
// configuration.
func LoadFrom(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config: read %s: %v", path, err))
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("config: parse %s: %v", path, err))
	}

	cfg.mustValidate()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("QRCODE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.RedisHost = v
	}
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("server.addr is empty")
	case c.QR.Border < 0:
		return fmt.Errorf("qr.border must be non-negative, got %d", c.QR.Border)
	case c.QR.PixelSize <= 0:
		return fmt.Errorf("qr.pixel_size must be positive, got %d", c.QR.PixelSize)
	case c.QR.BlockWidth <= 0 || c.QR.BlockWidth > 255:
		return fmt.Errorf("qr.block_width must be in 1..255, got %d", c.QR.BlockWidth)
	case c.Form.MaxFields < 1:
		return fmt.Errorf("form.max_fields must be at least 1, got %d", c.Form.MaxFields)
	case c.Download.Filename == "":
		return fmt.Errorf("download.filename is empty")
	case c.Download.TTL <= 0:
		return fmt.Errorf("download.ttl must be positive, got %s", c.Download.TTL)
	}

	if _, err := qrsvg.ParseLevel(c.QR.Level); err != nil {
		return fmt.Errorf("qr.level: %w", err)
	}
	return nil
}

func (c Config) mustValidate() {
	if err := c.Validate(); err != nil {
		panic("config: " + err.Error())
	}
}
