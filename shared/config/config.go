package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ListenAddr      string        `yaml:"listen_addr"`
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	DefaultPageSize int           `yaml:"default_page_size"`
	MaxPageSize     int           `yaml:"max_page_size"` // hard cap for all list endpoints
	TokenTTL        time.Duration `yaml:"token_ttl"`
	TokenGCInterval time.Duration `yaml:"token_gc_interval"`
	Argon2          Argon2        `yaml:"argon2"`
}

// Argon2 holds the password hashing work factors. Raising them invalidates
// nothing: the factors are encoded into each stored hash.
type Argon2 struct {
	MemoryKiB   uint32 `yaml:"memory_kib"`
	Time        uint32 `yaml:"time"`
	Parallelism uint8  `yaml:"parallelism"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.ListenAddr == "" {
		c.Public.ListenAddr = ":8080"
	}
	if c.Public.DefaultPageSize <= 0 {
		c.Public.DefaultPageSize = 50
	}
	if c.Public.MaxPageSize <= 0 {
		c.Public.MaxPageSize = 100
	}
	if c.Public.TokenTTL <= 0 {
		c.Public.TokenTTL = 720 * time.Hour
	}
	if c.Public.TokenGCInterval <= 0 {
		c.Public.TokenGCInterval = time.Hour
	}
	if c.Public.Argon2.MemoryKiB == 0 {
		c.Public.Argon2.MemoryKiB = 64 * 1024
	}
	if c.Public.Argon2.Time == 0 {
		c.Public.Argon2.Time = 1
	}
	if c.Public.Argon2.Parallelism == 0 {
		c.Public.Argon2.Parallelism = 4
	}
}
