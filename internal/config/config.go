package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Cache    Cache  `yaml:"cache"`
	Redis    Redis  `yaml:"redis"`
}

type Cache struct {
	Backend string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"0s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations from the config file, environment variables override it.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch config.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return nil, fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
