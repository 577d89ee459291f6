package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel      string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort      string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage       string   `yaml:"storage" env:"STORAGE" env-default:"memory"`
	CapturePolicy string   `yaml:"capture-policy" env:"CAPTURE_POLICY" env-default:"exempt-move"`
	Redis         Redis    `yaml:"redis"`
	Cooldown      Cooldown `yaml:"cooldown"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

// Cooldown is how long moves are ignored after a game starts and after each accepted move.
type Cooldown struct {
	Start time.Duration `yaml:"start" env:"COOLDOWN_START" env-default:"200ms"`
	Move  time.Duration `yaml:"move" env:"COOLDOWN_MOVE" env-default:"50ms"`
}

// MustLoad - load all configurations in config.yml file.
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

	if config.Storage != StorageMemory && config.Storage != StorageRedis {
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
